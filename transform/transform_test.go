package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/jsonclass"
)

func TestTransforms(t *testing.T) {
	ts := time.Date(2014, time.March, 12, 0, 0, 0, 0, time.UTC)
	var testCases = []struct {
		description        string
		transform          *jsonclass.Transform
		input              interface{}
		expectDeserialized time.Time
		value              interface{}
		expectSerialized   interface{}
		expectError        bool
	}{
		{
			description:        "year from string",
			transform:          Year(time.March, 12),
			input:              "2014",
			expectDeserialized: ts,
			value:              ts,
			expectSerialized:   "2014",
		},
		{
			description:        "year from number",
			transform:          Year(time.March, 12),
			input:              float64(2014),
			expectDeserialized: ts,
			value:              &ts,
			expectSerialized:   "2014",
		},
		{
			description: "invalid year",
			transform:   Year(time.March, 12),
			input:       "20x4",
			expectError: true,
		},
		{
			description:        "date format",
			transform:          Date("YYYY-MM-DD"),
			input:              "2014-03-12",
			expectDeserialized: ts,
			value:              ts,
			expectSerialized:   "2014-03-12",
		},
		{
			description:        "time layout",
			transform:          Time(time.RFC3339),
			input:              "2014-03-12T00:00:00Z",
			expectDeserialized: ts,
			value:              ts,
			expectSerialized:   "2014-03-12T00:00:00Z",
		},
		{
			description: "time layout non string",
			transform:   Time(time.RFC3339),
			input:       12,
			expectError: true,
		},
		{
			description:        "unix seconds",
			transform:          UnixSeconds(),
			input:              float64(ts.Unix()),
			expectDeserialized: ts,
			value:              ts,
			expectSerialized:   ts.Unix(),
		},
	}

	for _, testCase := range testCases {
		actual, err := testCase.transform.Deserialize(testCase.input)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, testCase.expectDeserialized.Equal(actual.(time.Time)), testCase.description)
		serialized, err := testCase.transform.Serialize(testCase.value)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectSerialized, serialized, testCase.description)
	}
}

func TestSerializeNonTime(t *testing.T) {
	_, err := Year(time.March, 12).Serialize("2014")
	assert.NotNil(t, err)
}
