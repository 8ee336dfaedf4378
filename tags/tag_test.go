package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		literal     string
		expect      *Tag
		expectError bool
	}{
		{
			description: "positional key",
			literal:     "eta",
			expect:      &Tag{Key: "eta"},
		},
		{
			description: "ignored",
			literal:     "-",
			expect:      &Tag{Ignore: true},
		},
		{
			description: "extra field",
			literal:     ",extra",
			expect:      &Tag{Extra: true},
		},
		{
			description: "presence marker",
			literal:     ",presence",
			expect:      &Tag{Presence: true},
		},
		{
			description: "leading flag name is a key",
			literal:     "extra",
			expect:      &Tag{Key: "extra"},
		},
		{
			description: "leading presence key with flags",
			literal:     "presence,keepNull",
			expect:      &Tag{Key: "presence", KeepNull: true},
		},
		{
			description: "complex object",
			literal:     "key=aa,kind=object",
			expect:      &Tag{Key: "aa", Kind: "object"},
		},
		{
			description: "positional key with flags",
			literal:     "numbers2,kind=array,keepNull",
			expect:      &Tag{Key: "numbers2", Kind: "array", KeepNull: true},
		},
		{
			description: "explicit keep null flag",
			literal:     "keepNull=false,transform=year",
			expect:      &Tag{Transform: "year"},
		},
		{
			description: "unknown key",
			literal:     "eta,size=3",
			expectError: true,
		},
		{
			description: "invalid flag",
			literal:     "keepNull=maybe",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		actual, err := Parse(testCase.literal)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestTag_String(t *testing.T) {
	tag := &Tag{Key: "aa", Kind: "objects", KeepNull: true}
	assert.Equal(t, "key=aa,kind=objects,keepNull", tag.String())
	parsed, err := Parse(tag.String())
	assert.Nil(t, err)
	assert.EqualValues(t, tag, parsed)
	assert.Equal(t, "-", (&Tag{Ignore: true}).String())
}
