// Package transform provides ready made custom transforms for time values
package transform

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/jsonclass"
	ftime "github.com/viant/tagly/format/time"
)

// Year serializes time as 4-digit year string, deserializes year into a date at supplied month and day (UTC)
func Year(month time.Month, day int) *jsonclass.Transform {
	return jsonclass.NewTransform(
		func(value interface{}) (interface{}, error) {
			ts, err := asTime(value)
			if err != nil {
				return nil, err
			}
			return fmt.Sprintf("%04d", ts.Year()), nil
		},
		func(value interface{}) (interface{}, error) {
			year, err := asInt(value)
			if err != nil {
				return nil, fmt.Errorf("invalid year: %w", err)
			}
			return time.Date(int(year), month, day, 0, 0, 0, 0, time.UTC), nil
		},
	)
}

// Time serializes time with supplied layout, deserializes string with the same layout
func Time(layout string) *jsonclass.Transform {
	return jsonclass.NewTransform(
		func(value interface{}) (interface{}, error) {
			ts, err := asTime(value)
			if err != nil {
				return nil, err
			}
			return ts.Format(layout), nil
		},
		func(value interface{}) (interface{}, error) {
			text, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, but had %T", value)
			}
			return time.Parse(layout, strings.TrimSpace(text))
		},
	)
}

// Date creates Time transform for ISO date format i.e. YYYY-MM-DD
func Date(dateFormat string) *jsonclass.Transform {
	return Time(ftime.DateFormatToTimeLayout(dateFormat))
}

// UnixSeconds serializes time as unix seconds
func UnixSeconds() *jsonclass.Transform {
	return jsonclass.NewTransform(
		func(value interface{}) (interface{}, error) {
			ts, err := asTime(value)
			if err != nil {
				return nil, err
			}
			return ts.Unix(), nil
		},
		func(value interface{}) (interface{}, error) {
			seconds, err := asInt(value)
			if err != nil {
				return nil, fmt.Errorf("invalid unix seconds: %w", err)
			}
			return time.Unix(seconds, 0).UTC(), nil
		},
	)
}

func asTime(value interface{}) (time.Time, error) {
	switch actual := value.(type) {
	case time.Time:
		return actual, nil
	case *time.Time:
		if actual == nil {
			return time.Time{}, fmt.Errorf("time was nil")
		}
		return *actual, nil
	}
	return time.Time{}, fmt.Errorf("expected time.Time, but had %T", value)
}

func asInt(value interface{}) (int64, error) {
	switch actual := value.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(actual), 10, 64)
	case float64:
		if actual != math.Trunc(actual) {
			return 0, fmt.Errorf("expected integer, but had %v", actual)
		}
		return int64(actual), nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rValue.Uint()), nil
	}
	return 0, fmt.Errorf("expected number or string, but had %T", value)
}
