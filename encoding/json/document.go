package json

import (
	"sort"

	"github.com/francoispqt/gojay"
)

type (
	// Document represents JSON object with JSON-like values
	Document map[string]interface{}

	// Array represents JSON array with JSON-like values
	Array []interface{}
)

// UnmarshalJSONObject decodes object key
func (d Document) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	d[key] = value
	return nil
}

// NKeys returns 0 to decode all keys
func (d Document) NKeys() int {
	return 0
}

// MarshalJSONObject encodes normalized document with sorted keys
func (d Document) MarshalJSONObject(enc *gojay.Encoder) {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch actual := d[key].(type) {
		case nil:
			enc.AddNullKey(key)
		case string:
			enc.AddStringKey(key, actual)
		case bool:
			enc.AddBoolKey(key, actual)
		case int64:
			enc.AddInt64Key(key, actual)
		case uint64:
			enc.AddUint64Key(key, actual)
		case float64:
			enc.AddFloat64Key(key, actual)
		case Document:
			enc.AddObjectKey(key, actual)
		case Array:
			enc.AddArrayKey(key, actual)
		}
	}
}

// IsNil returns true for nil document
func (d Document) IsNil() bool {
	return d == nil
}

// UnmarshalJSONArray decodes array element
func (a *Array) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	*a = append(*a, value)
	return nil
}

// MarshalJSONArray encodes normalized array
func (a Array) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a {
		switch actual := item.(type) {
		case nil:
			enc.AddNull()
		case string:
			enc.AddString(actual)
		case bool:
			enc.AddBool(actual)
		case int64:
			enc.AddInt64(actual)
		case uint64:
			enc.AddUint64(actual)
		case float64:
			enc.AddFloat64(actual)
		case Document:
			enc.AddObject(actual)
		case Array:
			enc.AddArray(actual)
		}
	}
}

// IsNil returns true for nil array
func (a Array) IsNil() bool {
	return a == nil
}
