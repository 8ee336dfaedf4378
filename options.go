package jsonclass

import (
	"reflect"
	"time"
	"unicode"

	"github.com/viant/jsonclass/conv"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

// DefaultTagName is the struct tag used by WithTags class option
const DefaultTagName = "jsonclass"

type (
	// Options represents registry options
	Options struct {
		// CaseFormat formats a field name into default source key, undefined keeps field name as is
		CaseFormat text.CaseFormat
		// TagName is the struct tag name used to derive bindings
		TagName string
		// TimeLayout is used to coerce string values into time.Time fields
		TimeLayout string
		// EmitExtra re-emits extra field entries of extensible classes on serialize
		EmitExtra bool
		// StrictNumbers rejects fractional values for integer fields, enabled by default
		StrictNumbers bool
		Logger        *zap.Logger
		conversions   []conversion
	}

	conversion struct {
		src, dest reflect.Type
		fn        conv.ConversionFunc
	}

	// Option represents registry option
	Option func(o *Options)
)

// WithCaseFormat sets case format used to derive a default key from a field name
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.CaseFormat = caseFormat
	}
}

// WithTagName sets tag name
func WithTagName(name string) Option {
	return func(o *Options) {
		o.TagName = name
	}
}

// WithTimeLayout sets time layout
func WithTimeLayout(layout string) Option {
	return func(o *Options) {
		o.TimeLayout = layout
	}
}

// WithEmitExtra controls whether serialize writes extra field entries
func WithEmitExtra(flag bool) Option {
	return func(o *Options) {
		o.EmitExtra = flag
	}
}

// WithStrictNumbers controls whether fractional values are rejected or truncated for integer fields
func WithStrictNumbers(flag bool) Option {
	return func(o *Options) {
		o.StrictNumbers = flag
	}
}

// WithConversion registers custom scalar conversion from src to dest type
func WithConversion(src, dest reflect.Type, fn conv.ConversionFunc) Option {
	return func(o *Options) {
		o.conversions = append(o.conversions, conversion{src: src, dest: dest, fn: fn})
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func defaultOptions() Options {
	return Options{
		CaseFormat:    text.CaseFormatLowerCamel,
		TagName:       DefaultTagName,
		TimeLayout:    time.RFC3339,
		StrictNumbers: true,
		Logger:        zap.NewNop(),
	}
}

func newOptions(opts []Option) Options {
	ret := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&ret)
	}
	if ret.Logger == nil {
		ret.Logger = zap.NewNop()
	}
	if ret.TagName == "" {
		ret.TagName = DefaultTagName
	}
	return ret
}

func (o *Options) keyOf(field string) string {
	if o.CaseFormat == text.CaseFormatUndefined {
		return field
	}
	return text.CaseFormatUpperCamel.Format(titleInitialisms(field), o.CaseFormat)
}

// titleInitialisms rewrites upper case runs as single words, i.e. HTTPCode to HttpCode, UserID to UserId
func titleInitialisms(field string) string {
	runes := []rune(field)
	for i := 0; i < len(runes); {
		if !unicode.IsUpper(runes[i]) {
			i++
			continue
		}
		end := i + 1
		for end < len(runes) && unicode.IsUpper(runes[end]) {
			end++
		}
		if end < len(runes) && unicode.IsLower(runes[end]) {
			end-- // last upper letter starts the next word
		}
		for k := i + 1; k < end; k++ {
			runes[k] = unicode.ToLower(runes[k])
		}
		if end == i {
			end++
		}
		i = end
	}
	return string(runes)
}
