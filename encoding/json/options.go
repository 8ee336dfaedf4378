package json

import (
	"time"

	"github.com/viant/jsonclass"
	ftime "github.com/viant/tagly/format/time"
)

type (
	// Options represents codec options
	Options struct {
		Registry   *jsonclass.Registry
		TimeLayout string
	}

	// Option represents codec option
	Option interface {
		apply(*Options)
	}

	optionFn func(*Options)
)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithRegistry sets class registry, default registry is used otherwise
func WithRegistry(registry *jsonclass.Registry) Option {
	return optionFn(func(o *Options) { o.Registry = registry })
}

// WithTimeLayout sets layout used to write time.Time values
func WithTimeLayout(layout string) Option {
	return optionFn(func(o *Options) { o.TimeLayout = layout })
}

// WithDateFormat sets ISO date format (i.e. YYYY-MM-DD) used to write time.Time values
func WithDateFormat(dateFormat string) Option {
	return optionFn(func(o *Options) { o.TimeLayout = ftime.DateFormatToTimeLayout(dateFormat) })
}

func newOptions(opts []Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ret)
		}
	}
	if ret.Registry == nil {
		ret.Registry = jsonclass.DefaultRegistry()
	}
	if ret.TimeLayout == "" {
		ret.TimeLayout = time.RFC3339
	}
	return ret
}
