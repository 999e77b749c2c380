package fswitch

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/fswitch/pkg/fswitch/equal"
)

// Options configures a Switch. The zero value logs nothing and uses the
// default comparison rules.
type Options struct {
	Logger            zerolog.Logger
	Comparer          any
	SerializedObjects bool
}

// Option sets a field of Options, see On.
type Option func(*Options)

// WithLogger traces case evaluation at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithComparer replaces the comparison strategy. A comparer whose type does
// not match the subject type is ignored. While it is set, a candidate list is
// only ever compared element by element.
func WithComparer[S any](c equal.Comparer[S]) Option {
	return func(o *Options) {
		if c != nil {
			o.Comparer = c
		}
	}
}

// WithSerializedObjects compares objects by canonical JSON text, so the
// field order produced by the serializer matters.
func WithSerializedObjects() Option {
	return func(o *Options) {
		o.SerializedObjects = true
	}
}

func newOptions(opts []Option) Options {
	o := Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) engine() equal.Engine {
	return equal.Engine{SerializedObjects: o.SerializedObjects}
}

func comparerFor[S any](o Options) (equal.Comparer[S], bool) {
	if o.Comparer != nil {
		if c, ok := o.Comparer.(equal.Comparer[S]); ok {
			return c, true
		}
		o.Logger.Warn().Type("comparer", o.Comparer).Msg("comparer ignored, subject type mismatch")
	}
	return equal.Using[S](o.engine()), false
}
