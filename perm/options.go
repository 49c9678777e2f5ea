package perm

import "github.com/go-logr/logr"

// Option configures a Generator at construction.
type Option func(*options)

type options struct {
	log logr.Logger
}

func applyOptions(opts []Option) options {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger used for failure events (V(1)).
// A zero logr.Logger is ignored.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		if l.GetSink() != nil {
			o.log = l
		}
	}
}
