package combo

import "github.com/go-logr/logr"

// Option configures a generator at construction.
type Option func(*options)

type options struct {
	log logr.Logger
}

func defaultOptions() options {
	return options{log: logr.Discard()}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger used for split and failure events (V(1)).
// Split-off siblings inherit it. A zero logr.Logger is ignored.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		if l.GetSink() != nil {
			o.log = l
		}
	}
}
