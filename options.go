package lambdaioc

import "github.com/sirupsen/logrus"

type options struct {
	logger logrus.FieldLogger
}

// Option configures a container created with New. Derived containers keep
// the options of the container they come from.
type Option func(*options)

// WithLogger sets the logger used for registration and resolution
// diagnostics. Everything is logged at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func defaultOptions() options {
	return options{
		logger: logrus.StandardLogger(),
	}
}
