// SPDX-License-Identifier: MIT

package graph

import "github.com/sirupsen/logrus"

// Option configures a graph at construction time.
type Option func(*Options)

// Options holds construction parameters shared by both representations.
type Options struct {
	// Logger receives warnings for rejected mutations.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options logging to logrus.StandardLogger().
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// WithLogger routes warnings to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
