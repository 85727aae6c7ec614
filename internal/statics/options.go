package statics

import (
	"errors"
	"log/slog"

	"github.com/alexiusacademia/gobeam/internal/logging"
)

var (
	// ErrGeometricallyUnstable is returned when the support layout forms a mechanism.
	ErrGeometricallyUnstable = errors.New("structure is geometrically unstable")
	// ErrStaticallyUnstable is returned when there are fewer reactions than equations.
	ErrStaticallyUnstable = errors.New("structure is statically unstable")
	// ErrStaticallyIndeterminate is returned when there are more reactions than equations.
	ErrStaticallyIndeterminate = errors.New("structure is statically indeterminate")
	// ErrNotContinuous is returned when a beam is not a two-span continuous beam.
	ErrNotContinuous = errors.New("beam is not a two-span continuous beam")
)

type options struct {
	checkDeterminacy bool
	logger           *slog.Logger
}

func defaultOptions() options {
	return options{checkDeterminacy: true, logger: logging.Discard()}
}

// Option configures a solver.
type Option func(*options)

// WithoutDeterminacyCheck skips the classification and stability checks.
// Used for sub-beams produced by the three-moment solver.
func WithoutDeterminacyCheck() Option {
	return func(o *options) { o.checkDeterminacy = false }
}

// WithLogger sets the logger used for solver diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
