package setcheck

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTrials  = 200
	defaultTimeout = 5 * time.Second
)

// Option configures a Sweep.
type Option interface{}

type seedOption struct{ seed int64 }

// WithSeed fixes the pseudo-random source used to generate cases.
//
// Sweeps with the same seed over the same candidates check the same cases,
// so a failing report can be replayed exactly.
// The default is taken from the clock.
func WithSeed(seed int64) Option {
	return seedOption{seed: seed}
}

type trialsOption struct{ n int }

// WithTrials configures the number of randomized cases checked per
// property and candidate.
//
// Default value is 200.
func WithTrials(n int) Option {
	return trialsOption{n: n}
}

type timeoutOption struct{ d time.Duration }

// WithTimeout bounds the time a single property trial may take.
//
// A candidate whose operations do not terminate yields a timeout verdict
// for that property instead of hanging the sweep.
// Default value is 5 seconds.
func WithTimeout(d time.Duration) Option {
	return timeoutOption{d: d}
}

type onlyOption struct{ names []string }

// WithCandidates restricts the sweep to the named candidates.
func WithCandidates(names ...string) Option {
	return onlyOption{names: names}
}

type loggerOption struct{ log logrus.FieldLogger }

// WithLogger configures the logger used for sweep progress and load
// failures. Default is the standard logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return loggerOption{log: log}
}
