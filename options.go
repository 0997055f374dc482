package roster

import (
	"time"

	"github.com/rs/zerolog"
)

// Options configures a single Solve invocation. Its zero value is usable:
// a zero Budget is replaced by DefaultBudget, a zero Workers by
// DefaultWorkers, and a zero Logger by zerolog.Nop() so importing this
// package as a library never forces output (SPEC_FULL.md #10).
type Options struct {
	// Budget is the wall-clock time given to the whole solve (spec.md
	// #4.5 default 300s). Every attempt of the relaxation ladder draws on
	// this one budget; a relaxed attempt does not get a fresh one.
	Budget time.Duration
	// Workers is the requested parallel portfolio size, clamped to 8 by
	// withDefaults. It is not passed to the HiGHS backend and has no
	// effect on the solve.
	Workers int
	// RelativeGapPercent stops the search early once the relative gap to
	// the best bound drops below this percentage (spec.md #4.5 default 1).
	RelativeGapPercent float64
	// Seed is accepted for a solver tie-breaking order but is not passed
	// to the HiGHS backend; it has no effect, and two Solve calls with the
	// same Seed are not guaranteed to return the same assignments.
	Seed int64
	// Cancel is checked by the solver driver before each attempt, not
	// during a running HiGHS solve. Once it is closed, Solve returns
	// Status Unknown, no assignments, and ErrCancelled; no incumbent from
	// an earlier attempt is returned.
	Cancel <-chan struct{}
	// Logger receives structured progress events (the relaxation step of
	// each attempt and its outcome). A nil Logger defaults to a no-op
	// logger, so importing this package never forces output.
	Logger *zerolog.Logger
}

const (
	DefaultBudget             = 300 * time.Second
	DefaultWorkers            = 8
	DefaultRelativeGapPercent = 1.0
)

// withDefaults returns a copy of o with zero-valued fields replaced by
// their documented defaults.
func (o Options) withDefaults() Options {
	if o.Budget <= 0 {
		o.Budget = DefaultBudget
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Workers > 8 {
		o.Workers = 8
	}
	if o.RelativeGapPercent <= 0 {
		o.RelativeGapPercent = DefaultRelativeGapPercent
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}
