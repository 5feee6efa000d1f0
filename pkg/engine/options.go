package engine

import "github.com/seekerror/stdlib/pkg/lang"

// Options are decision-time overrides. Zero value means "defer to the
// persona-dependent coin flips."
type Options struct {
	// Smart forces the quality-filter flag instead of drawing it from
	// persona.SmartFlag -- useful for deterministic testing.
	Smart lang.Optional[bool]
}

// Option configures a single GetMove call.
type Option func(*Options)

// WithSmart forces the smart-quality-filter flag for this decision.
func WithSmart(smart bool) Option {
	return func(o *Options) {
		o.Smart = lang.Some(smart)
	}
}
