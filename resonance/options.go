// File: options.go
// Role: functional options for the generation entry points.

package resonance

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Option configures generation behavior via functional arguments.
// An invalid Option (e.g. a negative cap) is recorded internally and
// surfaced as ErrOptionViolation when generation is invoked.
type Option func(*Options)

// Options holds the parameters recognized by Generate and
// GenerateIsomorphic.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per worklist
	// step.
	Ctx context.Context

	// AllowExpandedOctet enables dectet/duodectet scoring for sulfur in
	// the octet filter.
	AllowExpandedOctet bool

	// KeepIsomorphic switches deduplication from isomorphism-based to
	// strict identity (atom-ID-preserving comparison).
	KeepIsomorphic bool

	// FilterStructures runs the four-stage filtration after generation.
	// When false the raw deduplicated set is returned.
	FilterStructures bool

	// ClarStructures routes polycyclic aromatic seeds through the Clar
	// sextet optimizer.
	ClarStructures bool

	// SaturateH (GenerateIsomorphic only) adds explicit hydrogens before
	// generation and strips them before returning.
	SaturateH bool

	// MaxStructures caps worklist growth; 0 means unbounded.
	MaxStructures int

	// Logger receives non-fatal corrections and filtration stage counts.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the Options used when none are supplied:
// background context, expanded octets allowed, filtration on, Clar off,
// isomorphism-based dedup, no cap, the package logger.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		AllowExpandedOctet: true,
		KeepIsomorphic:     false,
		FilterStructures:   true,
		ClarStructures:     false,
		SaturateH:          false,
		MaxStructures:      0,
		Logger:             logrus.StandardLogger(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAllowExpandedOctet toggles dectet scoring for sulfur.
func WithAllowExpandedOctet(allow bool) Option {
	return func(o *Options) { o.AllowExpandedOctet = allow }
}

// WithKeepIsomorphic switches deduplication to strict identity, keeping
// isomorphic-but-not-identical structures apart.
func WithKeepIsomorphic(keep bool) Option {
	return func(o *Options) { o.KeepIsomorphic = keep }
}

// WithFilterStructures toggles the filtration stage.
func WithFilterStructures(filter bool) Option {
	return func(o *Options) { o.FilterStructures = filter }
}

// WithClarStructures enables the Clar sextet optimizer for polycyclic
// aromatic seeds.
func WithClarStructures(clar bool) Option {
	return func(o *Options) { o.ClarStructures = clar }
}

// WithSaturateH saturates the seed with explicit hydrogens for the
// duration of GenerateIsomorphic.
func WithSaturateH(saturate bool) Option {
	return func(o *Options) { o.SaturateH = saturate }
}

// WithMaxStructures caps the number of structures the worklist may hold.
//
//	n > 0: stop appending once n structures exist
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStructures(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStructures cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStructures = n
	}
}

// WithLogger overrides the logger used for non-fatal corrections.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
