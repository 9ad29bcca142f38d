// SPDX-License-Identifier: MIT

// Package mat4: per-matrix numeric policy.
//
// Two knobs, fixed at New and carried by Copy and Convert:
//   - the finite-only guard (values are checked at the width they are stored);
//   - the ApproxEqual tolerance, which defaults per width (float32 vs float64).
//
// WithEpsilon panics on a negative or non-finite tolerance.
package mat4

import (
	"math"

	"github.com/bik20/WebViewer/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the ApproxEqual tolerance for 64-bit matrices.
	DefaultEpsilon = 1e-9

	// DefaultEpsilon32 is the ApproxEqual tolerance for 32-bit matrices,
	// a few ulps around 1.0 at single precision.
	DefaultEpsilon32 = 1e-5

	// DefaultValidateNaNInf rejects NaN/±Inf on Set, SetAt, Translation,
	// Scale, Convert and on Multiply results (after narrowing to the
	// destination width).
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "mat4: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0
	epsSet         bool    // eps given explicitly; otherwise width default
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the tolerance used by ApproxEqual.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.epsSet = true
	}
}

// WithValidateNaNInf enables the finite-only policy (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only policy; NaN and ±Inf are
// then stored as given.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the defaults and resolves the epsilon for
// precision p when none was given.
// Complexity: O(len(opts)).
func gatherOptions(p numeric.Precision, opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.epsSet && p == numeric.Float32 {
		o.eps = DefaultEpsilon32
	}

	return o
}
