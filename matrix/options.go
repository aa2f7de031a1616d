// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication engine and
// the numeric policy of constructors. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The threshold is the size at or below which MulStrassen hands the block
//     to MulNaive. Below ~64 the allocations and additions of one Strassen
//     level cost more than the saved multiplication.
//   - Zero padding is an explicit opt-in. Without it, sizes that cannot be
//     halved down to the threshold fail with ErrOddSize.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the recursion cut-off of MulStrassen (n ≤ threshold ⇒ naive).
	DefaultThreshold = 64

	// DefaultZeroPadding keeps the strict halving precondition of MulStrassen.
	DefaultZeroPadding = false

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultLaneWidth is the float32 lane count assumed when the CPU reports
	// no known vector unit (one 256-bit register).
	DefaultLaneWidth = 8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "matrix: WithThreshold: threshold must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	threshold      int  // DefaultThreshold
	zeroPadding    bool // DefaultZeroPadding
	validateNaNInf bool // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithThreshold sets the size at or below which MulStrassen uses MulNaive.
// Implementation:
//   - Stage 1: validate t ≥ 1.
//   - Stage 2: return a setter that writes t into Options.
//
// Behavior highlights:
//   - Threshold 1 forces recursion down to 1×1 blocks (useful in tests).
//
// Errors:
//   - Panics with a stable message when t < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithThreshold(t int) Option {
	if t < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithZeroPadding enables zero padding of operands whose size cannot be halved
// down to the threshold. The operands are embedded into the smallest
// threshold·2^k ≥ n block, multiplied, and the leading n×n block is returned.
// Complexity: O(1); the padding itself costs O(m²) per operand at call time.
func WithZeroPadding() Option {
	return func(o *Options) { o.zeroPadding = true }
}

// WithNoZeroPadding restores the strict halving precondition (default).
func WithNoZeroPadding() Option {
	return func(o *Options) { o.zeroPadding = false }
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Affects matrices created by the NewDenseFrom* constructors.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves opts over the defaults and returns the effective snapshot.
// Useful for callers that want to log or inspect the configuration.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Threshold returns the effective recursion threshold.
func (o Options) Threshold() int { return o.threshold }

// ZeroPadding reports whether zero padding is enabled.
func (o Options) ZeroPadding() bool { return o.zeroPadding }

// ValidateNaNInf reports whether the finite-value policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user setters over the defaults in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		threshold:      DefaultThreshold,
		zeroPadding:    DefaultZeroPadding,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set == nil {
			continue // tolerate nil entries in option slices
		}
		set(&o)
	}

	return o
}
