// Package matrix offers dense square-matrix algebra over float32.
//
// The matrix package provides:
//
//   - Dense, a row-major N×N matrix with bounds-checked At/Set and an
//     optional finite-value policy.
//   - Element-wise Add/Sub and MatVec, vectorized through vek32 for *Dense.
//   - Split/Combine, the quadrant decomposition behind recursion.
//   - MulNaive (O(n³)) and MulStrassen (seven recursive products per level,
//     naive below DefaultThreshold = 64).
//   - FindMax, a row-major scan returning the first greatest cell.
//   - NewDenseFromLanes/ToLanes, conversions from and to a lane-grouped
//     layout used by vectorized storage variants.
//
// MulStrassen requires the size to stay even at every halving step down to
// the threshold (e.g. 64·2^k); other sizes fail with ErrOddSize unless
// WithZeroPadding is given.
//
// All kernels are sequential, never mutate their inputs, and report failures
// as sentinel errors (ErrInvalidSize, ErrDimensionMismatch, ErrOddSize, ...)
// matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
