// SPDX-License-Identifier: MIT
// Package bench times the matrix kernels against each other.
//
// Purpose:
//   - Generate two random operands and a vector from a seed.
//   - Time MulNaive, MulStrassen, MatVec and FindMax (best of Repeat runs).
//   - Optionally verify that both products agree and that the lane-grouped
//     layout round-trips the operand.
//
// The runner never logs; the caller decides what to print.

package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/strassen/matrix"
)

// VerifyRTol is the relative tolerance used to compare the two products.
// Strassen reorders float32 sums, so large random operands rarely agree bitwise.
const VerifyRTol = 1e-4

// Timings holds the best observed wall time per kernel.
type Timings struct {
	Naive    time.Duration
	Strassen time.Duration
	MatVec   time.Duration
	FindMax  time.Duration
}

// Result is the outcome of one run.
type Result struct {
	Config  Config
	Timings Timings

	A, B     *matrix.Dense // operands
	Naive    *matrix.Dense // MulNaive(A, B)
	Strassen *matrix.Dense // MulStrassen(A, B)
	Vector   []float32     // random vector x
	Product  []float32     // A·x
	Max      matrix.Element

	Verified  bool // products compared and agreed
	LaneWidth int  // lane width used for the layout check, 0 if skipped
}

// Run executes one configuration.
//
// Errors: ErrInvalidConfig / ErrInvalidMax, any matrix sentinel (e.g.
// ErrOddSize without Pad), ErrMismatch when Verify finds a difference, or
// ctx.Err().
func Run(ctx context.Context, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	res := &Result{Config: cfg}

	var err error
	if res.A, err = randomDense(cfg.Size, rng, cfg.Max); err != nil {
		return nil, err
	}
	if res.B, err = randomDense(cfg.Size, rng, cfg.Max); err != nil {
		return nil, err
	}
	if res.Vector, err = RandomVector(cfg.Size, rng, cfg.Max); err != nil {
		return nil, err
	}

	opts := cfg.Options()
	for r := 0; r < cfg.Repeat; r++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		if res.Naive, err = matrix.MulNaive(res.A, res.B); err != nil {
			return nil, err
		}
		res.Timings.Naive = best(res.Timings.Naive, time.Since(start))

		start = time.Now()
		if res.Strassen, err = matrix.MulStrassenContext(ctx, res.A, res.B, opts...); err != nil {
			return nil, err
		}
		res.Timings.Strassen = best(res.Timings.Strassen, time.Since(start))

		start = time.Now()
		if res.Product, err = matrix.MatVec(res.A, res.Vector); err != nil {
			return nil, err
		}
		res.Timings.MatVec = best(res.Timings.MatVec, time.Since(start))

		start = time.Now()
		if res.Max, err = matrix.FindMax(res.A, matrix.SeedElement()); err != nil {
			return nil, err
		}
		res.Timings.FindMax = best(res.Timings.FindMax, time.Since(start))
	}

	if cfg.Verify {
		if err = verify(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// RunPlan executes every run of p in order and stops at the first failure.
func RunPlan(ctx context.Context, p *Plan) ([]*Result, error) {
	out := make([]*Result, 0, len(p.Runs))
	for i, cfg := range p.Runs {
		res, err := Run(ctx, cfg)
		if err != nil {
			return out, fmt.Errorf("run %d: %w", i, err)
		}
		out = append(out, res)
	}

	return out, nil
}

// verify compares both products and round-trips A through the lane layout
// when the native lane width divides the size.
func verify(res *Result) error {
	ok, err := matrix.AllClose(res.Strassen, res.Naive, VerifyRTol, 0)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMismatch
	}

	width := matrix.NativeLaneWidth()
	if res.Config.Size%width == 0 {
		lanes, err := matrix.ToLanes(res.A, width)
		if err != nil {
			return err
		}
		back, err := matrix.NewDenseFromLanes(lanes, width)
		if err != nil {
			return err
		}
		if ok, err = matrix.AllClose(back, res.A, 0, 0); err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("lane layout (width %d): %w", width, ErrMismatch)
		}
		res.LaneWidth = width
	}
	res.Verified = true

	return nil
}

func randomDense(n int, rng *rand.Rand, max int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	if err = FillRandom(m, rng, max); err != nil {
		return nil, err
	}

	return m, nil
}

// best keeps the smaller non-zero duration.
func best(cur, d time.Duration) time.Duration {
	if cur == 0 || d < cur {
		return d
	}

	return cur
}
