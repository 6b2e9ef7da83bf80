package solver

import (
	"fmt"
	"math"
)

// Func is a real-valued pricing function of a single rate.
type Func func(float64) float64

// Decreasing adapts a decreasing pricing function to the increasing
// convention expected by Bisect. Pair it with a negated target.
func Decreasing(f Func) Func {
	return func(x float64) float64 { return -f(x) }
}

// Policy controls the search interval and the stopping rules of Bisect.
//
// Fields:
//   - Lower, Upper: search interval, Lower < Upper.
//   - Tolerance: absolute interval width at which the search stops.
//   - MaxIterations: iteration cap; <= 0 derives it from the interval and tolerance.
//   - ResidualTolerance: if > 0, |f(root) - target| must not exceed it.
type Policy struct {
	Lower             float64
	Upper             float64
	Tolerance         float64
	MaxIterations     int
	ResidualTolerance float64
}

// DefaultPolicy searches [0, 1] down to 1e-6 with a derived iteration cap.
func DefaultPolicy() Policy {
	return Policy{Lower: 0, Upper: 1, Tolerance: 1e-6}
}

// Validate reports whether the policy describes a usable search.
func (p Policy) Validate() error {
	if math.IsNaN(p.Lower) || math.IsInf(p.Lower, 0) || math.IsNaN(p.Upper) || math.IsInf(p.Upper, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidArgument, p.Lower, p.Upper)
	}
	if p.Lower >= p.Upper {
		return fmt.Errorf("%w: lower bound %v must be below upper bound %v", ErrInvalidArgument, p.Lower, p.Upper)
	}
	if !(p.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidArgument, p.Tolerance)
	}
	if p.ResidualTolerance < 0 {
		return fmt.Errorf("%w: residual tolerance must not be negative, got %v", ErrInvalidArgument, p.ResidualTolerance)
	}
	return nil
}

// IterationCap returns the maximum number of halvings Bisect performs.
func (p Policy) IterationCap() int {
	if p.MaxIterations > 0 {
		return p.MaxIterations
	}
	width := p.Upper - p.Lower
	if width <= p.Tolerance {
		return 1
	}
	return int(math.Ceil(math.Log2(width/p.Tolerance))) + 1
}

// Result is the outcome of a successful Bisect call.
type Result struct {
	Root       float64 // midpoint of the final bracket
	Iterations int     // halvings performed
	Residual   float64 // f(Root) - target
}

// Bisect finds x in [p.Lower, p.Upper] with f(x) ≈ target.
//
// f must be increasing on the interval; wrap decreasing functions with
// Decreasing and negate the target. Both bounds are evaluated before the
// loop, so a target outside [f(Lower), f(Upper)] fails with a *BracketError
// instead of converging onto a bound.
func Bisect(f Func, target float64, p Policy) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("%w: nil pricing function", ErrInvalidArgument)
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return Result{}, fmt.Errorf("%w: target must be finite, got %v", ErrInvalidArgument, target)
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	lo, hi := p.Lower, p.Upper
	gLo := f(lo) - target
	gHi := f(hi) - target
	if math.IsNaN(gLo) || math.IsNaN(gHi) {
		return Result{}, fmt.Errorf("%w: pricing function is undefined at a bound", ErrInvalidArgument)
	}
	if gLo == 0 {
		return Result{Root: lo}, nil
	}
	if gHi == 0 {
		return Result{Root: hi}, nil
	}
	if gLo > 0 || gHi < 0 {
		return Result{}, &BracketError{
			Lower: lo, Upper: hi,
			AtLower: gLo + target, AtUpper: gHi + target,
			Target: target,
		}
	}

	maxIter := p.IterationCap()
	iter := 0
	for hi-lo > p.Tolerance {
		if iter >= maxIter {
			return Result{}, &ConvergenceError{Iterations: iter, Width: hi - lo, Reason: "iteration cap reached"}
		}
		iter++

		mid := (lo + hi) / 2
		g := f(mid) - target
		switch {
		case math.IsNaN(g):
			return Result{}, &ConvergenceError{Iterations: iter, Width: hi - lo, Reason: fmt.Sprintf("pricing function undefined at %v", mid)}
		case g == 0:
			return Result{Root: mid, Iterations: iter}, nil
		case g < 0:
			lo = mid
		default:
			hi = mid
		}
	}

	root := (lo + hi) / 2
	residual := f(root) - target
	if p.ResidualTolerance > 0 && !(math.Abs(residual) <= p.ResidualTolerance) {
		return Result{}, &ConvergenceError{
			Iterations: iter,
			Width:      hi - lo,
			Reason:     fmt.Sprintf("residual %.3g exceeds %.3g; pricing function may not be monotone", residual, p.ResidualTolerance),
		}
	}
	return Result{Root: root, Iterations: iter, Residual: residual}, nil
}
