package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks degenerate inputs detected before any search.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBracketing marks a target not enclosed by f(Lower) and f(Upper).
	ErrBracketing = errors.New("target not bracketed")
	// ErrConvergence marks a search that stopped without a trustworthy root.
	ErrConvergence = errors.New("did not converge")
)

// BracketError carries the bound evaluations that failed the bracket check.
type BracketError struct {
	Lower, Upper     float64
	AtLower, AtUpper float64
	Target           float64
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%s: f(%g)=%g, f(%g)=%g, target %g (f must be increasing)",
		ErrBracketing, e.Lower, e.AtLower, e.Upper, e.AtUpper, e.Target)
}

func (e *BracketError) Unwrap() error { return ErrBracketing }

// ConvergenceError reports how far the search got before giving up.
type ConvergenceError struct {
	Iterations int
	Width      float64
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations (bracket width %g): %s", ErrConvergence, e.Iterations, e.Width, e.Reason)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }
