package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisect_MonotoneFunctions(t *testing.T) {
	tests := []struct {
		name   string
		f      Func
		target float64
		policy Policy
		want   float64
	}{
		{
			name:   "linear",
			f:      func(x float64) float64 { return 2*x + 1 },
			target: 2,
			policy: DefaultPolicy(),
			want:   0.5,
		},
		{
			name:   "cubic",
			f:      func(x float64) float64 { return x * x * x },
			target: 0.125,
			policy: DefaultPolicy(),
			want:   0.5,
		},
		{
			name:   "exponential on wider interval",
			f:      math.Exp,
			target: math.E * math.E,
			policy: Policy{Lower: -5, Upper: 5, Tolerance: 1e-9},
			want:   2,
		},
		{
			name:   "decreasing wrapped",
			f:      Decreasing(func(x float64) float64 { return 100 / (1 + x) }),
			target: -80,
			policy: DefaultPolicy(),
			want:   0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Bisect(tt.f, tt.target, tt.policy)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, res.Root, tt.policy.Tolerance)
			assert.LessOrEqual(t, res.Iterations, tt.policy.IterationCap())
			assert.InDelta(t, 0, res.Residual, 1e-4)
		})
	}
}

func TestBisect_ExactHitAtBound(t *testing.T) {
	f := func(x float64) float64 { return x }

	res, err := Bisect(f, 0, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Root)
	assert.Zero(t, res.Iterations)

	res, err = Bisect(f, 1, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Root)
}

func TestBisect_NotBracketed(t *testing.T) {
	cases := []struct {
		name   string
		f      Func
		target float64
	}{
		{name: "target above range", f: func(x float64) float64 { return x }, target: 2},
		{name: "target below range", f: func(x float64) float64 { return x }, target: -1},
		{name: "decreasing not wrapped", f: func(x float64) float64 { return 1 - x }, target: 0.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Bisect(tc.f, tc.target, DefaultPolicy())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBracketing)

			var be *BracketError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tc.target, be.Target)
		})
	}
}

func TestBisect_InvalidArguments(t *testing.T) {
	id := func(x float64) float64 { return x }
	cases := []struct {
		name   string
		f      Func
		target float64
		policy Policy
	}{
		{name: "nil function", f: nil, target: 0.5, policy: DefaultPolicy()},
		{name: "inverted bounds", f: id, target: 0.5, policy: Policy{Lower: 1, Upper: 0, Tolerance: 1e-6}},
		{name: "zero tolerance", f: id, target: 0.5, policy: Policy{Lower: 0, Upper: 1}},
		{name: "infinite bound", f: id, target: 0.5, policy: Policy{Lower: 0, Upper: math.Inf(1), Tolerance: 1e-6}},
		{name: "nan target", f: id, target: math.NaN(), policy: DefaultPolicy()},
		{name: "undefined at bound", f: func(x float64) float64 { return math.Log(x - 0.5) }, target: 0, policy: DefaultPolicy()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Bisect(tc.f, tc.target, tc.policy)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestBisect_IterationCapExceeded(t *testing.T) {
	p := DefaultPolicy()
	p.MaxIterations = 5

	_, err := Bisect(func(x float64) float64 { return x }, 0.3, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConvergence)

	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 5, ce.Iterations)
}

func TestBisect_NaNInsideInterval(t *testing.T) {
	f := func(x float64) float64 {
		if x > 0.4 && x < 0.6 {
			return math.NaN()
		}
		return x
	}
	_, err := Bisect(f, 0.45, DefaultPolicy())
	assert.ErrorIs(t, err, ErrConvergence)
}

func TestBisect_ResidualCheckCatchesJump(t *testing.T) {
	// step function: bracketed, but no x satisfies f(x) = 0.5
	step := func(x float64) float64 {
		if x < 0.3 {
			return 0
		}
		return 1
	}

	res, err := Bisect(step, 0.5, DefaultPolicy())
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.Root, 1e-6)

	p := DefaultPolicy()
	p.ResidualTolerance = 1e-3
	_, err = Bisect(step, 0.5, p)
	assert.ErrorIs(t, err, ErrConvergence)
}

func TestPolicy_IterationCap(t *testing.T) {
	assert.Equal(t, 21, DefaultPolicy().IterationCap())
	assert.Equal(t, 7, Policy{Lower: 0, Upper: 1, Tolerance: 1e-6, MaxIterations: 7}.IterationCap())
	assert.Equal(t, 1, Policy{Lower: 0, Upper: 1e-7, Tolerance: 1e-6}.IterationCap())
}
