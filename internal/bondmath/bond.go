// Package bondmath prices level-coupon bonds against a per-period rate
// schedule and solves for par yields, spot rates and yields to maturity.
//
// Rates are decimals (0.05 is 5%). Frequency is payments per year; a curve
// holds one annual rate per payment period, divided by the frequency when
// discounting.
package bondmath

import (
	"fmt"
	"math"

	"github.com/guttosm/bondcalc/internal/solver"
)

// ForwardRate returns the rate over (xn, rn] implied by spot r for rn
// periods and spot x for xn periods:
//
//	((1+r)^rn / (1+x)^xn)^(1/(rn-xn)) - 1
//
// The ratio is taken in log space so long horizons do not overflow; a
// forward that is itself too large for float64 is rejected.
func ForwardRate(r float64, rn int, x float64, xn int) (float64, error) {
	if rn == xn {
		return 0, fmt.Errorf("%w: forward rate needs distinct periods, both are %d", ErrInvalidArgument, rn)
	}
	if rn < 0 || xn < 0 {
		return 0, fmt.Errorf("%w: periods must not be negative (%d, %d)", ErrInvalidArgument, rn, xn)
	}
	if !(1+r > 0) || !(1+x > 0) || math.IsInf(r, 0) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: rates must be finite and above -100%% (%v, %v)", ErrInvalidArgument, r, x)
	}

	logGrowth := float64(rn)*math.Log1p(r) - float64(xn)*math.Log1p(x)
	f := math.Expm1(logGrowth / float64(rn-xn))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: forward rate over periods (%d, %d] is not representable", ErrInvalidArgument, xn, rn)
	}
	return f, nil
}

// Price returns the present value of a bond paying coupon*face/frequency each
// period and face at the last one, each cashflow discounted at its own curve rate.
func Price(curve SpotCurve, coupon float64, frequency int, face float64) (float64, error) {
	s, err := NewCashflowSchedule(curve, coupon, frequency, face)
	if err != nil {
		return 0, err
	}
	return s.PresentValue(), nil
}

// ParYield finds the coupon rate at which the bond prices at face.
func ParYield(curve SpotCurve, frequency int, face float64, p solver.Policy) (solver.Result, error) {
	if err := validateBond(curve, frequency, face); err != nil {
		return solver.Result{}, err
	}
	// price rises with the coupon
	f := func(y float64) float64 {
		v, _ := Price(curve, y, frequency, face)
		return v
	}
	res, err := solver.Bisect(f, face, p)
	if err != nil {
		return solver.Result{}, fmt.Errorf("par yield: %w", err)
	}
	return res, nil
}

// SpotRate strips the next spot rate: the rate r which, appended to the known
// shorter-maturity spot rates, prices a bond with the given coupon at face.
// An empty known curve strips the first maturity.
func SpotRate(known SpotCurve, coupon float64, frequency int, face float64, p solver.Policy) (solver.Result, error) {
	if len(known) > 0 {
		if err := known.Validate(); err != nil {
			return solver.Result{}, err
		}
	}
	if err := validateTerms(frequency, face); err != nil {
		return solver.Result{}, err
	}
	if math.IsNaN(coupon) || math.IsInf(coupon, 0) {
		return solver.Result{}, fmt.Errorf("%w: coupon rate must be finite", ErrInvalidArgument)
	}

	trial := make(SpotCurve, len(known)+1)
	copy(trial, known)
	last := len(known)

	price := func(r float64) float64 {
		trial[last] = r
		v, _ := Price(trial, coupon, frequency, face)
		return v
	}
	res, err := solver.Bisect(solver.Decreasing(price), -face, p)
	if err != nil {
		return solver.Result{}, fmt.Errorf("spot rate for period %d: %w", last+1, err)
	}
	res.Residual = -res.Residual
	return res, nil
}

// ZeroPrice discounts face over years compounding steps at r/frequency.
func ZeroPrice(r float64, years int, frequency int, face float64) (float64, error) {
	if err := validateTerms(frequency, face); err != nil {
		return 0, err
	}
	if years < 0 {
		return 0, fmt.Errorf("%w: years must not be negative, got %d", ErrInvalidArgument, years)
	}
	step := 1 + r/float64(frequency)
	if !(step > 0) || math.IsInf(step, 0) {
		return 0, fmt.Errorf("%w: rate %v gives a non-positive growth factor", ErrInvalidArgument, r)
	}
	return face / math.Pow(step, float64(years)), nil
}

// YieldToMaturity finds the flat rate that discounts the bond's cashflows to
// the purchase price.
func YieldToMaturity(coupon float64, years int, frequency int, purchase float64, face float64, p solver.Policy) (solver.Result, error) {
	if years <= 0 {
		return solver.Result{}, fmt.Errorf("%w: years must be positive, got %d", ErrInvalidArgument, years)
	}
	if !(purchase > 0) || math.IsInf(purchase, 0) {
		return solver.Result{}, fmt.Errorf("%w: purchase price must be positive, got %v", ErrInvalidArgument, purchase)
	}
	if err := validateTerms(frequency, face); err != nil {
		return solver.Result{}, err
	}

	periods := years * frequency
	price := func(y float64) float64 {
		v, _ := Price(FlatRateGuess{Rate: y, Periods: periods}.Curve(), coupon, frequency, face)
		return v
	}
	res, err := solver.Bisect(solver.Decreasing(price), -purchase, p)
	if err != nil {
		return solver.Result{}, fmt.Errorf("yield to maturity: %w", err)
	}
	res.Residual = -res.Residual
	return res, nil
}
