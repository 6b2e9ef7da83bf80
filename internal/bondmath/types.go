package bondmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/guttosm/bondcalc/internal/solver"
)

// Errors re-exported so callers do not need to import solver to classify failures.
var (
	ErrInvalidArgument = solver.ErrInvalidArgument
	ErrBracketing      = solver.ErrBracketing
	ErrConvergence     = solver.ErrConvergence
)

// SpotCurve holds one annual discount rate per payment period.
// Element t-1 discounts the cashflow paid at period t.
type SpotCurve []float64

// Validate rejects empty curves and non-finite rates.
func (c SpotCurve) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty rate schedule", ErrInvalidArgument)
	}
	for i, r := range c {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: rate %d is not finite", ErrInvalidArgument, i+1)
		}
	}
	return nil
}

// FlatRateGuess is a single candidate rate applied to every period.
type FlatRateGuess struct {
	Rate    float64
	Periods int
}

// Curve expands the guess into a SpotCurve of g.Periods identical rates.
func (g FlatRateGuess) Curve() SpotCurve {
	if g.Periods <= 0 {
		return nil
	}
	c := make(SpotCurve, g.Periods)
	for i := range c {
		c[i] = g.Rate
	}
	return c
}

// Cashflow is one payment of a CashflowSchedule.
type Cashflow struct {
	Period int     // 1-based payment index
	Rate   float64 // per-period discount rate (annual rate / frequency)
	Amount float64
}

// DiscountFactor returns 1 / (1+Rate)^Period.
func (c Cashflow) DiscountFactor() float64 {
	return 1 / math.Pow(1+c.Rate, float64(c.Period))
}

// CashflowSchedule is the ordered list of a bond's remaining payments.
type CashflowSchedule struct {
	flows []Cashflow
}

// NewCashflowSchedule lays out a level-coupon bond over the periods of curve.
//
// Every period pays face*coupon/frequency; the final period also returns the face.
func NewCashflowSchedule(curve SpotCurve, coupon float64, frequency int, face float64) (CashflowSchedule, error) {
	if err := validateBond(curve, frequency, face); err != nil {
		return CashflowSchedule{}, err
	}
	if math.IsNaN(coupon) || math.IsInf(coupon, 0) {
		return CashflowSchedule{}, fmt.Errorf("%w: coupon rate must be finite", ErrInvalidArgument)
	}

	n := float64(frequency)
	couponAmount := face * coupon / n
	flows := make([]Cashflow, len(curve))
	for i, r := range curve {
		flows[i] = Cashflow{Period: i + 1, Rate: r / n, Amount: couponAmount}
	}
	flows[len(flows)-1].Amount += face
	return CashflowSchedule{flows: flows}, nil
}

// Len returns the number of payments.
func (s CashflowSchedule) Len() int { return len(s.flows) }

// Flows returns a copy of the payments.
func (s CashflowSchedule) Flows() []Cashflow {
	return append([]Cashflow(nil), s.flows...)
}

// PresentValue discounts every payment at its own period rate.
func (s CashflowSchedule) PresentValue() float64 {
	if len(s.flows) == 0 {
		return 0
	}
	amounts := make([]float64, len(s.flows))
	factors := make([]float64, len(s.flows))
	for i, cf := range s.flows {
		amounts[i] = cf.Amount
		factors[i] = cf.DiscountFactor()
	}
	return floats.Dot(amounts, factors)
}

func validateBond(curve SpotCurve, frequency int, face float64) error {
	if err := curve.Validate(); err != nil {
		return err
	}
	return validateTerms(frequency, face)
}

// validateTerms checks the payment frequency and face value of a bond.
func validateTerms(frequency int, face float64) error {
	if frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %d", ErrInvalidArgument, frequency)
	}
	if !(face > 0) || math.IsInf(face, 0) {
		return fmt.Errorf("%w: face value must be positive, got %v", ErrInvalidArgument, face)
	}
	return nil
}
