package bondmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/guttosm/bondcalc/internal/solver"
)

// BootstrapSpotCurve strips a spot curve from par yields, one maturity at a
// time: spot i is the rate that prices a par bond with coupon par[i] at face,
// given the spots already stripped.
func BootstrapSpotCurve(par []float64, frequency int, face float64, p solver.Policy) (SpotCurve, error) {
	if err := SpotCurve(par).Validate(); err != nil {
		return nil, err
	}
	spot := make(SpotCurve, 0, len(par))
	for _, y := range par {
		res, err := SpotRate(spot, y, frequency, face, p)
		if err != nil {
			return nil, err
		}
		spot = append(spot, res.Root)
	}
	return spot, nil
}

// ForwardCurve converts a spot curve into one-period forward rates:
// element i-1 is the forward from period i to i+1.
func ForwardCurve(spot SpotCurve) ([]float64, error) {
	if len(spot) < 2 {
		return nil, fmt.Errorf("%w: forward curve needs at least two spot rates, got %d", ErrInvalidArgument, len(spot))
	}
	out := make([]float64, 0, len(spot)-1)
	for i := 1; i < len(spot); i++ {
		f, err := ForwardRate(spot[i], i+1, spot[i-1], i)
		if err != nil {
			return nil, fmt.Errorf("forward %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// HorizonInput describes a bond held for Horizon years and sold before maturity.
type HorizonInput struct {
	// Rates are spot rates, or one-year forwards when RatesAreForwards is set.
	Rates            []float64
	RatesAreForwards bool
	Horizon          int
	Coupon           float64
	Face             float64
	Purchase         float64
}

// HorizonResult breaks down the realised return of a HorizonInput.
type HorizonResult struct {
	Forwards          []float64
	ReinvestedCoupons float64
	SalePrice         float64
	Return            float64 // annualised
}

// HorizonReturn compounds each coupon to the horizon at the forward rates,
// prices the bond at the horizon off the last forward, and annualises
// (sale + coupons) / purchase over the holding period.
func HorizonReturn(in HorizonInput) (HorizonResult, error) {
	if in.Horizon <= 0 {
		return HorizonResult{}, fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidArgument, in.Horizon)
	}
	if !(in.Face > 0) || !(in.Purchase > 0) || math.IsInf(in.Face, 0) || math.IsInf(in.Purchase, 0) {
		return HorizonResult{}, fmt.Errorf("%w: face and purchase price must be positive and finite", ErrInvalidArgument)
	}
	if math.IsNaN(in.Coupon) || math.IsInf(in.Coupon, 0) {
		return HorizonResult{}, fmt.Errorf("%w: coupon rate must be finite, got %v", ErrInvalidArgument, in.Coupon)
	}
	if err := SpotCurve(in.Rates).Validate(); err != nil {
		return HorizonResult{}, err
	}

	forwards := in.Rates
	if in.RatesAreForwards && len(in.Rates) < in.Horizon {
		return HorizonResult{}, fmt.Errorf("%w: %d forwards cannot cover a %d-year horizon", ErrInvalidArgument, len(in.Rates), in.Horizon)
	}
	if !in.RatesAreForwards {
		if len(in.Rates) < in.Horizon+1 {
			return HorizonResult{}, fmt.Errorf("%w: %d spot rates cannot produce %d forwards", ErrInvalidArgument, len(in.Rates), in.Horizon)
		}
		var err error
		forwards, err = ForwardCurve(SpotCurve(in.Rates[:in.Horizon+1]))
		if err != nil {
			return HorizonResult{}, err
		}
	}

	growth := make([]float64, len(forwards))
	for i, f := range forwards {
		if !(1+f > 0) {
			return HorizonResult{}, fmt.Errorf("%w: forward %d is at or below -100%%", ErrInvalidArgument, i+1)
		}
		growth[i] = 1 + f
	}
	last := len(forwards) - 1

	coupon := in.Face * in.Coupon
	var reinvested float64
	for i := 0; i < in.Horizon; i++ {
		factor := 1.0
		if i < last {
			factor = floats.Prod(growth[i:last])
		}
		reinvested += factor * coupon
	}

	sale := in.Face * (1 + in.Coupon) / growth[last]
	ret := math.Pow((sale+reinvested)/in.Purchase, 1/float64(in.Horizon)) - 1
	if math.IsNaN(ret) {
		return HorizonResult{}, fmt.Errorf("%w: horizon value is not positive", ErrInvalidArgument)
	}
	if math.IsInf(ret, 0) || math.IsInf(sale, 0) || math.IsInf(reinvested, 0) {
		return HorizonResult{}, fmt.Errorf("%w: horizon value overflows", ErrInvalidArgument)
	}

	return HorizonResult{
		Forwards:          append([]float64(nil), forwards...),
		ReinvestedCoupons: reinvested,
		SalePrice:         sale,
		Return:            ret,
	}, nil
}
