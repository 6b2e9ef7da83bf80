package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/guttosm/bondcalc/internal/bondmath"
	"github.com/guttosm/bondcalc/internal/domain/dto"
	"github.com/guttosm/bondcalc/internal/domain/models"
	"github.com/guttosm/bondcalc/internal/logger"
	"github.com/guttosm/bondcalc/internal/solver"
	"github.com/guttosm/bondcalc/internal/storage"
)

// BondService exposes the bond-math operations with the configured solver
// policy. Every successful call is recorded in the calculation audit trail.
type BondService interface {
	ForwardRate(ctx context.Context, req dto.ForwardRateRequest) (dto.CalculationResponse, error)
	Price(ctx context.Context, req dto.PriceRequest) (dto.CalculationResponse, error)
	ParYield(ctx context.Context, req dto.ParYieldRequest) (dto.CalculationResponse, error)
	SpotRate(ctx context.Context, req dto.SpotRateRequest) (dto.CalculationResponse, error)
	ZeroPrice(ctx context.Context, req dto.ZeroPriceRequest) (dto.CalculationResponse, error)
	YieldToMaturity(ctx context.Context, req dto.YTMRequest) (dto.CalculationResponse, error)
	HorizonReturn(ctx context.Context, req dto.HorizonReturnRequest) (dto.HorizonReturnResponse, error)
}

type bondService struct {
	policy   solver.Policy
	recorder storage.CalculationRepository
	log      *zerolog.Logger
}

// NewBondService wires the solver policy and an optional recorder (nil disables auditing).
func NewBondService(policy solver.Policy, recorder storage.CalculationRepository) BondService {
	return &bondService{policy: policy, recorder: recorder, log: logger.With("bond")}
}

func (s *bondService) ForwardRate(ctx context.Context, req dto.ForwardRateRequest) (dto.CalculationResponse, error) {
	v, err := bondmath.ForwardRate(req.Rate, req.Periods, req.BaseRate, req.BasePeriods)
	return s.closedForm(ctx, models.KindForwardRate, req, v, err)
}

func (s *bondService) Price(ctx context.Context, req dto.PriceRequest) (dto.CalculationResponse, error) {
	req.Normalize()
	v, err := bondmath.Price(req.Rates, req.CouponRate, req.Frequency, req.FaceValue)
	return s.closedForm(ctx, models.KindPrice, req, v, err)
}

func (s *bondService) ParYield(ctx context.Context, req dto.ParYieldRequest) (dto.CalculationResponse, error) {
	req.Normalize()
	res, err := bondmath.ParYield(req.Rates, req.Frequency, req.FaceValue, s.policy)
	return s.solved(ctx, models.KindParYield, req, res, err)
}

func (s *bondService) SpotRate(ctx context.Context, req dto.SpotRateRequest) (dto.CalculationResponse, error) {
	req.Normalize()
	res, err := bondmath.SpotRate(req.KnownRates, req.CouponRate, req.Frequency, req.FaceValue, s.policy)
	return s.solved(ctx, models.KindSpotRate, req, res, err)
}

func (s *bondService) ZeroPrice(ctx context.Context, req dto.ZeroPriceRequest) (dto.CalculationResponse, error) {
	req.Normalize()
	v, err := bondmath.ZeroPrice(req.Rate, req.Years, req.Frequency, req.FaceValue)
	return s.closedForm(ctx, models.KindZeroPrice, req, v, err)
}

func (s *bondService) YieldToMaturity(ctx context.Context, req dto.YTMRequest) (dto.CalculationResponse, error) {
	req.Normalize()
	res, err := bondmath.YieldToMaturity(req.CouponRate, req.Years, req.Frequency, req.PurchasePrice, req.FaceValue, s.policy)
	return s.solved(ctx, models.KindYTM, req, res, err)
}

func (s *bondService) HorizonReturn(ctx context.Context, req dto.HorizonReturnRequest) (dto.HorizonReturnResponse, error) {
	req.Normalize()
	out, err := bondmath.HorizonReturn(bondmath.HorizonInput{
		Rates:            req.Rates,
		RatesAreForwards: req.RatesAreForwards,
		Horizon:          req.Horizon,
		Coupon:           req.CouponRate,
		Face:             req.FaceValue,
		Purchase:         req.PurchasePrice,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("kind", models.KindHorizonReturn).Msg("calculation failed")
		return dto.HorizonReturnResponse{}, err
	}
	s.log.Debug().Str("kind", models.KindHorizonReturn).Float64("value", out.Return).Msg("calculation done")
	s.record(ctx, models.KindHorizonReturn, req, out.Return, 0)
	return dto.HorizonReturnResponse{
		Return:            out.Return,
		Forwards:          out.Forwards,
		ReinvestedCoupons: out.ReinvestedCoupons,
		SalePrice:         out.SalePrice,
	}, nil
}

func (s *bondService) closedForm(ctx context.Context, kind string, input any, v float64, err error) (dto.CalculationResponse, error) {
	s.log.Trace().Str("kind", kind).Interface("input", input).Msg("calculation input")
	if err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("calculation failed")
		return dto.CalculationResponse{}, err
	}
	s.log.Debug().Str("kind", kind).Float64("value", v).Msg("calculation done")
	s.record(ctx, kind, input, v, 0)
	return dto.CalculationResponse{Kind: kind, Value: v}, nil
}

func (s *bondService) solved(ctx context.Context, kind string, input any, res solver.Result, err error) (dto.CalculationResponse, error) {
	s.log.Trace().Str("kind", kind).Interface("input", input).Msg("calculation input")
	if err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("calculation failed")
		return dto.CalculationResponse{}, err
	}
	s.log.Debug().Str("kind", kind).Float64("value", res.Root).Int("iterations", res.Iterations).Msg("calculation done")
	s.record(ctx, kind, input, res.Root, res.Iterations)
	return dto.CalculationResponse{Kind: kind, Value: res.Root, Iterations: res.Iterations, Residual: res.Residual}, nil
}

// record never fails the calculation; audit errors are only logged.
func (s *bondService) record(ctx context.Context, kind string, input any, value float64, iterations int) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordCalculation(ctx, models.NewCalculation(kind, input, value, iterations)); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("record calculation failed")
	}
}
