package service

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/guttosm/bondcalc/internal/bondmath"
	"github.com/guttosm/bondcalc/internal/domain/dto"
	"github.com/guttosm/bondcalc/internal/domain/models"
	"github.com/guttosm/bondcalc/internal/ingestion"
	"github.com/guttosm/bondcalc/internal/solver"
	"github.com/guttosm/bondcalc/internal/storage"
)

// CurveService serves stored par-yield curves and analytics derived from them.
type CurveService interface {
	// GetCurve returns nil, nil when no curve is stored for date.
	GetCurve(ctx context.Context, date time.Time) (*models.Curve, error)
	// TenorStats returns nil, nil when the tenor has no points in range.
	TenorStats(ctx context.Context, tenor int, start, end time.Time) (*models.TenorStats, error)
	MissingDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type curveService struct {
	repo     storage.CurveRepository
	policy   solver.Policy
	calendar ingestion.Calendar
}

func NewCurveService(repo storage.CurveRepository, policy solver.Policy, calendar ingestion.Calendar) CurveService {
	return &curveService{repo: repo, policy: policy, calendar: calendar}
}

// GetCurve loads the par curve for date and bootstraps annual spot rates and
// one-year forwards from it. Stored tenors must run 1..n without gaps.
func (s *curveService) GetCurve(ctx context.Context, date time.Time) (*models.Curve, error) {
	points, err := s.repo.GetCurve(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load curve: %w", err)
	}
	if len(points) == 0 {
		return nil, nil
	}

	c := &models.Curve{
		Date:   points[0].CurveDate,
		Tenors: make([]int, len(points)),
		Par:    make([]float64, len(points)),
	}
	for i, p := range points {
		if p.Tenor != i+1 {
			return nil, fmt.Errorf("%w: curve %s has no tenor %d; bootstrapping needs annual tenors 1..n",
				bondmath.ErrInvalidArgument, date.Format("2006-01-02"), i+1)
		}
		c.Tenors[i] = p.Tenor
		c.Par[i] = p.ParYield
	}

	spot, err := bondmath.BootstrapSpotCurve(c.Par, 1, dto.DefaultFaceValue, s.policy)
	if err != nil {
		return nil, fmt.Errorf("bootstrap %s: %w", date.Format("2006-01-02"), err)
	}
	c.Spot = spot

	c.Forwards = []float64{}
	if len(spot) > 1 {
		if c.Forwards, err = bondmath.ForwardCurve(spot); err != nil {
			return nil, fmt.Errorf("forwards %s: %w", date.Format("2006-01-02"), err)
		}
	}
	return c, nil
}

// TenorStats summarises a tenor's par-yield history in [start, end].
// StdDev is the sample standard deviation, zero for a single observation.
func (s *curveService) TenorStats(ctx context.Context, tenor int, start, end time.Time) (*models.TenorStats, error) {
	if tenor <= 0 {
		return nil, fmt.Errorf("%w: tenor must be positive, got %d", bondmath.ErrInvalidArgument, tenor)
	}
	if err := checkRange(start, end); err != nil {
		return nil, err
	}

	series, err := s.repo.GetTenorSeries(ctx, tenor, start, end)
	if err != nil {
		return nil, fmt.Errorf("load tenor %d: %w", tenor, err)
	}
	if len(series) == 0 {
		return nil, nil
	}

	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.ParYield
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		std = 0
	}

	return &models.TenorStats{
		Tenor:  tenor,
		Start:  series[0].CurveDate,
		End:    series[len(series)-1].CurveDate,
		Count:  len(values),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}, nil
}

// MissingDates lists business days in [start, end] that have no stored curve.
func (s *curveService) MissingDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	have, err := s.repo.ListCurveDates(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list curve dates: %w", err)
	}
	return s.calendar.MissingBusinessDays(start, end, have), nil
}

func checkRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", bondmath.ErrInvalidArgument)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", bondmath.ErrInvalidArgument,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return nil
}
