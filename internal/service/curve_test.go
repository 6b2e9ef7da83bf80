package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/guttosm/bondcalc/internal/bondmath"
	"github.com/guttosm/bondcalc/internal/domain/models"
	"github.com/guttosm/bondcalc/internal/ingestion"
	"github.com/guttosm/bondcalc/internal/solver"
)

type stubCurveRepo struct {
	points []models.CurvePoint
	dates  []time.Time
	err    error
}

func (s *stubCurveRepo) InsertCurveBatch(context.Context, []models.CurvePoint) error { return nil }
func (s *stubCurveRepo) GetCurve(context.Context, time.Time) ([]models.CurvePoint, error) {
	return s.points, s.err
}
func (s *stubCurveRepo) GetTenorSeries(context.Context, int, time.Time, time.Time) ([]models.CurvePoint, error) {
	return s.points, s.err
}
func (s *stubCurveRepo) ListCurveDates(context.Context, time.Time, time.Time) ([]time.Time, error) {
	return s.dates, s.err
}
func (s *stubCurveRepo) HasIngestionForDate(context.Context, time.Time) (bool, error) {
	return false, nil
}
func (s *stubCurveRepo) UpsertIngestionLog(context.Context, time.Time, string, int) error {
	return nil
}
func (s *stubCurveRepo) DeleteCurveByDate(context.Context, time.Time) error { return nil }

func day(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }

func parCurve(yields ...float64) []models.CurvePoint {
	out := make([]models.CurvePoint, len(yields))
	for i, y := range yields {
		out[i] = models.CurvePoint{CurveDate: day(10), Tenor: i + 1, ParYield: y, Source: "test"}
	}
	return out
}

func newCurveService(repo *stubCurveRepo) CurveService {
	return NewCurveService(repo, solver.DefaultPolicy(), ingestion.NewCalendar(nil))
}

func TestCurveService_GetCurve(t *testing.T) {
	cases := []struct {
		name       string
		repo       *stubCurveRepo
		wantNil    bool
		wantErr    error
		wantSpots  int
		wantFwds   int
		anyErr     bool
		flatAtRate float64
	}{
		{name: "flat curve", repo: &stubCurveRepo{points: parCurve(0.04, 0.04, 0.04)}, wantSpots: 3, wantFwds: 2, flatAtRate: 0.04},
		{name: "single tenor", repo: &stubCurveRepo{points: parCurve(0.02)}, wantSpots: 1, wantFwds: 0, flatAtRate: 0.02},
		{name: "no data", repo: &stubCurveRepo{}, wantNil: true},
		{name: "repository error", repo: &stubCurveRepo{err: errors.New("boom")}, anyErr: true},
		{
			name:    "gap in tenors",
			repo:    &stubCurveRepo{points: []models.CurvePoint{{Tenor: 1, ParYield: 0.02}, {Tenor: 3, ParYield: 0.03}}},
			wantErr: bondmath.ErrInvalidArgument,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := newCurveService(tc.repo).GetCurve(context.Background(), day(10))
			switch {
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			case tc.anyErr:
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			case err != nil:
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.wantNil {
				if out != nil {
					t.Fatalf("want nil curve, got %+v", out)
				}
				return
			}
			if len(out.Spot) != tc.wantSpots || len(out.Forwards) != tc.wantFwds {
				t.Fatalf("spots=%d forwards=%d", len(out.Spot), len(out.Forwards))
			}
			for _, s := range out.Spot {
				if !near(s, tc.flatAtRate, 1e-5) {
					t.Fatalf("flat par curve should bootstrap flat spots, got %v", out.Spot)
				}
			}
			for _, f := range out.Forwards {
				if !near(f, tc.flatAtRate, 1e-5) {
					t.Fatalf("flat spot curve should give flat forwards, got %v", out.Forwards)
				}
			}
			if out.Forwards == nil {
				t.Fatalf("forwards must be an empty slice, not nil")
			}
		})
	}
}

func TestCurveService_TenorStats(t *testing.T) {
	ctx := context.Background()
	series := []models.CurvePoint{
		{CurveDate: day(1), Tenor: 5, ParYield: 0.030},
		{CurveDate: day(2), Tenor: 5, ParYield: 0.032},
		{CurveDate: day(3), Tenor: 5, ParYield: 0.034},
	}
	svc := newCurveService(&stubCurveRepo{points: series})

	out, err := svc.TenorStats(ctx, 5, day(1), day(31))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Count != 3 || !near(out.Mean, 0.032, 1e-12) || !near(out.StdDev, 0.002, 1e-12) {
		t.Fatalf("unexpected stats: %+v", out)
	}
	if out.Min != 0.030 || out.Max != 0.034 || !out.Start.Equal(day(1)) || !out.End.Equal(day(3)) {
		t.Fatalf("unexpected range: %+v", out)
	}

	single, err := newCurveService(&stubCurveRepo{points: series[:1]}).TenorStats(ctx, 5, day(1), day(31))
	if err != nil || single.StdDev != 0 || math.IsNaN(single.StdDev) {
		t.Fatalf("single observation: out=%+v err=%v", single, err)
	}

	empty, err := newCurveService(&stubCurveRepo{}).TenorStats(ctx, 5, day(1), day(31))
	if err != nil || empty != nil {
		t.Fatalf("want nil,nil got %+v %v", empty, err)
	}
}

func TestCurveService_TenorStatsInvalid(t *testing.T) {
	svc := newCurveService(&stubCurveRepo{})
	cases := []struct {
		name       string
		tenor      int
		start, end time.Time
	}{
		{name: "zero tenor", tenor: 0, start: day(1), end: day(2)},
		{name: "reversed range", tenor: 5, start: day(3), end: day(2)},
		{name: "missing start", tenor: 5, end: day(2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.TenorStats(context.Background(), tc.tenor, tc.start, tc.end); !errors.Is(err, bondmath.ErrInvalidArgument) {
				t.Fatalf("want invalid argument, got %v", err)
			}
		})
	}
}

func TestCurveService_MissingDates(t *testing.T) {
	// 2024-05-06 is a Monday.
	svc := newCurveService(&stubCurveRepo{dates: []time.Time{day(6), day(8)}})
	missing, err := svc.MissingDates(context.Background(), day(6), day(12))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []time.Time{day(7), day(9), day(10)}
	if len(missing) != len(want) {
		t.Fatalf("got %v want %v", missing, want)
	}
	for i := range want {
		if !missing[i].Equal(want[i]) {
			t.Fatalf("missing[%d]=%v want %v", i, missing[i], want[i])
		}
	}

	if _, err := svc.MissingDates(context.Background(), day(12), day(6)); !errors.Is(err, bondmath.ErrInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
	if _, err := newCurveService(&stubCurveRepo{err: errors.New("boom")}).MissingDates(context.Background(), day(6), day(12)); err == nil {
		t.Fatalf("expected repository error")
	}
}
