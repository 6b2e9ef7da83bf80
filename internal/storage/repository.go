package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/guttosm/bondcalc/internal/domain/models"
	pq "github.com/lib/pq"
)

// CurveRepository defines contract for par-yield curve storage.
type CurveRepository interface {
	InsertCurveBatch(ctx context.Context, points []models.CurvePoint) error
	GetCurve(ctx context.Context, date time.Time) ([]models.CurvePoint, error)
	GetTenorSeries(ctx context.Context, tenor int, start, end time.Time) ([]models.CurvePoint, error)
	ListCurveDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
	HasIngestionForDate(ctx context.Context, date time.Time) (bool, error)
	UpsertIngestionLog(ctx context.Context, date time.Time, filename string, rowCount int) error
	DeleteCurveByDate(ctx context.Context, date time.Time) error
}

type curveRepository struct {
	db *sql.DB
}

func NewCurveRepository(db *sql.DB) CurveRepository {
	return &curveRepository{db: db}
}

// InsertCurveBatch bulk loads curve points with COPY in a single transaction.
func (r *curveRepository) InsertCurveBatch(ctx context.Context, points []models.CurvePoint) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"curve_points",
		"curve_date",
		"tenor",
		"par_yield",
		"source",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.CurveDate, p.Tenor, p.ParYield, p.Source); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetCurve returns every point stored for date, ordered by tenor.
// An unknown date yields an empty slice and no error.
func (r *curveRepository) GetCurve(ctx context.Context, date time.Time) ([]models.CurvePoint, error) {
	return r.queryPoints(ctx, `
		SELECT curve_date, tenor, par_yield, source
		FROM curve_points
		WHERE curve_date = $1
		ORDER BY tenor
	`, date)
}

// GetTenorSeries returns the history of one tenor in [start, end], oldest first.
func (r *curveRepository) GetTenorSeries(ctx context.Context, tenor int, start, end time.Time) ([]models.CurvePoint, error) {
	return r.queryPoints(ctx, `
		SELECT curve_date, tenor, par_yield, source
		FROM curve_points
		WHERE tenor = $1 AND curve_date BETWEEN $2 AND $3
		ORDER BY curve_date
	`, tenor, start, end)
}

func (r *curveRepository) queryPoints(ctx context.Context, query string, args ...interface{}) ([]models.CurvePoint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]models.CurvePoint, 0)
	for rows.Next() {
		var p models.CurvePoint
		if err := rows.Scan(&p.CurveDate, &p.Tenor, &p.ParYield, &p.Source); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// ListCurveDates returns the distinct dates with stored curves in [start, end].
func (r *curveRepository) ListCurveDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT curve_date
		FROM curve_points
		WHERE curve_date BETWEEN $1 AND $2
		ORDER BY curve_date
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// HasIngestionForDate checks if an ingestion was already recorded for a given business day.
func (r *curveRepository) HasIngestionForDate(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE file_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a given day.
func (r *curveRepository) UpsertIngestionLog(ctx context.Context, date time.Time, filename string, rowCount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ingestion_log (file_date, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (file_date)
		DO UPDATE SET filename = EXCLUDED.filename,
		              row_count = EXCLUDED.row_count,
		              ingested_at = NOW()
	`, date, filename, rowCount)
	return err
}

// DeleteCurveByDate removes all points for a given curve_date.
func (r *curveRepository) DeleteCurveByDate(ctx context.Context, date time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM curve_points WHERE curve_date = $1`, date)
	return err
}
