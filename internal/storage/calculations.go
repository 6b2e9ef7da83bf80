package storage

import (
	"context"
	"database/sql"

	"github.com/guttosm/bondcalc/internal/domain/models"
)

// CalculationRepository persists the audit trail of bond-math calls.
type CalculationRepository interface {
	RecordCalculation(ctx context.Context, calc models.Calculation) error
}

type calculationRepository struct {
	db *sql.DB
}

func NewCalculationRepository(db *sql.DB) CalculationRepository {
	return &calculationRepository{db: db}
}

// RecordCalculation inserts one audit row.
func (r *calculationRepository) RecordCalculation(ctx context.Context, calc models.Calculation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calculations (id, kind, input, result, iterations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, calc.ID, calc.Kind, string(calc.Input), calc.Result, calc.Iterations, calc.CreatedAt)
	return err
}
