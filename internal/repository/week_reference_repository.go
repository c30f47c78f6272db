package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kings-labs/elp-api/internal/models"
)

// WeekReferenceRepository handles the singleton week anchor row.
type WeekReferenceRepository struct {
	db *sqlx.DB
}

// NewWeekReferenceRepository instantiates a week reference repository.
func NewWeekReferenceRepository(db *sqlx.DB) *WeekReferenceRepository {
	return &WeekReferenceRepository{db: db}
}

// Get loads the current week anchor.
func (r *WeekReferenceRepository) Get(ctx context.Context) (*models.WeekReference, error) {
	const query = `SELECT week_number, week_start_date FROM week_reference LIMIT 1`
	var ref models.WeekReference
	if err := r.db.GetContext(ctx, &ref, query); err != nil {
		return nil, fmt.Errorf("get week reference: %w", err)
	}
	return &ref, nil
}

// Advance moves the anchor to the next week, but only if the stored row
// still carries prevWeekNumber. The guard keeps two overlapping generation
// cycles from advancing the anchor twice. It returns false when the anchor
// was already moved by someone else.
func (r *WeekReferenceRepository) Advance(ctx context.Context, prevWeekNumber, newWeekNumber int, newStartDate string) (bool, error) {
	const query = `UPDATE week_reference SET week_number = $1, week_start_date = $2 WHERE week_number = $3`
	res, err := r.db.ExecContext(ctx, query, newWeekNumber, newStartDate, prevWeekNumber)
	if err != nil {
		return false, fmt.Errorf("advance week reference: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("advance week reference rows: %w", err)
	}
	return affected > 0, nil
}
