package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/internal/models"
)

// CourseRequestRepository handles persistence for open course requests.
type CourseRequestRepository struct {
	db *sqlx.DB
}

// NewCourseRequestRepository instantiates a course request repository.
func NewCourseRequestRepository(db *sqlx.DB) *CourseRequestRepository {
	return &CourseRequestRepository{db: db}
}

// ListNew returns the new course requests that carry at least as many date
// options as their frequency, one row per date option.
func (r *CourseRequestRepository) ListNew(ctx context.Context) ([]dto.NewCourseRequestRow, error) {
	const query = `
SELECT
	cr.id,
	cr.subject,
	cr.frequency,
	l.name AS level_name,
	l.cost_per_hour * cr.duration AS money,
	cr.duration,
	dopt.id AS date_option_id,
	dopt.day,
	dopt.time
FROM course_requests cr
JOIN date_options dopt ON dopt.course_request_id = cr.id
JOIN levels l ON l.id = cr.level_id
WHERE cr.status = $1
  AND cr.frequency <= (SELECT COUNT(id) FROM date_options WHERE course_request_id = cr.id)
ORDER BY cr.id, dopt.id`
	var rows []dto.NewCourseRequestRow
	if err := r.db.SelectContext(ctx, &rows, query, models.CourseRequestStatusNew); err != nil {
		return nil, fmt.Errorf("list new course requests: %w", err)
	}
	return rows, nil
}

// MarkPending flips the given new course requests to pending so the same
// batch is not surfaced twice.
func (r *CourseRequestRepository) MarkPending(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	const query = `UPDATE course_requests SET status = $1 WHERE status = $2 AND id = ANY($3)`
	if _, err := r.db.ExecContext(ctx, query, models.CourseRequestStatusPending, models.CourseRequestStatusNew, pq.Array(ids)); err != nil {
		return fmt.Errorf("mark course requests pending: %w", err)
	}
	return nil
}

// CountNew returns the number of course requests still in the new state.
func (r *CourseRequestRepository) CountNew(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(id) FROM course_requests WHERE status = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, models.CourseRequestStatusNew); err != nil {
		return 0, fmt.Errorf("count new course requests: %w", err)
	}
	return count, nil
}

// FindByID loads a course request. A nil result means it does not exist.
func (r *CourseRequestRepository) FindByID(ctx context.Context, id int) (*models.CourseRequest, error) {
	const query = `SELECT id, student_id, subject, level_id, frequency, duration, status FROM course_requests WHERE id = $1`
	var req models.CourseRequest
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find course request: %w", err)
	}
	return &req, nil
}

// ResetPendingToNew rolls every pending course request back to new. This is
// the administrative recovery used when a surfaced batch was lost.
func (r *CourseRequestRepository) ResetPendingToNew(ctx context.Context) (int64, error) {
	const query = `UPDATE course_requests SET status = $1 WHERE status = $2`
	res, err := r.db.ExecContext(ctx, query, models.CourseRequestStatusNew, models.CourseRequestStatusPending)
	if err != nil {
		return 0, fmt.Errorf("reset pending course requests: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset pending course requests rows: %w", err)
	}
	return affected, nil
}
