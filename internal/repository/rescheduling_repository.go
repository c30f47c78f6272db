package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/internal/models"
)

// ReschedulingRepository handles persistence for rescheduling requests.
type ReschedulingRepository struct {
	db *sqlx.DB
}

// NewReschedulingRepository instantiates a rescheduling repository.
func NewReschedulingRepository(db *sqlx.DB) *ReschedulingRepository {
	return &ReschedulingRepository{db: db}
}

// CountPending counts the unresolved rescheduling requests for a class.
func (r *ReschedulingRepository) CountPending(ctx context.Context, classID int) (int, error) {
	const query = `SELECT COUNT(id) FROM rescheduling_requests WHERE class_id = $1 AND status IS NULL`
	var count int
	if err := r.db.GetContext(ctx, &count, query, classID); err != nil {
		return 0, fmt.Errorf("count pending reschedulings: %w", err)
	}
	return count, nil
}

// Create inserts a pending rescheduling request, including the derived
// target day and week the service computed from the week anchor.
func (r *ReschedulingRepository) Create(ctx context.Context, req *models.ReschedulingRequest) error {
	const query = `INSERT INTO rescheduling_requests (class_id, reason, new_day, new_week, new_date, status, is_sent)
VALUES (:class_id, :reason, :new_day, :new_week, :new_date, NULL, FALSE)`
	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("create rescheduling request: %w", err)
	}
	return nil
}

// ListUnsentResolved returns the resolved rescheduling requests whose
// notifications have not been dispatched yet.
func (r *ReschedulingRepository) ListUnsentResolved(ctx context.Context) ([]dto.ClassRequestMessageRow, error) {
	const query = `
SELECT
	rr.id,
	t.discord_id,
	rr.status,
	rr.reason,
	rr.new_date,
	c.date,
	co.subject,
	s.first_name AS student_first_name,
	s.last_name AS student_last_name
FROM rescheduling_requests rr
JOIN classes c ON c.id = rr.class_id
JOIN courses co ON co.id = c.course_id
JOIN students s ON s.id = co.student_id
JOIN tutors t ON t.id = co.tutor_id
WHERE rr.status IS NOT NULL AND rr.is_sent = FALSE
ORDER BY rr.id`
	var rows []dto.ClassRequestMessageRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list unsent reschedulings: %w", err)
	}
	return rows, nil
}

// MarkSent flags every resolved-unsent rescheduling request as dispatched.
func (r *ReschedulingRepository) MarkSent(ctx context.Context) (int64, error) {
	const query = `UPDATE rescheduling_requests SET is_sent = TRUE WHERE status IS NOT NULL AND is_sent = FALSE`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("mark reschedulings sent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark reschedulings sent rows: %w", err)
	}
	return affected, nil
}
