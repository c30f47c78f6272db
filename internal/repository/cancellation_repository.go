package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kings-labs/elp-api/internal/dto"
)

// CancellationRepository handles persistence for cancellation requests.
type CancellationRepository struct {
	db *sqlx.DB
}

// NewCancellationRepository instantiates a cancellation repository.
func NewCancellationRepository(db *sqlx.DB) *CancellationRepository {
	return &CancellationRepository{db: db}
}

// CountPending counts the unresolved cancellation requests for a class.
func (r *CancellationRepository) CountPending(ctx context.Context, classID int) (int, error) {
	const query = `SELECT COUNT(id) FROM cancellation_requests WHERE class_id = $1 AND status IS NULL`
	var count int
	if err := r.db.GetContext(ctx, &count, query, classID); err != nil {
		return 0, fmt.Errorf("count pending cancellations: %w", err)
	}
	return count, nil
}

// Create inserts a pending cancellation request.
func (r *CancellationRepository) Create(ctx context.Context, classID int, reason string) error {
	const query = `INSERT INTO cancellation_requests (class_id, reason, status, is_sent) VALUES ($1, $2, NULL, FALSE)`
	if _, err := r.db.ExecContext(ctx, query, classID, reason); err != nil {
		return fmt.Errorf("create cancellation request: %w", err)
	}
	return nil
}

// ListUnsentResolved returns the resolved cancellation requests whose
// notifications have not been dispatched yet, with enough join context to
// render the message.
func (r *CancellationRepository) ListUnsentResolved(ctx context.Context) ([]dto.ClassRequestMessageRow, error) {
	const query = `
SELECT
	cr.id,
	t.discord_id,
	cr.status,
	cr.reason,
	c.date,
	co.subject,
	s.first_name AS student_first_name,
	s.last_name AS student_last_name
FROM cancellation_requests cr
JOIN classes c ON c.id = cr.class_id
JOIN courses co ON co.id = c.course_id
JOIN students s ON s.id = co.student_id
JOIN tutors t ON t.id = co.tutor_id
WHERE cr.status IS NOT NULL AND cr.is_sent = FALSE
ORDER BY cr.id`
	var rows []dto.ClassRequestMessageRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list unsent cancellations: %w", err)
	}
	return rows, nil
}

// MarkSent flags every resolved-unsent cancellation request as dispatched.
func (r *CancellationRepository) MarkSent(ctx context.Context) (int64, error) {
	const query = `UPDATE cancellation_requests SET is_sent = TRUE WHERE status IS NOT NULL AND is_sent = FALSE`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("mark cancellations sent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark cancellations sent rows: %w", err)
	}
	return affected, nil
}
