package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kings-labs/elp-api/internal/dto"
)

// FeedbackRepository handles persistence for feedback requests.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository instantiates a feedback repository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// CountPending counts the unresolved feedbacks for a class.
func (r *FeedbackRepository) CountPending(ctx context.Context, classID int) (int, error) {
	const query = `SELECT COUNT(id) FROM feedbacks WHERE class_id = $1 AND status IS NULL`
	var count int
	if err := r.db.GetContext(ctx, &count, query, classID); err != nil {
		return 0, fmt.Errorf("count pending feedbacks: %w", err)
	}
	return count, nil
}

// Create inserts a pending feedback.
func (r *FeedbackRepository) Create(ctx context.Context, classID int, note string) error {
	const query = `INSERT INTO feedbacks (class_id, note, status, is_sent) VALUES ($1, $2, NULL, FALSE)`
	if _, err := r.db.ExecContext(ctx, query, classID, note); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// ListUnsentResolved returns the resolved feedbacks whose notifications have
// not been dispatched yet. The note rides in the reason column of the shared
// message row.
func (r *FeedbackRepository) ListUnsentResolved(ctx context.Context) ([]dto.ClassRequestMessageRow, error) {
	const query = `
SELECT
	f.id,
	t.discord_id,
	f.status,
	f.note AS reason,
	c.date,
	co.subject,
	s.first_name AS student_first_name,
	s.last_name AS student_last_name
FROM feedbacks f
JOIN classes c ON c.id = f.class_id
JOIN courses co ON co.id = c.course_id
JOIN students s ON s.id = co.student_id
JOIN tutors t ON t.id = co.tutor_id
WHERE f.status IS NOT NULL AND f.is_sent = FALSE
ORDER BY f.id`
	var rows []dto.ClassRequestMessageRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list unsent feedbacks: %w", err)
	}
	return rows, nil
}

// MarkSent flags every resolved-unsent feedback as dispatched.
func (r *FeedbackRepository) MarkSent(ctx context.Context) (int64, error) {
	const query = `UPDATE feedbacks SET is_sent = TRUE WHERE status IS NOT NULL AND is_sent = FALSE`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("mark feedbacks sent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark feedbacks sent rows: %w", err)
	}
	return affected, nil
}
