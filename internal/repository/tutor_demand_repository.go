package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/kings-labs/elp-api/internal/dto"
)

// TutorDemandRepository handles persistence for tutor demands and their
// date-option links.
type TutorDemandRepository struct {
	db *sqlx.DB
}

// NewTutorDemandRepository instantiates a tutor demand repository.
func NewTutorDemandRepository(db *sqlx.DB) *TutorDemandRepository {
	return &TutorDemandRepository{db: db}
}

// Create inserts a pending tutor demand and returns its generated ID.
func (r *TutorDemandRepository) Create(ctx context.Context, tutorID, courseRequestID int) (int, error) {
	const query = `INSERT INTO tutor_demands (tutor_id, course_request_id, status, is_sent) VALUES ($1, $2, NULL, FALSE) RETURNING id`
	var id int
	if err := r.db.GetContext(ctx, &id, query, tutorID, courseRequestID); err != nil {
		return 0, fmt.Errorf("create tutor demand: %w", err)
	}
	return id, nil
}

// CreateDateOptionLinks inserts one link row per date option, all referencing
// the demand. A single parameterized multi-row insert keeps the operation to
// one round trip.
func (r *TutorDemandRepository) CreateDateOptionLinks(ctx context.Context, demandID int, dateOptionIDs []int) error {
	if len(dateOptionIDs) == 0 {
		return nil
	}

	values := make([]string, 0, len(dateOptionIDs))
	args := make([]interface{}, 0, len(dateOptionIDs)+1)
	args = append(args, demandID)
	for i, optionID := range dateOptionIDs {
		values = append(values, fmt.Sprintf("($1, $%d)", i+2))
		args = append(args, optionID)
	}

	query := "INSERT INTO tutor_demand_date_option_links (tutor_demand_id, date_option_id) VALUES " + strings.Join(values, ", ")
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create tutor demand date option links: %w", err)
	}
	return nil
}

// ListUnsentResolved returns the resolved tutor demands whose notifications
// have not been dispatched yet. The linked date options are aggregated into
// matching days/times arrays.
func (r *TutorDemandRepository) ListUnsentResolved(ctx context.Context) ([]dto.TutorDemandMessageRow, error) {
	const query = `
SELECT
	td.id,
	t.discord_id,
	td.status,
	l.name AS level_name,
	cr.subject,
	cr.frequency,
	cr.duration,
	l.cost_per_hour,
	s.first_name AS student_first_name,
	s.last_name AS student_last_name,
	t.first_name AS tutor_first_name,
	p.first_name AS parent_first_name,
	p.last_name AS parent_last_name,
	p.email AS parent_email,
	p.phone_number AS parent_phone,
	ARRAY_AGG(dopt.day ORDER BY dopt.id) AS days,
	ARRAY_AGG(dopt.time ORDER BY dopt.id) AS times
FROM tutor_demands td
JOIN tutors t ON t.id = td.tutor_id
JOIN course_requests cr ON cr.id = td.course_request_id
JOIN levels l ON l.id = cr.level_id
JOIN students s ON s.id = cr.student_id
JOIN parents p ON p.id = s.parent_id
JOIN tutor_demand_date_option_links link ON link.tutor_demand_id = td.id
JOIN date_options dopt ON dopt.id = link.date_option_id
WHERE td.status IS NOT NULL AND td.is_sent = FALSE
GROUP BY td.id, t.discord_id, td.status, l.name, cr.subject, cr.frequency, cr.duration, l.cost_per_hour,
	s.first_name, s.last_name, t.first_name, p.first_name, p.last_name, p.email, p.phone_number
ORDER BY td.id`
	var rows []dto.TutorDemandMessageRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list unsent tutor demands: %w", err)
	}
	return rows, nil
}

// MarkSent flags every resolved-unsent tutor demand as dispatched.
func (r *TutorDemandRepository) MarkSent(ctx context.Context) (int64, error) {
	const query = `UPDATE tutor_demands SET is_sent = TRUE WHERE status IS NOT NULL AND is_sent = FALSE`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("mark tutor demands sent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark tutor demands sent rows: %w", err)
	}
	return affected, nil
}
