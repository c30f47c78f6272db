package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/internal/models"
)

// ClassRepository handles persistence for scheduled classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository instantiates a class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts one class occurrence for a course.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	const query = `INSERT INTO classes (course_id, week_number, date, day) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &class.ID, query, class.CourseID, class.WeekNumber, class.Date, class.Day); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// ExistsByID reports whether a class with the given ID exists.
func (r *ClassRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	const query = `SELECT 1 FROM classes WHERE id = $1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check class existence: %w", err)
	}
	return true, nil
}

// ListForTutorDiscordID returns every class of a tutor, joined with the
// course, level and student context the bot renders. The caller applies the
// recency filter.
func (r *ClassRepository) ListForTutorDiscordID(ctx context.Context, discordID string) ([]dto.TutorClassRow, error) {
	const query = `
SELECT
	c.id,
	l.name AS level_name,
	co.subject,
	s.first_name AS student_first_name,
	s.last_name AS student_last_name,
	c.date
FROM classes c
JOIN courses co ON co.id = c.course_id
JOIN students s ON s.id = co.student_id
JOIN levels l ON l.id = co.level_id
JOIN tutors t ON t.id = co.tutor_id
WHERE t.discord_id = $1
ORDER BY c.id`
	var rows []dto.TutorClassRow
	if err := r.db.SelectContext(ctx, &rows, query, discordID); err != nil {
		return nil, fmt.Errorf("list tutor classes: %w", err)
	}
	return rows, nil
}

// ListForWeek returns the full roster of a scheduling week for exports.
func (r *ClassRepository) ListForWeek(ctx context.Context, weekNumber int) ([]dto.WeeklyClassRow, error) {
	const query = `
SELECT
	c.id,
	c.date,
	c.day,
	co.subject,
	l.name AS level_name,
	s.first_name AS student_first_name,
	s.last_name AS student_last_name,
	t.first_name AS tutor_first_name,
	t.last_name AS tutor_last_name
FROM classes c
JOIN courses co ON co.id = c.course_id
JOIN students s ON s.id = co.student_id
JOIN levels l ON l.id = co.level_id
JOIN tutors t ON t.id = co.tutor_id
WHERE c.week_number = $1
ORDER BY c.date, c.id`
	var rows []dto.WeeklyClassRow
	if err := r.db.SelectContext(ctx, &rows, query, weekNumber); err != nil {
		return nil, fmt.Errorf("list weekly classes: %w", err)
	}
	return rows, nil
}
