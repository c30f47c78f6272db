package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kings-labs/elp-api/internal/models"
)

// TutorRepository resolves tutors from their external chat identity.
type TutorRepository struct {
	db *sqlx.DB
}

// NewTutorRepository instantiates a tutor repository.
func NewTutorRepository(db *sqlx.DB) *TutorRepository {
	return &TutorRepository{db: db}
}

// FindByDiscordID loads the tutor registered under the given Discord ID.
// A nil result means no tutor carries that identity.
func (r *TutorRepository) FindByDiscordID(ctx context.Context, discordID string) (*models.Tutor, error) {
	const query = `SELECT id, first_name, last_name, discord_id FROM tutors WHERE discord_id = $1`
	var tutor models.Tutor
	if err := r.db.GetContext(ctx, &tutor, query, discordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find tutor by discord id: %w", err)
	}
	return &tutor, nil
}
