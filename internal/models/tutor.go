package models

// Tutor is resolved from the external chat identity (Discord ID) the bot
// authenticates tutors with.
type Tutor struct {
	ID        int    `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	DiscordID string `db:"discord_id" json:"discord_id"`
}
