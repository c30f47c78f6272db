package dto

import "github.com/lib/pq"

// PrivateMessage is one outbound notification for the chat bot to deliver.
type PrivateMessage struct {
	DiscordID string `json:"discordID"`
	Message   string `json:"message"`
}

// ClassRequestMessageRow is the join context needed to render a resolved
// cancellation, rescheduling or feedback request into a message. Reason
// carries the feedback note for feedback rows; NewDate is only populated for
// rescheduling rows.
type ClassRequestMessageRow struct {
	ID               int    `db:"id"`
	DiscordID        string `db:"discord_id"`
	Status           int    `db:"status"`
	Reason           string `db:"reason"`
	Date             string `db:"date"`
	Subject          string `db:"subject"`
	StudentFirstName string `db:"student_first_name"`
	StudentLastName  string `db:"student_last_name"`
	NewDate          string `db:"new_date"`
}

// TutorDemandMessageRow is the join context for a resolved tutor demand.
// Days and Times are the demand's linked date options, aggregated in matching
// order.
type TutorDemandMessageRow struct {
	ID               int            `db:"id"`
	DiscordID        string         `db:"discord_id"`
	Status           int            `db:"status"`
	LevelName        string         `db:"level_name"`
	Subject          string         `db:"subject"`
	Frequency        int            `db:"frequency"`
	Duration         int            `db:"duration"`
	CostPerHour      float64        `db:"cost_per_hour"`
	StudentFirstName string         `db:"student_first_name"`
	StudentLastName  string         `db:"student_last_name"`
	TutorFirstName   string         `db:"tutor_first_name"`
	ParentFirstName  string         `db:"parent_first_name"`
	ParentLastName   string         `db:"parent_last_name"`
	ParentEmail      string         `db:"parent_email"`
	ParentPhone      string         `db:"parent_phone"`
	Days             pq.StringArray `db:"days"`
	Times            pq.StringArray `db:"times"`
}
