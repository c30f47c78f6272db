package models

// Resolution values for tutor requests. A NULL status means the request is
// still pending; administrators resolve it to rejected or approved out of
// band, and the notification batcher picks resolved rows up afterwards.
const (
	StatusRejected = 0
	StatusApproved = 1
)

// CancellationRequest asks for a scheduled class to be cancelled.
type CancellationRequest struct {
	ID      int    `db:"id" json:"id"`
	ClassID int    `db:"class_id" json:"class_id"`
	Reason  string `db:"reason" json:"reason"`
	Status  *int   `db:"status" json:"status"`
	IsSent  bool   `db:"is_sent" json:"is_sent"`
}

// ReschedulingRequest asks for a class to be moved to a new date. The target
// week number and weekday are derived from the new date against the week
// anchor at creation time and stored alongside the raw date.
type ReschedulingRequest struct {
	ID      int    `db:"id" json:"id"`
	ClassID int    `db:"class_id" json:"class_id"`
	Reason  string `db:"reason" json:"reason"`
	NewDay  string `db:"new_day" json:"new_day"`
	NewWeek int    `db:"new_week" json:"new_week"`
	NewDate string `db:"new_date" json:"new_date"`
	Status  *int   `db:"status" json:"status"`
	IsSent  bool   `db:"is_sent" json:"is_sent"`
}

// Feedback is a tutor's note on a given class awaiting admin review.
type Feedback struct {
	ID      int    `db:"id" json:"id"`
	ClassID int    `db:"class_id" json:"class_id"`
	Note    string `db:"note" json:"note"`
	Status  *int   `db:"status" json:"status"`
	IsSent  bool   `db:"is_sent" json:"is_sent"`
}
