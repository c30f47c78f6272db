package models

// CourseRequest lifecycle: created as new, flipped to pending once surfaced
// to tutors through the drain endpoint, and taken once an admin accepts a
// tutor demand against it.
const (
	CourseRequestStatusNew     = 0
	CourseRequestStatusPending = 1
	CourseRequestStatusTaken   = 2
)

// CourseRequest is an unfulfilled request for tutoring in a subject,
// awaiting tutor demands.
type CourseRequest struct {
	ID        int    `db:"id" json:"id"`
	StudentID int    `db:"student_id" json:"student_id"`
	Subject   string `db:"subject" json:"subject"`
	LevelID   int    `db:"level_id" json:"level_id"`
	Frequency int    `db:"frequency" json:"frequency"`
	Duration  int    `db:"duration" json:"duration"`
	Status    int    `db:"status" json:"status"`
}

// DateOption is one proposed weekly time slot attached to a course request.
type DateOption struct {
	ID              int    `db:"id" json:"id"`
	CourseRequestID int    `db:"course_request_id" json:"course_request_id"`
	Day             string `db:"day" json:"day"`
	Time            string `db:"time" json:"time"`
}
