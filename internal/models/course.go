package models

// Course is a running tutoring engagement between one student and one tutor,
// recurring weekly on a fixed day. Courses are created and deactivated by the
// admin flow; this API only reads them.
type Course struct {
	ID        int    `db:"id" json:"id"`
	StudentID int    `db:"student_id" json:"student_id"`
	TutorID   int    `db:"tutor_id" json:"tutor_id"`
	Subject   string `db:"subject" json:"subject"`
	LevelID   int    `db:"level_id" json:"level_id"`
	Day       string `db:"day" json:"day"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}
