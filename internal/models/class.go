package models

// Class is a single scheduled occurrence of a course, created once per active
// course per scheduling week by the weekly generator. Immutable once created.
type Class struct {
	ID         int    `db:"id" json:"id"`
	CourseID   int    `db:"course_id" json:"course_id"`
	WeekNumber int    `db:"week_number" json:"week_number"`
	Date       string `db:"date" json:"date"`
	Day        string `db:"day" json:"day"`
}
