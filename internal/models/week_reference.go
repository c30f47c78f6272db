package models

// WeekReference is the singleton anchor row all week arithmetic is derived
// from. WeekStartDate always denotes a Saturday: the scheduling week runs
// Saturday through Friday. The row is advanced, never deleted.
type WeekReference struct {
	WeekNumber    int    `db:"week_number" json:"week_number"`
	WeekStartDate string `db:"week_start_date" json:"week_start_date"`
}
