package dto

// TutorClassRow is the join context behind the tutor classes listing.
type TutorClassRow struct {
	ID               int    `db:"id"`
	LevelName        string `db:"level_name"`
	Subject          string `db:"subject"`
	StudentFirstName string `db:"student_first_name"`
	StudentLastName  string `db:"student_last_name"`
	Date             string `db:"date"`
}

// TutorClassView is the shape the bot renders tutor classes from. Field
// names mirror the legacy payload.
type TutorClassView struct {
	Name    string `json:"name"`
	Student string `json:"student"`
	Date    string `json:"date"`
	ID      int    `json:"id"`
}

// WeeklyClassRow feeds the weekly roster export.
type WeeklyClassRow struct {
	ID               int    `db:"id"`
	Date             string `db:"date"`
	Day              string `db:"day"`
	Subject          string `db:"subject"`
	LevelName        string `db:"level_name"`
	StudentFirstName string `db:"student_first_name"`
	StudentLastName  string `db:"student_last_name"`
	TutorFirstName   string `db:"tutor_first_name"`
	TutorLastName    string `db:"tutor_last_name"`
}
