package dto

// NewCourseRequestRow is one flat row of the new-course-requests join; a
// course request with N date options yields N rows.
type NewCourseRequestRow struct {
	ID           int     `db:"id"`
	Subject      string  `db:"subject"`
	Frequency    int     `db:"frequency"`
	LevelName    string  `db:"level_name"`
	Money        float64 `db:"money"`
	Duration     int     `db:"duration"`
	DateOptionID int     `db:"date_option_id"`
	Day          string  `db:"day"`
	Time         string  `db:"time"`
}

// DateOptionView is a date option rendered for the bot. Field names mirror
// the legacy payload.
type DateOptionView struct {
	ID     int    `json:"ID"`
	String string `json:"String"`
}

// NewCourseRequest is a course request grouped with its date options, as
// returned by the new-course-requests drain.
type NewCourseRequest struct {
	ID          int              `json:"ID"`
	Subject     string           `json:"Subject"`
	Frequency   int              `json:"Frequency"`
	LevelName   string           `json:"LevelName"`
	Money       float64          `json:"Money"`
	Duration    int              `json:"Duration"`
	DateOptions []DateOptionView `json:"dateOptions"`
}
