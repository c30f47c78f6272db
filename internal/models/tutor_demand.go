package models

// TutorDemand is a tutor's application to take on an open course request,
// bundled with the time slots the tutor proposes to cover.
type TutorDemand struct {
	ID              int  `db:"id" json:"id"`
	TutorID         int  `db:"tutor_id" json:"tutor_id"`
	CourseRequestID int  `db:"course_request_id" json:"course_request_id"`
	Status          *int `db:"status" json:"status"`
	IsSent          bool `db:"is_sent" json:"is_sent"`
}

// TutorDemandDateOptionLink ties a demand to one of the course request's
// offered date options.
type TutorDemandDateOptionLink struct {
	TutorDemandID int `db:"tutor_demand_id" json:"tutor_demand_id"`
	DateOptionID  int `db:"date_option_id" json:"date_option_id"`
}
