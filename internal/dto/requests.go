package dto

// Request payloads keep the legacy field names the bot already sends.
// Pointer fields distinguish "absent" from zero values so presence failures
// can reproduce the exact legacy error messages.

// CancellationPayload creates a cancellation request for a class.
type CancellationPayload struct {
	ClassID *int    `json:"class_ID"`
	Reason  *string `json:"reason"`
}

// ReschedulingPayload creates a rescheduling request for a class. NewDate is
// an MM/DD/YYYY string.
type ReschedulingPayload struct {
	ClassID *int    `json:"class_ID"`
	Reason  *string `json:"reason"`
	NewDate *string `json:"new_date"`
}

// FeedbackPayload records a tutor's note on a class.
type FeedbackPayload struct {
	ClassID  *int    `json:"class_ID"`
	Feedback *string `json:"feedback"`
}

// TutorDemandPayload is a tutor's application to an open course request.
type TutorDemandPayload struct {
	DiscordID       *string `json:"discordID"`
	CourseRequestID *int    `json:"courseRequestID"`
	DateOptions     []int   `json:"dateOptions"`
}

// LoginPayload authenticates an API user.
type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
