package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/internal/models"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
)

type classRequestMessageSource interface {
	ListUnsentResolved(ctx context.Context) ([]dto.ClassRequestMessageRow, error)
	MarkSent(ctx context.Context) (int64, error)
}

type tutorDemandMessageSource interface {
	ListUnsentResolved(ctx context.Context) ([]dto.TutorDemandMessageRow, error)
	MarkSent(ctx context.Context) (int64, error)
}

type drainMetrics interface {
	AddMessagesDrained(n int)
}

// NotificationService aggregates the outbound notifications of all four
// request kinds into one batch for the chat bot to deliver.
type NotificationService struct {
	demands       tutorDemandMessageSource
	cancellations classRequestMessageSource
	reschedulings classRequestMessageSource
	feedbacks     classRequestMessageSource
	metrics       drainMetrics
	logger        *zap.Logger
}

// NewNotificationService builds a NotificationService.
func NewNotificationService(
	demands tutorDemandMessageSource,
	cancellations classRequestMessageSource,
	reschedulings classRequestMessageSource,
	feedbacks classRequestMessageSource,
	metrics drainMetrics,
	logger *zap.Logger,
) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		demands:       demands,
		cancellations: cancellations,
		reschedulings: reschedulings,
		feedbacks:     feedbacks,
		metrics:       metrics,
		logger:        logger,
	}
}

// Drain returns every rendered resolved-unsent notification and flags the
// source rows as sent. Rows are marked only after all four fetches succeed,
// so a partial failure never marks a message that was not returned. A second
// drain with no new resolutions returns an empty batch.
func (s *NotificationService) Drain(ctx context.Context) ([]dto.PrivateMessage, error) {
	demandRows, err := s.demands.ListUnsentResolved(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch tutor demand messages")
	}
	cancellationRows, err := s.cancellations.ListUnsentResolved(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch cancellation messages")
	}
	reschedulingRows, err := s.reschedulings.ListUnsentResolved(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch rescheduling messages")
	}
	feedbackRows, err := s.feedbacks.ListUnsentResolved(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch feedback messages")
	}

	messages := make([]dto.PrivateMessage, 0, len(demandRows)+len(cancellationRows)+len(reschedulingRows)+len(feedbackRows))
	for _, row := range demandRows {
		messages = append(messages, dto.PrivateMessage{DiscordID: row.DiscordID, Message: renderTutorDemandMessage(row)})
	}
	for _, row := range cancellationRows {
		messages = append(messages, dto.PrivateMessage{DiscordID: row.DiscordID, Message: renderCancellationMessage(row)})
	}
	for _, row := range reschedulingRows {
		messages = append(messages, dto.PrivateMessage{DiscordID: row.DiscordID, Message: renderReschedulingMessage(row)})
	}
	for _, row := range feedbackRows {
		messages = append(messages, dto.PrivateMessage{DiscordID: row.DiscordID, Message: renderFeedbackMessage(row)})
	}

	if len(messages) == 0 {
		return messages, nil
	}

	if _, err := s.demands.MarkSent(ctx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark tutor demands sent")
	}
	if _, err := s.cancellations.MarkSent(ctx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark cancellations sent")
	}
	if _, err := s.reschedulings.MarkSent(ctx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark reschedulings sent")
	}
	if _, err := s.feedbacks.MarkSent(ctx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark feedbacks sent")
	}

	if s.metrics != nil {
		s.metrics.AddMessagesDrained(len(messages))
	}
	s.logger.Info("notification batch drained", zap.Int("messages", len(messages)))
	return messages, nil
}

func renderCancellationMessage(row dto.ClassRequestMessageRow) string {
	student := row.StudentFirstName + " " + row.StudentLastName
	if row.Status == models.StatusRejected {
		return "We are sorry, your cancellation request for your " + row.Subject +
			" class with " + student + " on " + row.Date +
			" has not been accepted. As additional information, the reason you gave for this request was '" + row.Reason +
			"'. If you still want to cancel this class, please contact an administrator and/or try again. Thanks!"
	}
	return "Great news! Your cancellation request for your " + row.Subject +
		" class with " + student + " on " + row.Date +
		" was accepted and well recorded! Thanks!"
}

func renderReschedulingMessage(row dto.ClassRequestMessageRow) string {
	student := row.StudentFirstName + " " + row.StudentLastName
	if row.Status == models.StatusRejected {
		return "We are sorry, your rescheduling request for your " + row.Subject +
			" class with " + student + " on " + row.Date +
			" has not been accepted. As additional information, the reason you gave for this request was '" + row.Reason +
			"'. If you still want to reschedule this class, please contact an administrator and/or try again. Thanks!"
	}
	return "Great news! Your rescheduling request for your " + row.Subject +
		" class with " + student + " on " + row.Date +
		" was accepted: the class is now planned for " + row.NewDate + ". Thanks!"
}

func renderFeedbackMessage(row dto.ClassRequestMessageRow) string {
	student := row.StudentFirstName + " " + row.StudentLastName
	if row.Status == models.StatusRejected {
		return "We are sorry, your feedback on your " + row.Subject +
			" class with " + student + " on " + row.Date +
			" has not been accepted. As a reminder, the note you left was '" + row.Reason +
			"'. If you think this is a mistake, please contact an administrator. Thanks!"
	}
	return "Great news! Your feedback on your " + row.Subject +
		" class with " + student + " on " + row.Date +
		" was reviewed and recorded! Thanks!"
}

func renderTutorDemandMessage(row dto.TutorDemandMessageRow) string {
	slots := renderTimeSlots(row.Days, row.Times)
	if row.Status == models.StatusRejected {
		return "We are sorry to let you know that the " + row.LevelName + " " + row.Subject +
			" class you applied to take on, on " + slots +
			" has been unsuccessful. Thanks!"
	}
	rate := strconv.FormatFloat(float64(row.Duration)*row.CostPerHour, 'f', -1, 64)
	return "Hi " + row.TutorFirstName + ", you have a new student! " +
		row.StudentFirstName + " " + row.StudentLastName +
		" is happy to study " + row.Subject + " with you on " + slots +
		". This is a " + strconv.Itoa(row.Duration) + " hours/class lesson at a " + row.LevelName +
		" level that will be compensated at a rate of £" + rate +
		"/class. The first point of contact should be the student's parent. " +
		row.ParentFirstName + " " + row.ParentLastName +
		" can be contacted via email at " + row.ParentEmail +
		" or by phone at " + row.ParentPhone +
		". Thank you for applying to teach this course!"
}

// renderTimeSlots joins day/time pairs into "the Monday at 18:00, and the
// Thursday at 17:00" style prose.
func renderTimeSlots(days, times []string) string {
	n := len(days)
	if len(times) < n {
		n = len(times)
	}
	if n == 0 {
		return ""
	}

	slots := make([]string, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, fmt.Sprintf("the %s at %s", days[i], times[i]))
	}
	if len(slots) == 1 {
		return slots[0]
	}
	return strings.Join(slots[:len(slots)-1], ", ") + ", and " + slots[len(slots)-1]
}
