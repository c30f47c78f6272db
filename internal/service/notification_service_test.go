package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/internal/models"
)

type stubClassRequestSource struct {
	rows       []dto.ClassRequestMessageRow
	listErr    error
	markCalled int
}

func (s *stubClassRequestSource) ListUnsentResolved(ctx context.Context) ([]dto.ClassRequestMessageRow, error) {
	return s.rows, s.listErr
}

func (s *stubClassRequestSource) MarkSent(ctx context.Context) (int64, error) {
	s.markCalled++
	marked := int64(len(s.rows))
	s.rows = nil
	return marked, nil
}

type stubTutorDemandSource struct {
	rows       []dto.TutorDemandMessageRow
	listErr    error
	markCalled int
}

func (s *stubTutorDemandSource) ListUnsentResolved(ctx context.Context) ([]dto.TutorDemandMessageRow, error) {
	return s.rows, s.listErr
}

func (s *stubTutorDemandSource) MarkSent(ctx context.Context) (int64, error) {
	s.markCalled++
	marked := int64(len(s.rows))
	s.rows = nil
	return marked, nil
}

func approvedCancellationRow() dto.ClassRequestMessageRow {
	return dto.ClassRequestMessageRow{
		ID:               1,
		DiscordID:        "tutor#1",
		Status:           models.StatusApproved,
		Reason:           "holiday",
		Date:             "09/25/2023",
		Subject:          "Maths",
		StudentFirstName: "Ada",
		StudentLastName:  "Lovelace",
	}
}

func rejectedDemandRow() dto.TutorDemandMessageRow {
	return dto.TutorDemandMessageRow{
		ID:        9,
		DiscordID: "tutor#2",
		Status:    models.StatusRejected,
		LevelName: "GCSE",
		Subject:   "Physics",
		Days:      []string{"Monday", "Thursday"},
		Times:     []string{"18:00", "17:00"},
	}
}

func TestNotificationDrainOrderAndMarking(t *testing.T) {
	demands := &stubTutorDemandSource{rows: []dto.TutorDemandMessageRow{rejectedDemandRow()}}
	cancels := &stubClassRequestSource{rows: []dto.ClassRequestMessageRow{approvedCancellationRow()}}
	resched := &stubClassRequestSource{rows: []dto.ClassRequestMessageRow{{
		DiscordID: "tutor#3",
		Status:    models.StatusApproved,
		Date:      "09/25/2023",
		NewDate:   "09/29/2023",
		Subject:   "French",
	}}}
	feedback := &stubClassRequestSource{rows: []dto.ClassRequestMessageRow{{
		DiscordID: "tutor#4",
		Status:    models.StatusRejected,
		Reason:    "too short",
		Date:      "09/26/2023",
		Subject:   "Latin",
	}}}
	metrics := &stubGenerationMetrics{}

	svc := NewNotificationService(demands, cancels, resched, feedback, metrics, nil)

	messages, err := svc.Drain(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 4)

	// Tutor demands lead, then cancellations, reschedulings, feedbacks.
	assert.Equal(t, "tutor#2", messages[0].DiscordID)
	assert.Equal(t, "tutor#1", messages[1].DiscordID)
	assert.Equal(t, "tutor#3", messages[2].DiscordID)
	assert.Equal(t, "tutor#4", messages[3].DiscordID)

	assert.Equal(t, 1, demands.markCalled)
	assert.Equal(t, 1, cancels.markCalled)
	assert.Equal(t, 1, resched.markCalled)
	assert.Equal(t, 1, feedback.markCalled)
	assert.Equal(t, 4, metrics.drained)

	// A second drain with nothing new returns an empty batch and marks
	// nothing.
	messages, err = svc.Drain(context.Background())
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Equal(t, 1, demands.markCalled)
}

func TestNotificationDrainFetchFailureMarksNothing(t *testing.T) {
	demands := &stubTutorDemandSource{rows: []dto.TutorDemandMessageRow{rejectedDemandRow()}}
	cancels := &stubClassRequestSource{rows: []dto.ClassRequestMessageRow{approvedCancellationRow()}}
	resched := &stubClassRequestSource{listErr: errors.New("connection reset")}
	feedback := &stubClassRequestSource{}

	svc := NewNotificationService(demands, cancels, resched, feedback, nil, nil)

	_, err := svc.Drain(context.Background())
	require.Error(t, err)
	assert.Zero(t, demands.markCalled)
	assert.Zero(t, cancels.markCalled)
	assert.Zero(t, feedback.markCalled)
}

func TestRenderCancellationMessages(t *testing.T) {
	approved := renderCancellationMessage(approvedCancellationRow())
	assert.Equal(t,
		"Great news! Your cancellation request for your Maths class with Ada Lovelace on 09/25/2023 was accepted and well recorded! Thanks!",
		approved)

	row := approvedCancellationRow()
	row.Status = models.StatusRejected
	rejected := renderCancellationMessage(row)
	assert.Equal(t,
		"We are sorry, your cancellation request for your Maths class with Ada Lovelace on 09/25/2023 has not been accepted. "+
			"As additional information, the reason you gave for this request was 'holiday'. "+
			"If you still want to cancel this class, please contact an administrator and/or try again. Thanks!",
		rejected)
}

func TestRenderTutorDemandMessages(t *testing.T) {
	rejected := renderTutorDemandMessage(rejectedDemandRow())
	assert.Equal(t,
		"We are sorry to let you know that the GCSE Physics class you applied to take on, "+
			"on the Monday at 18:00, and the Thursday at 17:00 has been unsuccessful. Thanks!",
		rejected)

	row := rejectedDemandRow()
	row.Status = models.StatusApproved
	row.Duration = 2
	row.CostPerHour = 12.5
	row.StudentFirstName = "Ada"
	row.StudentLastName = "Lovelace"
	row.TutorFirstName = "Grace"
	row.ParentFirstName = "Annabella"
	row.ParentLastName = "Byron"
	row.ParentEmail = "annabella@example.com"
	row.ParentPhone = "+44 1234 567890"

	approved := renderTutorDemandMessage(row)
	assert.Contains(t, approved, "Hi Grace, you have a new student!")
	assert.Contains(t, approved, "Ada Lovelace is happy to study Physics with you on the Monday at 18:00, and the Thursday at 17:00")
	assert.Contains(t, approved, "a rate of £25/class")
	assert.Contains(t, approved, "Annabella Byron can be contacted via email at annabella@example.com or by phone at +44 1234 567890")
}

func TestRenderReschedulingAndFeedbackMessages(t *testing.T) {
	row := dto.ClassRequestMessageRow{
		Status:           models.StatusApproved,
		Date:             "09/25/2023",
		NewDate:          "09/29/2023",
		Subject:          "French",
		StudentFirstName: "Alan",
		StudentLastName:  "Turing",
	}
	assert.Equal(t,
		"Great news! Your rescheduling request for your French class with Alan Turing on 09/25/2023 was accepted: "+
			"the class is now planned for 09/29/2023. Thanks!",
		renderReschedulingMessage(row))

	row.Status = models.StatusRejected
	row.Reason = "no slot free"
	assert.Contains(t, renderReschedulingMessage(row), "the reason you gave for this request was 'no slot free'")

	feedbackRow := dto.ClassRequestMessageRow{
		Status:           models.StatusApproved,
		Date:             "09/26/2023",
		Subject:          "Latin",
		StudentFirstName: "Ada",
		StudentLastName:  "Lovelace",
	}
	assert.Equal(t,
		"Great news! Your feedback on your Latin class with Ada Lovelace on 09/26/2023 was reviewed and recorded! Thanks!",
		renderFeedbackMessage(feedbackRow))
}

func TestRenderTimeSlots(t *testing.T) {
	assert.Equal(t, "", renderTimeSlots(nil, nil))
	assert.Equal(t, "the Monday at 18:00", renderTimeSlots([]string{"Monday"}, []string{"18:00"}))
	assert.Equal(t,
		"the Monday at 18:00, the Tuesday at 19:00, and the Friday at 17:00",
		renderTimeSlots([]string{"Monday", "Tuesday", "Friday"}, []string{"18:00", "19:00", "17:00"}))
}
