package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kings-labs/elp-api/internal/dates"
	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/internal/models"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
)

type classExistenceChecker interface {
	ExistsByID(ctx context.Context, id int) (bool, error)
}

type pendingCounter interface {
	CountPending(ctx context.Context, classID int) (int, error)
}

type cancellationStore interface {
	pendingCounter
	Create(ctx context.Context, classID int, reason string) error
}

type reschedulingStore interface {
	pendingCounter
	Create(ctx context.Context, req *models.ReschedulingRequest) error
}

type feedbackStore interface {
	pendingCounter
	Create(ctx context.Context, classID int, note string) error
}

type weekAnchorReader interface {
	Get(ctx context.Context) (*models.WeekReference, error)
}

// RequestService creates the three tutor request kinds against scheduled
// classes. Every creation runs the same guard pipeline, in a fixed order so
// the caller always sees the same failure for the same input: payload
// presence, date validity (rescheduling only), class existence, and the
// one-pending-request-per-class-per-kind invariant.
//
// The pending check is read-then-insert without a uniqueness constraint
// underneath, exactly like the system this replaces: two simultaneous
// requests for the same class can both pass it. Acceptable under the
// single-writer deployment model.
type RequestService struct {
	classes       classExistenceChecker
	cancellations cancellationStore
	reschedulings reschedulingStore
	feedbacks     feedbackStore
	anchors       weekAnchorReader
	logger        *zap.Logger
	now           func() time.Time
}

// NewRequestService builds a RequestService.
func NewRequestService(
	classes classExistenceChecker,
	cancellations cancellationStore,
	reschedulings reschedulingStore,
	feedbacks feedbackStore,
	anchors weekAnchorReader,
	logger *zap.Logger,
) *RequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{
		classes:       classes,
		cancellations: cancellations,
		reschedulings: reschedulings,
		feedbacks:     feedbacks,
		anchors:       anchors,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateCancellation records a pending cancellation request for a class.
func (s *RequestService) CreateCancellation(ctx context.Context, payload dto.CancellationPayload) error {
	if payload.Reason == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The reason can not be null.")
	}
	if payload.ClassID == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The classID can not be null.")
	}

	if err := s.guardClass(ctx, *payload.ClassID, s.cancellations); err != nil {
		return err
	}

	if err := s.cancellations.Create(ctx, *payload.ClassID, *payload.Reason); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create cancellation request")
	}
	return nil
}

// CreateRescheduling records a pending rescheduling request. The target date
// is validated first for format, then for being in the future, and the
// stored row carries the weekday and week number derived from the current
// anchor.
func (s *RequestService) CreateRescheduling(ctx context.Context, payload dto.ReschedulingPayload) error {
	if payload.Reason == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The reason can not be null.")
	}
	if payload.ClassID == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The classID can not be null.")
	}
	if payload.NewDate == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The newDate can not be null.")
	}

	if !dates.IsValidFormat(*payload.NewDate) {
		return appErrors.ErrInvalidDateFormat
	}
	newDate, err := dates.Parse(*payload.NewDate)
	if err != nil {
		return appErrors.ErrInvalidDateFormat
	}
	if !dates.IsFuture(newDate, dates.FromTime(s.now())) {
		return appErrors.ErrDateNotInFuture
	}

	if err := s.guardClass(ctx, *payload.ClassID, s.reschedulings); err != nil {
		return err
	}

	ref, err := s.anchors.Get(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load week anchor")
	}
	anchorStart, err := dates.Parse(ref.WeekStartDate)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "week anchor holds an invalid start date")
	}

	req := &models.ReschedulingRequest{
		ClassID: *payload.ClassID,
		Reason:  *payload.Reason,
		NewDay:  newDate.WeekdayName(),
		NewWeek: dates.WeekNumberFor(newDate, anchorStart, ref.WeekNumber),
		NewDate: newDate.String(),
	}
	if err := s.reschedulings.Create(ctx, req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create rescheduling request")
	}
	return nil
}

// CreateFeedback records a pending feedback for a class.
func (s *RequestService) CreateFeedback(ctx context.Context, payload dto.FeedbackPayload) error {
	if payload.Feedback == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The feedback note can not be null.")
	}
	if payload.ClassID == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The classID can not be null.")
	}

	if err := s.guardClass(ctx, *payload.ClassID, s.feedbacks); err != nil {
		return err
	}

	if err := s.feedbacks.Create(ctx, *payload.ClassID, *payload.Feedback); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create feedback")
	}
	return nil
}

// guardClass verifies the class exists, then that no request of this kind is
// already pending against it.
func (s *RequestService) guardClass(ctx context.Context, classID int, pending pendingCounter) error {
	exists, err := s.classes.ExistsByID(ctx, classID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to check class %d", classID))
	}
	if !exists {
		return appErrors.ErrClassNotFound
	}

	count, err := pending.CountPending(ctx, classID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to check pending requests for class %d", classID))
	}
	if count > 0 {
		return appErrors.ErrPendingRequest
	}
	return nil
}
