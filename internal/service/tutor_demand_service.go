package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/internal/models"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
)

type courseRequestReader interface {
	FindByID(ctx context.Context, id int) (*models.CourseRequest, error)
}

type tutorReader interface {
	FindByDiscordID(ctx context.Context, discordID string) (*models.Tutor, error)
}

type tutorDemandStore interface {
	Create(ctx context.Context, tutorID, courseRequestID int) (int, error)
	CreateDateOptionLinks(ctx context.Context, demandID int, dateOptionIDs []int) error
}

// TutorDemandService records tutor applications against open course
// requests.
type TutorDemandService struct {
	courseRequests courseRequestReader
	tutors         tutorReader
	demands        tutorDemandStore
	logger         *zap.Logger
}

// NewTutorDemandService builds a TutorDemandService.
func NewTutorDemandService(courseRequests courseRequestReader, tutors tutorReader, demands tutorDemandStore, logger *zap.Logger) *TutorDemandService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TutorDemandService{
		courseRequests: courseRequests,
		tutors:         tutors,
		demands:        demands,
		logger:         logger,
	}
}

// Submit validates and records one tutor demand with its date-option links.
// The demand insert and the link inserts are separate statements; if the
// links fail the demand row stays behind with an incomplete link set. Known
// gap, surfaced to the caller as a creation error.
func (s *TutorDemandService) Submit(ctx context.Context, payload dto.TutorDemandPayload) error {
	if payload.DiscordID == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The tutor's discord ID can not be null.")
	}
	if payload.CourseRequestID == nil {
		return appErrors.Clone(appErrors.ErrValidation, "The course request ID can not be null.")
	}
	if len(payload.DateOptions) == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "The date options can not be null or empty.")
	}

	courseRequest, err := s.courseRequests.FindByID(ctx, *payload.CourseRequestID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course request")
	}
	if courseRequest == nil {
		return appErrors.ErrCourseReqNotFound
	}

	if len(payload.DateOptions) != courseRequest.Frequency {
		return appErrors.Clone(appErrors.ErrValidation, "Incorrect number of date options specified.")
	}

	if courseRequest.Status == models.CourseRequestStatusTaken {
		return appErrors.ErrCourseRequestTaken
	}

	tutor, err := s.tutors.FindByDiscordID(ctx, *payload.DiscordID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve tutor")
	}
	if tutor == nil {
		return appErrors.Clone(appErrors.ErrValidation, "No tutor found for that discord ID.")
	}

	demandID, err := s.demands.Create(ctx, tutor.ID, courseRequest.ID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create tutor demand")
	}

	if err := s.demands.CreateDateOptionLinks(ctx, demandID, payload.DateOptions); err != nil {
		s.logger.Error("tutor demand created but date option links failed",
			zap.Int("tutor_demand_id", demandID),
			zap.Ints("date_option_ids", payload.DateOptions),
			zap.Error(err),
		)
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error creating tutor demand date options link")
	}
	return nil
}
