package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kings-labs/elp-api/internal/dates"
	"github.com/kings-labs/elp-api/internal/models"
)

type weekAnchorStore interface {
	Get(ctx context.Context) (*models.WeekReference, error)
	Advance(ctx context.Context, prevWeekNumber, newWeekNumber int, newStartDate string) (bool, error)
}

type activeCourseLister interface {
	ListActive(ctx context.Context) ([]models.Course, error)
}

type classCreator interface {
	Create(ctx context.Context, class *models.Class) error
}

type generationMetrics interface {
	AddClassesCreated(n int)
	IncGenerationIncomplete()
	IncAnchorConflict()
}

// GenerationResult summarises one weekly generation cycle.
type GenerationResult struct {
	Generated      bool
	WeekNumber     int
	ClassesCreated int
	CoursesTotal   int
}

// ClassGenerationService creates one class per active course when a new
// scheduling week begins, then advances the week anchor. It is driven by the
// interval scheduler and is safe to re-run: until a cycle completes for every
// course the anchor stays put, so the next run retries the same target week.
type ClassGenerationService struct {
	anchors weekAnchorStore
	courses activeCourseLister
	classes classCreator
	metrics generationMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewClassGenerationService builds the weekly generator.
func NewClassGenerationService(anchors weekAnchorStore, courses activeCourseLister, classes classCreator, metrics generationMetrics, logger *zap.Logger) *ClassGenerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassGenerationService{
		anchors: anchors,
		courses: courses,
		classes: classes,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes one generation cycle. A cycle that creates fewer classes
// than there are active courses leaves the anchor unmoved and raises an
// operator alert; duplicate classes for courses that did succeed are
// tolerated until the schema gains a per-week uniqueness constraint.
func (s *ClassGenerationService) Run(ctx context.Context) (*GenerationResult, error) {
	today := dates.FromTime(s.now())

	ref, err := s.anchors.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load week anchor: %w", err)
	}

	weekStart, err := dates.Parse(ref.WeekStartDate)
	if err != nil {
		return nil, fmt.Errorf("parse week anchor start date: %w", err)
	}

	if !dates.IsAtLeastDaysAgo(weekStart, today, 7) {
		return &GenerationResult{Generated: false, WeekNumber: ref.WeekNumber}, nil
	}

	newWeekNumber := ref.WeekNumber + 1

	courses, err := s.courses.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active courses: %w", err)
	}

	created := 0
	for _, course := range courses {
		date, err := dates.DateForWeekday(course.Day, today)
		if err != nil {
			s.logger.Error("course has an invalid day of week",
				zap.Int("course_id", course.ID),
				zap.String("day", course.Day),
			)
			continue
		}

		class := &models.Class{
			CourseID:   course.ID,
			WeekNumber: newWeekNumber,
			Date:       date.String(),
			Day:        course.Day,
		}
		if err := s.classes.Create(ctx, class); err != nil {
			s.logger.Error("failed to create class",
				zap.Int("course_id", course.ID),
				zap.Int("week_number", newWeekNumber),
				zap.Error(err),
			)
			continue
		}
		created++
	}

	if s.metrics != nil {
		s.metrics.AddClassesCreated(created)
	}

	result := &GenerationResult{
		Generated:      true,
		WeekNumber:     newWeekNumber,
		ClassesCreated: created,
		CoursesTotal:   len(courses),
	}

	if created != len(courses) {
		if s.metrics != nil {
			s.metrics.IncGenerationIncomplete()
		}
		s.logger.Error("weekly class generation incomplete, anchor not advanced",
			zap.Int("created", created),
			zap.Int("expected", len(courses)),
			zap.Int("week_number", newWeekNumber),
		)
		return result, nil
	}

	newStart, err := dates.DateForWeekday("Saturday", today)
	if err != nil {
		return result, fmt.Errorf("compute new week start: %w", err)
	}

	advanced, err := s.anchors.Advance(ctx, ref.WeekNumber, newWeekNumber, newStart.String())
	if err != nil {
		return result, fmt.Errorf("advance week anchor: %w", err)
	}
	if !advanced {
		if s.metrics != nil {
			s.metrics.IncAnchorConflict()
		}
		s.logger.Warn("week anchor already advanced by another cycle",
			zap.Int("week_number", ref.WeekNumber),
		)
		return result, nil
	}

	s.logger.Info("weekly class generation complete",
		zap.Int("classes_created", created),
		zap.Int("week_number", newWeekNumber),
		zap.String("week_start_date", newStart.String()),
	)
	return result, nil
}
