package service

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kings-labs/elp-api/internal/dto"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
)

const countNewCacheKey = "elp:course_requests:new_count"

type courseRequestStore interface {
	ListNew(ctx context.Context) ([]dto.NewCourseRequestRow, error)
	MarkPending(ctx context.Context, ids []int) error
	CountNew(ctx context.Context) (int, error)
	ResetPendingToNew(ctx context.Context) (int64, error)
}

// CourseRequestService surfaces open course requests to the coordination bot
// and tracks their drain state.
type CourseRequestService struct {
	requests courseRequestStore
	cache    *redis.Client
	countTTL time.Duration
	logger   *zap.Logger
}

// NewCourseRequestService builds a CourseRequestService. The cache client is
// optional; without it every count hits the database.
func NewCourseRequestService(requests courseRequestStore, cache *redis.Client, countTTL time.Duration, logger *zap.Logger) *CourseRequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if countTTL <= 0 {
		countTTL = time.Minute
	}
	return &CourseRequestService{requests: requests, cache: cache, countTTL: countTTL, logger: logger}
}

// ListNewAndMarkPending returns every new course request that has enough date
// options for its frequency, grouped with those options, and flips the
// returned requests to pending so the next drain does not surface them again.
func (s *CourseRequestService) ListNewAndMarkPending(ctx context.Context) ([]dto.NewCourseRequest, error) {
	rows, err := s.requests.ListNew(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch new course requests")
	}

	grouped := make([]dto.NewCourseRequest, 0)
	indexByID := make(map[int]int)
	for _, row := range rows {
		idx, seen := indexByID[row.ID]
		if !seen {
			grouped = append(grouped, dto.NewCourseRequest{
				ID:          row.ID,
				Subject:     row.Subject,
				Frequency:   row.Frequency,
				LevelName:   row.LevelName,
				Money:       row.Money,
				Duration:    row.Duration,
				DateOptions: make([]dto.DateOptionView, 0, row.Frequency),
			})
			idx = len(grouped) - 1
			indexByID[row.ID] = idx
		}
		grouped[idx].DateOptions = append(grouped[idx].DateOptions, dto.DateOptionView{
			ID:     row.DateOptionID,
			String: row.Day + " at " + row.Time,
		})
	}

	if len(grouped) > 0 {
		ids := make([]int, 0, len(grouped))
		for _, req := range grouped {
			ids = append(ids, req.ID)
		}
		if err := s.requests.MarkPending(ctx, ids); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark course requests pending")
		}
		s.invalidateCount(ctx)
		s.logger.Info("course requests surfaced", zap.Int("requests", len(grouped)))
	}
	return grouped, nil
}

// CountNew returns the number of course requests still waiting to be
// surfaced. The count is cached briefly since the bot polls it.
func (s *CourseRequestService) CountNew(ctx context.Context) (int, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, countNewCacheKey).Result(); err == nil {
			if count, convErr := strconv.Atoi(cached); convErr == nil {
				return count, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("count cache read failed", zap.Error(err))
		}
	}

	count, err := s.requests.CountNew(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count new course requests")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, countNewCacheKey, strconv.Itoa(count), s.countTTL).Err(); err != nil {
			s.logger.Warn("count cache write failed", zap.Error(err))
		}
	}
	return count, nil
}

// ResetPendingToNew rolls every pending course request back to new so a lost
// batch can be surfaced again. It returns how many requests were reset.
func (s *CourseRequestService) ResetPendingToNew(ctx context.Context) (int64, error) {
	affected, err := s.requests.ResetPendingToNew(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset pending course requests")
	}
	s.invalidateCount(ctx)
	s.logger.Info("pending course requests reset", zap.Int64("affected", affected))
	return affected, nil
}

func (s *CourseRequestService) invalidateCount(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, countNewCacheKey).Err(); err != nil {
		s.logger.Warn("count cache invalidation failed", zap.Error(err))
	}
}
