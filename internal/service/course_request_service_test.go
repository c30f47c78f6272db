package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kings-labs/elp-api/internal/dto"
)

type stubCourseRequestStore struct {
	rows        []dto.NewCourseRequestRow
	listErr     error
	markedIDs   []int
	count       int
	resetResult int64
}

func (s *stubCourseRequestStore) ListNew(ctx context.Context) ([]dto.NewCourseRequestRow, error) {
	return s.rows, s.listErr
}

func (s *stubCourseRequestStore) MarkPending(ctx context.Context, ids []int) error {
	s.markedIDs = ids
	return nil
}

func (s *stubCourseRequestStore) CountNew(ctx context.Context) (int, error) {
	return s.count, nil
}

func (s *stubCourseRequestStore) ResetPendingToNew(ctx context.Context) (int64, error) {
	return s.resetResult, nil
}

func TestListNewAndMarkPendingGroupsOptions(t *testing.T) {
	store := &stubCourseRequestStore{rows: []dto.NewCourseRequestRow{
		{ID: 1, Subject: "Maths", Frequency: 2, LevelName: "GCSE", Money: 30, Duration: 1, DateOptionID: 10, Day: "Monday", Time: "18:00"},
		{ID: 1, Subject: "Maths", Frequency: 2, LevelName: "GCSE", Money: 30, Duration: 1, DateOptionID: 11, Day: "Thursday", Time: "17:00"},
		{ID: 2, Subject: "Physics", Frequency: 1, LevelName: "A-Level", Money: 45, Duration: 2, DateOptionID: 12, Day: "Friday", Time: "16:00"},
	}}
	svc := NewCourseRequestService(store, nil, time.Minute, nil)

	requests, err := svc.ListNewAndMarkPending(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Equal(t, 1, requests[0].ID)
	require.Len(t, requests[0].DateOptions, 2)
	assert.Equal(t, 10, requests[0].DateOptions[0].ID)
	assert.Equal(t, "Monday at 18:00", requests[0].DateOptions[0].String)
	assert.Equal(t, "Thursday at 17:00", requests[0].DateOptions[1].String)

	assert.Equal(t, 2, requests[1].ID)
	assert.Equal(t, "Physics", requests[1].Subject)
	assert.Equal(t, 45.0, requests[1].Money)

	assert.Equal(t, []int{1, 2}, store.markedIDs)
}

func TestListNewAndMarkPendingEmpty(t *testing.T) {
	store := &stubCourseRequestStore{}
	svc := NewCourseRequestService(store, nil, time.Minute, nil)

	requests, err := svc.ListNewAndMarkPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.Nil(t, store.markedIDs)
}

func TestListNewAndMarkPendingListFailure(t *testing.T) {
	store := &stubCourseRequestStore{listErr: errors.New("down")}
	svc := NewCourseRequestService(store, nil, time.Minute, nil)

	_, err := svc.ListNewAndMarkPending(context.Background())
	require.Error(t, err)
	assert.Nil(t, store.markedIDs)
}

func TestCountNewWithoutCache(t *testing.T) {
	store := &stubCourseRequestStore{count: 7}
	svc := NewCourseRequestService(store, nil, time.Minute, nil)

	count, err := svc.CountNew(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestResetPendingToNew(t *testing.T) {
	store := &stubCourseRequestStore{resetResult: 3}
	svc := NewCourseRequestService(store, nil, time.Minute, nil)

	affected, err := svc.ResetPendingToNew(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}
