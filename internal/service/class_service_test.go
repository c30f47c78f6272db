package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/internal/models"
)

type stubClassLister struct {
	tutorRows []dto.TutorClassRow
	weekRows  []dto.WeeklyClassRow
	weekAsked int
}

func (s *stubClassLister) ListForTutorDiscordID(ctx context.Context, discordID string) ([]dto.TutorClassRow, error) {
	return s.tutorRows, nil
}

func (s *stubClassLister) ListForWeek(ctx context.Context, weekNumber int) ([]dto.WeeklyClassRow, error) {
	s.weekAsked = weekNumber
	return s.weekRows, nil
}

func TestTutorClassesRecencyFilter(t *testing.T) {
	lister := &stubClassLister{tutorRows: []dto.TutorClassRow{
		{ID: 1, LevelName: "GCSE", Subject: "Maths", StudentFirstName: "Ada", StudentLastName: "Lovelace", Date: "09/20/2023"},
		{ID: 2, LevelName: "GCSE", Subject: "Maths", StudentFirstName: "Ada", StudentLastName: "Lovelace", Date: "09/01/2023"},
		{ID: 3, LevelName: "A-Level", Subject: "Physics", StudentFirstName: "Alan", StudentLastName: "Turing", Date: "10/05/2023"},
	}}
	svc := NewClassService(lister, &stubAnchorStore{}, nil)
	svc.now = fixedNow("09/24/2023")

	views, err := svc.TutorClasses(context.Background(), "tutor#1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	// 09/20 started 4 days ago, inside the window; 09/01 is too old; a
	// future class always qualifies.
	assert.Equal(t, 1, views[0].ID)
	assert.Equal(t, "GCSE Maths", views[0].Name)
	assert.Equal(t, "Ada, Lovelace", views[0].Student)
	assert.Equal(t, "09/20/2023", views[0].Date)
	assert.Equal(t, 3, views[1].ID)
}

func TestTutorClassesEmpty(t *testing.T) {
	svc := NewClassService(&stubClassLister{}, &stubAnchorStore{}, nil)

	views, err := svc.TutorClasses(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestWeeklyRosterExportCSV(t *testing.T) {
	lister := &stubClassLister{weekRows: []dto.WeeklyClassRow{
		{ID: 1, Date: "09/25/2023", Day: "Monday", Subject: "Maths", LevelName: "GCSE",
			StudentFirstName: "Ada", StudentLastName: "Lovelace",
			TutorFirstName: "Grace", TutorLastName: "Hopper"},
	}}
	svc := NewClassService(lister, &stubAnchorStore{}, nil)

	data, contentType, err := svc.WeeklyRosterExport(context.Background(), 6, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, 6, lister.weekAsked)

	body := string(data)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Subject")
	assert.Contains(t, lines[1], "Ada Lovelace")
	assert.Contains(t, lines[1], "Grace Hopper")
}

func TestWeeklyRosterExportDefaultsToCurrentWeek(t *testing.T) {
	lister := &stubClassLister{}
	anchors := &stubAnchorStore{ref: &models.WeekReference{WeekNumber: 9, WeekStartDate: "11/11/2023"}}
	svc := NewClassService(lister, anchors, nil)

	_, _, err := svc.WeeklyRosterExport(context.Background(), 0, "csv")
	require.NoError(t, err)
	assert.Equal(t, 9, lister.weekAsked)
}

func TestWeeklyRosterExportPDF(t *testing.T) {
	svc := NewClassService(&stubClassLister{}, &stubAnchorStore{}, nil)

	data, contentType, err := svc.WeeklyRosterExport(context.Background(), 6, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestWeeklyRosterExportUnknownFormat(t *testing.T) {
	svc := NewClassService(&stubClassLister{}, &stubAnchorStore{}, nil)

	_, _, err := svc.WeeklyRosterExport(context.Background(), 6, "xlsx")
	require.Error(t, err)
}
