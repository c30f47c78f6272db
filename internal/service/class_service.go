package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kings-labs/elp-api/internal/dates"
	"github.com/kings-labs/elp-api/internal/dto"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
	"github.com/kings-labs/elp-api/pkg/export"
)

// recentClassWindowDays bounds how far back the tutor classes listing
// reaches. Classes older than this are finished business for the bot.
const recentClassWindowDays = 10

type tutorClassLister interface {
	ListForTutorDiscordID(ctx context.Context, discordID string) ([]dto.TutorClassRow, error)
	ListForWeek(ctx context.Context, weekNumber int) ([]dto.WeeklyClassRow, error)
}

// ClassService serves class listings to tutors and renders the weekly
// roster exports.
type ClassService struct {
	classes tutorClassLister
	weeks   weekAnchorReader
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
	now     func() time.Time
}

// NewClassService builds a ClassService.
func NewClassService(classes tutorClassLister, weeks weekAnchorReader, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{
		classes: classes,
		weeks:   weeks,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
		now:     time.Now,
	}
}

// TutorClasses returns the classes of a tutor that started recently or are
// still upcoming, rendered for the bot. A tutor with no matching classes gets
// an empty list, not an error.
func (s *ClassService) TutorClasses(ctx context.Context, discordID string) ([]dto.TutorClassView, error) {
	rows, err := s.classes.ListForTutorDiscordID(ctx, discordID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch tutor classes")
	}

	today := dates.FromTime(s.now())
	views := make([]dto.TutorClassView, 0, len(rows))
	for _, row := range rows {
		classDate, err := dates.Parse(row.Date)
		if err != nil {
			s.logger.Warn("skipping class with malformed date",
				zap.Int("class_id", row.ID),
				zap.String("date", row.Date))
			continue
		}
		if !dates.StartedWithinDays(classDate, today, recentClassWindowDays) {
			continue
		}
		views = append(views, dto.TutorClassView{
			Name:    row.LevelName + " " + row.Subject,
			Student: row.StudentFirstName + ", " + row.StudentLastName,
			Date:    row.Date,
			ID:      row.ID,
		})
	}
	return views, nil
}

// WeeklyRosterExport renders the roster of a scheduling week as CSV or PDF.
// weekNumber zero means the current week.
func (s *ClassService) WeeklyRosterExport(ctx context.Context, weekNumber int, format string) ([]byte, string, error) {
	if weekNumber == 0 {
		anchor, err := s.weeks.Get(ctx)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve current week")
		}
		weekNumber = anchor.WeekNumber
	}

	rows, err := s.classes.ListForWeek(ctx, weekNumber)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch weekly classes")
	}

	table := export.Table{
		Headers: []string{"Class ID", "Date", "Day", "Subject", "Level", "Student", "Tutor"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(row.ID),
			row.Date,
			row.Day,
			row.Subject,
			row.LevelName,
			row.StudentFirstName + " " + row.StudentLastName,
			row.TutorFirstName + " " + row.TutorLastName,
		})
	}

	switch format {
	case "csv", "":
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return data, "text/csv", nil
	case "pdf":
		data, err := s.pdf.Render(table, fmt.Sprintf("Weekly classes, week %d", weekNumber))
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return data, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "Unsupported export format.")
	}
}
