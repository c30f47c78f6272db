package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kings-labs/elp-api/internal/dto"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
	"github.com/kings-labs/elp-api/pkg/response"
)

type classService interface {
	TutorClasses(ctx context.Context, discordID string) ([]dto.TutorClassView, error)
	WeeklyRosterExport(ctx context.Context, weekNumber int, format string) ([]byte, string, error)
}

// ClassHandler exposes class listings and the weekly roster export.
type ClassHandler struct {
	service classService
}

// NewClassHandler builds a new handler.
func NewClassHandler(service classService) *ClassHandler {
	return &ClassHandler{service: service}
}

// TutorClasses godoc
// @Summary List a tutor's recent and upcoming classes
// @Tags Classes
// @Produce json
// @Param discord_id path string true "Tutor discord ID"
// @Success 200 {array} dto.TutorClassView
// @Failure 400 {object} map[string]string
// @Router /tutor_classes/{discord_id} [get]
func (h *ClassHandler) TutorClasses(c *gin.Context) {
	classes, err := h.service.TutorClasses(c.Request.Context(), c.Param("discord_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// WeeklyExport godoc
// @Summary Export the weekly class roster
// @Tags Classes
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param week query int false "Week number (defaults to current)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Router /weekly_classes/export [get]
func (h *ClassHandler) WeeklyExport(c *gin.Context) {
	week := 0
	if raw := c.Query("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Week must be a non-negative integer."))
			return
		}
		week = parsed
	}

	format := c.DefaultQuery("format", "csv")
	data, contentType, err := h.service.WeeklyRosterExport(c.Request.Context(), week, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=weekly_classes.%s", ext))
	c.Data(http.StatusOK, contentType, data)
}
