package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/pkg/response"
)

type courseRequestService interface {
	ListNewAndMarkPending(ctx context.Context) ([]dto.NewCourseRequest, error)
	CountNew(ctx context.Context) (int, error)
	ResetPendingToNew(ctx context.Context) (int64, error)
}

// CourseRequestHandler exposes the course request drain endpoints.
type CourseRequestHandler struct {
	service courseRequestService
}

// NewCourseRequestHandler builds a new handler.
func NewCourseRequestHandler(service courseRequestService) *CourseRequestHandler {
	return &CourseRequestHandler{service: service}
}

// ListNew godoc
// @Summary Surface new course requests and flip them to pending
// @Tags CourseRequests
// @Produce json
// @Success 200 {object} map[string][]dto.NewCourseRequest
// @Failure 400 {object} map[string]string
// @Router /new_course_requests [get]
func (h *CourseRequestHandler) ListNew(c *gin.Context) {
	requests, err := h.service.ListNewAndMarkPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"result": requests})
}

// Count godoc
// @Summary Count course requests waiting to be surfaced
// @Tags CourseRequests
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Router /course_requests_number [get]
func (h *CourseRequestHandler) Count(c *gin.Context) {
	count, err := h.service.CountNew(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"number": count})
}

// ResetPending godoc
// @Summary Roll pending course requests back to new
// @Tags CourseRequests
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /change_course_requests_status_to_new [put]
func (h *CourseRequestHandler) ResetPending(c *gin.Context) {
	if _, err := h.service.ResetPendingToNew(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "New course request(s) have been updated.")
}
