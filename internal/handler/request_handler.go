package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kings-labs/elp-api/internal/dto"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
	"github.com/kings-labs/elp-api/pkg/response"
)

type requestService interface {
	CreateCancellation(ctx context.Context, payload dto.CancellationPayload) error
	CreateRescheduling(ctx context.Context, payload dto.ReschedulingPayload) error
	CreateFeedback(ctx context.Context, payload dto.FeedbackPayload) error
}

// RequestHandler exposes the class request lifecycle endpoints. Success
// message strings are part of the wire contract the bot matches on.
type RequestHandler struct {
	service requestService
}

// NewRequestHandler builds a new handler.
func NewRequestHandler(service requestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateCancellation godoc
// @Summary Open a cancellation request for a class
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.CancellationPayload true "Cancellation payload"
// @Success 200 {object} map[string]string
// @Failure 406 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /cancellation_request [post]
func (h *RequestHandler) CreateCancellation(c *gin.Context) {
	var payload dto.CancellationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	if err := h.service.CreateCancellation(c.Request.Context(), payload); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Cancellation request created.")
}

// CreateRescheduling godoc
// @Summary Open a rescheduling request for a class
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.ReschedulingPayload true "Rescheduling payload"
// @Success 200 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 406 {object} map[string]string
// @Failure 408 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /rescheduling_request [post]
func (h *RequestHandler) CreateRescheduling(c *gin.Context) {
	var payload dto.ReschedulingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	if err := h.service.CreateRescheduling(c.Request.Context(), payload); err != nil {
		response.Error(c, err)
		return
	}
	// The consumer matches on this exact string, inherited wording included.
	response.Message(c, "Cancellation request created.")
}

// CreateFeedback godoc
// @Summary Record tutor feedback on a class
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.FeedbackPayload true "Feedback payload"
// @Success 200 {object} map[string]string
// @Failure 406 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /feedback_creation [post]
func (h *RequestHandler) CreateFeedback(c *gin.Context) {
	var payload dto.FeedbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	if err := h.service.CreateFeedback(c.Request.Context(), payload); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Feedback created.")
}
