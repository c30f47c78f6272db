package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kings-labs/elp-api/internal/dto"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
	"github.com/kings-labs/elp-api/pkg/response"
)

type tutorDemandService interface {
	Submit(ctx context.Context, payload dto.TutorDemandPayload) error
}

// TutorDemandHandler exposes the tutor application endpoint.
type TutorDemandHandler struct {
	service tutorDemandService
}

// NewTutorDemandHandler builds a new handler.
func NewTutorDemandHandler(service tutorDemandService) *TutorDemandHandler {
	return &TutorDemandHandler{service: service}
}

// Submit godoc
// @Summary Apply to take on a course request
// @Tags TutorDemands
// @Accept json
// @Produce json
// @Param payload body dto.TutorDemandPayload true "Tutor demand payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /tutor_demand [post]
func (h *TutorDemandHandler) Submit(c *gin.Context) {
	var payload dto.TutorDemandPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	if err := h.service.Submit(c.Request.Context(), payload); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Tutor demand created successfuly")
}
