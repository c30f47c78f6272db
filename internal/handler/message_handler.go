package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kings-labs/elp-api/internal/dto"
	"github.com/kings-labs/elp-api/pkg/response"
)

type notificationService interface {
	Drain(ctx context.Context) ([]dto.PrivateMessage, error)
}

// MessageHandler exposes the notification drain endpoint.
type MessageHandler struct {
	service notificationService
}

// NewMessageHandler builds a new handler.
func NewMessageHandler(service notificationService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Drain godoc
// @Summary Drain resolved request notifications for delivery
// @Tags Messages
// @Produce json
// @Success 200 {object} map[string][]dto.PrivateMessage
// @Failure 400 {object} map[string]string
// @Router /private_messages [get]
func (h *MessageHandler) Drain(c *gin.Context) {
	messages, err := h.service.Drain(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"messages": messages})
}
