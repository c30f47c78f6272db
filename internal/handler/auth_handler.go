package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kings-labs/elp-api/internal/dto"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
	"github.com/kings-labs/elp-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	service  authService
	validate *validator.Validate
}

// NewAuthHandler builds a new handler.
func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{service: service, validate: validator.New()}
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginPayload true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload dto.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	token, err := h.service.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LoginResponse{Token: token})
}
