package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kings-labs/elp-api/internal/models"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
	"github.com/kings-labs/elp-api/pkg/response"
)

// ClaimsContextKey is where the JWT middleware stores the validated claims.
const ClaimsContextKey = "auth_claims"

type tokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// JWTAuth rejects requests without a valid bearer token.
func JWTAuth(auth tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		token := header
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			token = strings.TrimSpace(header[len("bearer "):])
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}
