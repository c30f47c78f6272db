// Package response implements the legacy JSON contract: successes return the
// payload directly (or a {"message": ...} body), failures always return
// {"error": <message>} with the status the error taxonomy assigns.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/kings-labs/elp-api/pkg/errors"
)

// OK sends a 200 response with the given payload as the body.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Message sends a 200 response with a {"message": ...} body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Error sends a {"error": ...} body with the status carried by the error.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
