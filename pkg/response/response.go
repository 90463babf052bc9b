// Package response provides JSON helpers matching the public API's wire
// shapes: success bodies are the payload itself, error bodies are
// {"error": ...} with optional field-level "details".
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldError describes one failing field in a validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK sends a 200 JSON response with the payload as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with an error message.
func BadRequest(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err})
}

// ValidationFailed sends 400 listing every failing field.
func ValidationFailed(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
}

// NotFound sends 404 with an error message.
func NotFound(c *gin.Context, err string) {
	c.JSON(http.StatusNotFound, gin.H{"error": err})
}

// Internal sends 500 with a generic error message.
func Internal(c *gin.Context, err string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err})
}
