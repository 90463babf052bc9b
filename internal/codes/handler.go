// Package codes verifies registration-access codes submitted from the
// scan-a-code landing page.
package codes

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/govtec-events/backend/internal/store"
	"github.com/govtec-events/backend/pkg/response"
)

// VerifyRequest is the body for POST /api/verify-code.
type VerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// Handler handles code verification.
type Handler struct {
	store  store.Storage
	logger *zap.Logger
}

// NewHandler creates a code verification handler.
func NewHandler(s store.Storage, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: s, logger: logger}
}

// Verify handles POST /api/verify-code. Input is trimmed and uppercased
// before the membership test; codes are stored uppercase.
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Code is required")
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	valid, err := h.store.VerifyRegistrationCode(c.Request.Context(), code)
	if err != nil {
		h.logger.Error("verify code failed", zap.Error(err))
		response.Internal(c, "Code verification failed")
		return
	}

	h.logger.Info("code verified", zap.String("code", code), zap.Bool("valid", valid))
	response.OK(c, gin.H{"valid": valid})
}
