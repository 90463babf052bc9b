package registrations

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/govtec-events/backend/internal/models"
	"github.com/govtec-events/backend/internal/notify"
	"github.com/govtec-events/backend/internal/store"
	"github.com/govtec-events/backend/pkg/response"
)

// CreateRequest is the body for POST /api/registrations. dataConsent and
// marketingConsent bind through pointers so an explicit false is accepted
// while an absent dataConsent still fails validation; refusing dataConsent=false
// is the client's policy, not the server's.
type CreateRequest struct {
	FirstName           string  `json:"firstName" binding:"required"`
	LastName            string  `json:"lastName" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Phone               string  `json:"phone" binding:"required"`
	Company             *string `json:"company"`
	JobTitle            *string `json:"jobTitle"`
	DataConsent         *bool   `json:"dataConsent" binding:"required"`
	MarketingConsent    *bool   `json:"marketingConsent"`
	CommunicationMethod string  `json:"communicationMethod" binding:"omitempty,oneof=email phone sms"`
	RegistrationCode    *string `json:"registrationCode"`
}

// registrationView is a stored record decorated with its display ID.
type registrationView struct {
	*models.Registration
	FormattedID string `json:"formattedId"`
}

func viewOf(reg *models.Registration) registrationView {
	return registrationView{Registration: reg, FormattedID: reg.FormattedID()}
}

// Handler handles registration HTTP endpoints.
type Handler struct {
	store    store.Storage
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewHandler creates a registrations handler.
func NewHandler(s store.Storage, notifier notify.Notifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: s, notifier: notifier, logger: logger}
}

// Create handles POST /api/registrations: validate, persist, notify sinks,
// respond with the stored record plus formattedId. Sink outcomes never alter
// the response.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.ValidationFailed(c, fieldErrors(verrs))
			return
		}
		response.BadRequest(c, "invalid request body")
		return
	}

	reg := &models.Registration{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		Company:             req.Company,
		JobTitle:            req.JobTitle,
		DataConsent:         *req.DataConsent,
		CommunicationMethod: req.CommunicationMethod,
		RegistrationCode:    req.RegistrationCode,
	}
	if req.MarketingConsent != nil {
		reg.MarketingConsent = *req.MarketingConsent
	}

	if err := h.store.CreateRegistration(c.Request.Context(), reg); err != nil {
		h.logger.Error("create registration failed", zap.Error(err), zap.String("email", req.Email))
		response.Internal(c, "Registration failed")
		return
	}

	h.notifier.Notify(c.Request.Context(), reg)

	response.OK(c, viewOf(reg))
}

// List handles GET /api/registrations.
func (h *Handler) List(c *gin.Context) {
	regs, err := h.store.GetAllRegistrations(c.Request.Context())
	if err != nil {
		h.logger.Error("list registrations failed", zap.Error(err))
		response.Internal(c, "Failed to fetch registrations")
		return
	}
	views := make([]registrationView, 0, len(regs))
	for _, reg := range regs {
		views = append(views, viewOf(reg))
	}
	response.OK(c, views)
}

// GetByID handles GET /api/registrations/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid registration id")
		return
	}
	reg, err := h.store.GetRegistration(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("get registration failed", zap.Error(err), zap.Int64("id", id))
		response.Internal(c, "Failed to fetch registration")
		return
	}
	if reg == nil {
		response.NotFound(c, "Registration not found")
		return
	}
	response.OK(c, viewOf(reg))
}

// fieldErrors converts validator failures into per-field detail entries with
// the JSON field names of the request schema.
func fieldErrors(verrs validator.ValidationErrors) []response.FieldError {
	details := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, response.FieldError{
			Field:   jsonFieldName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return details
}

func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
