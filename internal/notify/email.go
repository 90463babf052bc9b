package notify

import (
	"context"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/govtec-events/backend/config"
	"github.com/govtec-events/backend/internal/models"
)

// EmailSink sends the confirmation email over SMTP.
type EmailSink struct {
	cfg    config.EmailConfig
	logger *zap.Logger
}

// NewEmailSink creates an SMTP confirmation-email sink.
func NewEmailSink(cfg config.EmailConfig, logger *zap.Logger) *EmailSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailSink{cfg: cfg, logger: logger}
}

// Name identifies the sink in logs.
func (s *EmailSink) Name() string { return "email" }

// Attempt sends the confirmation email to the registrant. Missing SMTP
// config or a send fault return false. The dispatcher enforces the timeout;
// gomail itself has no context support.
func (s *EmailSink) Attempt(ctx context.Context, reg *models.Registration) bool {
	if s.cfg.SMTPHost == "" {
		s.logger.Warn("email sink not configured")
		return false
	}

	subject, text, html := ConfirmationEmail(reg.FirstName, reg.LastName, reg.FormattedID())

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", reg.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	dialer := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)
	if err := dialer.DialAndSend(m); err != nil {
		s.logger.Error("confirmation email failed",
			zap.Error(err),
			zap.String("to", reg.Email),
			zap.String("formatted_id", reg.FormattedID()),
		)
		return false
	}
	return true
}
