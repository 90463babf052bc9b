package notify

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/govtec-events/backend/config"
	"github.com/govtec-events/backend/internal/models"
)

// SheetsSink appends one row per registration to a Google Sheet, authed as a
// service account.
type SheetsSink struct {
	cfg    config.SheetsConfig
	logger *zap.Logger
}

// NewSheetsSink creates a Google Sheets sink.
func NewSheetsSink(cfg config.SheetsConfig, logger *zap.Logger) *SheetsSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetsSink{cfg: cfg, logger: logger}
}

// Name identifies the sink in logs.
func (s *SheetsSink) Name() string { return "sheets" }

// Attempt appends the registration row. Missing credentials or any API fault
// return false.
func (s *SheetsSink) Attempt(ctx context.Context, reg *models.Registration) bool {
	if s.cfg.ServiceAccountEmail == "" || s.cfg.PrivateKey == "" || s.cfg.SpreadsheetID == "" {
		s.logger.Warn("sheets sink not configured")
		return false
	}

	// Keys pasted into env files often carry escaped newlines.
	privateKey := strings.ReplaceAll(s.cfg.PrivateKey, `\n`, "\n")
	auth := &jwt.Config{
		Email:      s.cfg.ServiceAccountEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(auth.Client(ctx)))
	if err != nil {
		s.logger.Error("sheets service init failed", zap.Error(err))
		return false
	}

	row := &sheets.ValueRange{Values: [][]interface{}{{
		reg.FormattedID(),
		reg.FirstName,
		reg.LastName,
		reg.Email,
		reg.Phone,
		deref(reg.Company),
		deref(reg.JobTitle),
		yesNo(reg.DataConsent),
		yesNo(reg.MarketingConsent),
		reg.CommunicationMethod,
		reg.CreatedAt.Format(time.RFC3339),
	}}}

	_, err = svc.Spreadsheets.Values.Append(s.cfg.SpreadsheetID, s.cfg.SheetRange, row).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		s.logger.Error("sheets append failed", zap.Error(err), zap.String("formatted_id", reg.FormattedID()))
		return false
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
