package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Email    EmailConfig
	Sheets   SheetsConfig
	Notify   NotifyConfig
	Codes    CodesConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all (e.g. http://localhost:3000,http://localhost:3001)
	StaticDir          string // SPA build directory served on unmatched routes; empty disables
}

// DatabaseConfig holds PostgreSQL connection settings.
// URL empty means registrations live in the in-memory store.
type DatabaseConfig struct {
	URL string // e.g. postgres://localhost:5432/registrations?sslmode=disable
}

// RedisConfig holds Redis connection settings.
// Addr empty means notifications run inline instead of via the queue.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// EmailConfig for the SMTP confirmation sink.
type EmailConfig struct {
	FromAddress string
	FromName    string
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
}

// SheetsConfig for the Google Sheets append sink.
type SheetsConfig struct {
	ServiceAccountEmail string
	PrivateKey          string // PEM; literal \n sequences are unescaped before use
	SpreadsheetID       string
	SheetRange          string // A1 range appended to, e.g. Sheet1!A1
}

// NotifyConfig holds sink dispatch settings.
type NotifyConfig struct {
	SinkTimeout int // seconds per sink attempt
}

// CodesConfig holds the valid registration-access codes.
type CodesConfig struct {
	Valid []string
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env

	readTimeout, _ := strconv.Atoi(getEnv("READ_TIMEOUT_SEC", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT_SEC", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "5000"),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			StaticDir:          getEnv("STATIC_DIR", ""),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Email: EmailConfig{
			FromAddress: getEnv("EMAIL_FROM_ADDRESS", "noreply@example.com"),
			FromName:    getEnv("EMAIL_FROM_NAME", "Govtec Events Team"),
			SMTPHost:    getEnv("SMTP_HOST", ""),
			SMTPPort:    getEnvInt("SMTP_PORT", 587),
			SMTPUser:    getEnv("SMTP_USER", ""),
			SMTPPass:    getEnv("SMTP_PASS", ""),
		},
		Sheets: SheetsConfig{
			ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
			PrivateKey:          getEnv("GOOGLE_PRIVATE_KEY", ""),
			SpreadsheetID:       getEnv("GOOGLE_SPREADSHEET_ID", ""),
			SheetRange:          getEnv("GOOGLE_SHEET_RANGE", "Sheet1!A1"),
		},
		Notify: NotifyConfig{
			SinkTimeout: getEnvInt("SINK_TIMEOUT_SEC", 10),
		},
		Codes: CodesConfig{
			Valid: splitTrim(getEnv("REGISTRATION_CODES", "GOVTEC2025,COMP001,REG123,EVENT2025"), ","),
		},
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, sep) {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
