package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultHTTPPort  = "3500"
	DefaultTokenTTL  = time.Hour
	DefaultDBSslMode = "disable"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	APIKey        string
	JWTSecret     string
	TokenTTL      time.Duration
	AuditSchedule string
	LogLevel      slog.Level
}

// Validate reports every missing required setting.
func (c Config) Validate() error {
	var problems []error
	required := []struct{ key, value string }{
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"API_KEY", c.APIKey},
		{"JWT_SECRET", c.JWTSecret},
	}
	for _, setting := range required {
		if strings.TrimSpace(setting.value) == "" {
			problems = append(problems, fmt.Errorf("%s is required", setting.key))
		}
	}
	if c.TokenTTL <= 0 {
		problems = append(problems, errors.New("TOKEN_TTL must be positive"))
	}
	return errors.Join(problems...)
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
