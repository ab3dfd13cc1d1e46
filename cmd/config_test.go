package cmd_test

import (
	"testing"
	"time"

	"orders/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:  cmd.DefaultHTTPPort,
		DBHost:    "localhost",
		DBPort:    "5432",
		DBUser:    "orders",
		DBName:    "orders",
		DBSslMode: cmd.DefaultDBSslMode,
		APIKey:    "key",
		JWTSecret: "secret",
		TokenTTL:  time.Hour,
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.APIKey = ""
	cfg.JWTSecret = " "
	cfg.TokenTTL = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY is required")
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), "TOKEN_TTL must be positive")
}

func TestConfig_DSN(t *testing.T) {
	cfg := validConfig()
	cfg.DBPassword = "pw"

	assert.Equal(t, "host=localhost port=5432 user=orders password=pw dbname=orders sslmode=disable", cfg.DSN())
}
