package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort          int           `json:"server_port"`
	TenantSlug          string        `json:"tenant_slug"`
	OperatorSecretKey   string        `json:"operator_secret_key"`
	OperatorTokenHours  int           `json:"operator_token_hours"`
	GlobalRateLimit     int           `json:"global_rate_limit"`
	SubmissionRateLimit int           `json:"submission_rate_limit"`
	ContentCacheTTL     time.Duration `json:"content_cache_ttl"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8080
	}

	operatorTokenHours, _ := strconv.Atoi(os.Getenv("OPERATOR_TOKEN_HOURS"))
	if operatorTokenHours == 0 {
		operatorTokenHours = 24
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute per IP
	}

	submissionRateLimit, _ := strconv.Atoi(os.Getenv("SUBMISSION_RATE_LIMIT"))
	if submissionRateLimit == 0 {
		submissionRateLimit = 30 // 30 form submissions per minute per IP
	}

	return &Config{
		ServerPort:          serverPort,
		TenantSlug:          os.Getenv("TENANT_SLUG"),
		OperatorSecretKey:   os.Getenv("OPERATOR_SECRET_KEY"),
		OperatorTokenHours:  operatorTokenHours,
		GlobalRateLimit:     globalRateLimit,
		SubmissionRateLimit: submissionRateLimit,
		ContentCacheTTL:     getEnvDurationWithDefault("CONTENT_CACHE_TTL", 5*time.Minute),
	}, nil
}

// RequireTenantSlug rejects a deployment without a tenant binding. The API
// main logs the error and runs degraded (every content route 404s).
func (c *Config) RequireTenantSlug() error {
	if c.TenantSlug == "" {
		return fmt.Errorf("TENANT_SLUG is not configured")
	}
	return nil
}
