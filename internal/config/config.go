package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	DatabaseURL        string
	CORSAllowedOrigins []string

	// Patient import
	DefaultPhoneRegion string
	ImportMaxBytes     int64
	ImportRatePerSec   float64
	ImportBurst        int

	// Voice-agent platform
	DefaultAgentID    string
	VoiceAPIBaseURL   string
	VoiceAPIKey       string
	VoiceAPITimeout   time.Duration
	VoiceProvisioning bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS"),

		DefaultPhoneRegion: getEnv("DEFAULT_PHONE_REGION", "US"),
		ImportMaxBytes:     int64(getEnvAsInt("IMPORT_MAX_BYTES", 10<<20)),
		ImportRatePerSec:   getEnvAsFloat("IMPORT_RATE_PER_SEC", 1),
		ImportBurst:        getEnvAsInt("IMPORT_BURST", 3),

		DefaultAgentID:    getEnv("DEFAULT_AGENT_ID", "agent-front-desk"),
		VoiceAPIBaseURL:   getEnv("VOICE_API_BASE_URL", ""),
		VoiceAPIKey:       getEnv("VOICE_API_KEY", ""),
		VoiceAPITimeout:   getEnvAsDuration("VOICE_API_TIMEOUT", 15*time.Second),
		VoiceProvisioning: getEnvAsBool("VOICE_PROVISIONING_ENABLED", false),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
