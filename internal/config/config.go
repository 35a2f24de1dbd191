package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	PORT string

	DB_USERNAME string
	DB_PASSWORD string
	DB_HOST     string
	DB_PORT     string
	DB_NAME     string
	DISABLE_TLS string

	SECRET_KEY                  string
	ACCESS_TOKEN_EXPIRE_MINUTES int

	GEMINI_API_KEY         string
	GEMINI_BASE_URL        string
	GEMINI_MODEL           string
	GEMINI_TIMEOUT_SECONDS int

	// Comma-separated list of origins allowed by the CORS layer.
	ALLOWED_ORIGINS []string

	// Otel
	OTEL_EXPORTER_OTLP_ENDPOINT string
}

func ReadConfig() *Config {
	return &Config{
		PORT: getEnvOrDefault("PORT", "8000"),

		DB_USERNAME: os.Getenv("DB_USERNAME"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_NAME:     os.Getenv("DB_NAME"),
		DISABLE_TLS: os.Getenv("DISABLE_TLS"),

		SECRET_KEY:                  os.Getenv("SECRET_KEY"),
		ACCESS_TOKEN_EXPIRE_MINUTES: getIntEnvOrDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30),

		GEMINI_API_KEY:         os.Getenv("GEMINI_API_KEY"),
		GEMINI_BASE_URL:        getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GEMINI_MODEL:           getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GEMINI_TIMEOUT_SECONDS: getIntEnvOrDefault("GEMINI_TIMEOUT_SECONDS", 60),

		ALLOWED_ORIGINS: splitOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "https://roadmap-two-sigma.vercel.app")),

		OTEL_EXPORTER_OTLP_ENDPOINT: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
