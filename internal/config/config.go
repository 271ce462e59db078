package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	AppEnv            string
	LogLevel          string
	DbPath            string
	TrustedProxies    []string
	TranslationFolder string
	OTLPEndpoint      string
	ServiceName       string
	ShutdownTimeout   time.Duration
}

const defaultShutdownTimeout = 10 * time.Second

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppEnv:            getEnv("APP_ENV", "production"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DbPath:            getEnv("DB_PATH", "tasks.db"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		OTLPEndpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:       getEnv("OTEL_SERVICE_NAME", "agenda"),
		ShutdownTimeout:   parseDuration(os.Getenv("SHUTDOWN_TIMEOUT"), defaultShutdownTimeout),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
