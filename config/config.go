package config

import (
	"os"
	"strconv"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	TelegramBotToken string
	TelegramChatID   string
	ProxyURL         string
	DatabaseURL      string

	IntervalHours   int
	ActiveHourStart int
	ActiveHourEnd   int

	HistoryFile string
	ReportFile  string

	Host           string
	Port           string
	AllowedOrigins string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		ProxyURL:         os.Getenv("PROXY_URL"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),

		IntervalHours:   getEnvInt("INTERVAL_HOURS", 4),
		ActiveHourStart: getEnvInt("ACTIVE_HOUR_START", 8),
		ActiveHourEnd:   getEnvInt("ACTIVE_HOUR_END", 19),

		HistoryFile: getEnvOrDefault("HISTORY_FILE", "precios_historial.json"),
		ReportFile:  getEnvOrDefault("REPORT_FILE", "dashboard.html"),

		Host:           getEnvOrDefault("HOST", "0.0.0.0"),
		Port:           getEnvOrDefault("PORT", "8080"),
		AllowedOrigins: getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000"),
	}
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
