package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	// Forecast target
	Disease string
	Drug    string
	Region  string
	Horizon int

	// Prior overrides (mean/std per forecast quantity)
	MarketSizePriorMean   float64
	MarketSizePriorStd    float64
	PatientSharePriorMean float64
	PatientSharePriorStd  float64
	RevenuePriorMean      float64
	RevenuePriorStd       float64
	Seasonality           bool
	Trend                 bool

	// Evidence sources
	CDCBaseURL      string
	FDABaseURL      string
	FDAAPIKey       string
	SerperBaseURL   string
	SerperAPIKey    string
	AnthropicAPIKey string

	// Transport
	RequestTimeout int // seconds
	RequestsPerSec int

	// Delivery
	TelegramBotToken string
	TelegramChatID   int64

	LogLevel string
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := Config{
		Disease: getEnvWithDefault("DISEASE", "migraine"),
		Drug:    os.Getenv("DRUG"),
		Region:  getEnvWithDefault("REGION", "US"),
		Horizon: getEnvIntWithDefault("FORECAST_HORIZON", 5),

		MarketSizePriorMean:   getEnvFloatWithDefault("MARKET_SIZE_PRIOR_MEAN", 1_000_000),
		MarketSizePriorStd:    getEnvFloatWithDefault("MARKET_SIZE_PRIOR_STD", 500_000),
		PatientSharePriorMean: getEnvFloatWithDefault("PATIENT_SHARE_PRIOR_MEAN", 0.2),
		PatientSharePriorStd:  getEnvFloatWithDefault("PATIENT_SHARE_PRIOR_STD", 0.1),
		RevenuePriorMean:      getEnvFloatWithDefault("REVENUE_PRIOR_MEAN", 100_000_000),
		RevenuePriorStd:       getEnvFloatWithDefault("REVENUE_PRIOR_STD", 50_000_000),
		Seasonality:           getEnvBoolWithDefault("SEASONALITY", false),
		Trend:                 getEnvBoolWithDefault("TREND", false),

		CDCBaseURL:      getEnvWithDefault("CDC_BASE_URL", "https://api.cdc.gov"),
		FDABaseURL:      getEnvWithDefault("FDA_BASE_URL", "https://api.fda.gov"),
		FDAAPIKey:       os.Getenv("FDA_API_KEY"),
		SerperBaseURL:   getEnvWithDefault("SERPER_BASE_URL", "https://google.serper.dev/search"),
		SerperAPIKey:    os.Getenv("SERPER_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		RequestTimeout: getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
		RequestsPerSec: getEnvIntWithDefault("REQUESTS_PER_SEC", 5),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0),

		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),
	}

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
