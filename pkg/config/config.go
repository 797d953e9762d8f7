package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Debug bool

	Port int

	// Origin is the site we scrape. Relative restaurant links from the
	// listing feed are resolved against it.
	Origin string

	RetryProfile    string  // lenient or strict
	MinRating       float64 // default rating filter for searches
	MaxResults      int     // 0 means unbounded, hard capped at 20
	MenuDelay       time.Duration
	AnthropicAPIKey string
	OpenAiAPIKey    string

	StaticToolsPath string
}

func NewConfig() *Config {
	return &Config{
		Debug: getBoolEnvDefault("DEBUG", false),

		Port: getIntEnvDefault("PORT", 8080),

		Origin: getStringEnvDefault("DELIVEROO_ORIGIN", "https://deliveroo.it"),

		RetryProfile: getStringEnvDefault("RETRY_PROFILE", "lenient"),
		MinRating:    getFloatEnvDefault("MIN_RATING", 0),
		MaxResults:   getIntEnvDefault("MAX_RESULTS", 20),
		MenuDelay:    getDurationEnvDefault("MENU_DELAY", 1500*time.Millisecond),

		AnthropicAPIKey: getStringEnvDefault("ANTHROPIC_API_KEY", ""),
		OpenAiAPIKey:    getStringEnvDefault("OPENAI_API_KEY", ""),

		StaticToolsPath: getStringEnvDefault("STATIC_TOOLS_PATH", ""),
	}
}

func getBoolEnvDefault(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}

	fmt.Printf("Using default value for %s\n", key)
	return defaultValue
}

func getStringEnvDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	fmt.Printf("Using default value for %s\n", key)
	return defaultValue
}

func getIntEnvDefault(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}

	fmt.Printf("Using default value for %s\n", key)
	return defaultValue
}

func getFloatEnvDefault(key string, defaultValue float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}

	fmt.Printf("Using default value for %s\n", key)
	return defaultValue
}

func getDurationEnvDefault(key string, defaultValue time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}

	fmt.Printf("Using default value for %s\n", key)
	return defaultValue
}
