package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DBPath            string
	LogLevel          string
	ImportWorkerCount int
	ImportQueueSize   int
	ForecastDays      int

	// Review options seed the settings row on first start; after that the
	// stored settings win.
	NewCardsPerDay    int
	ReviewsPerDay     int
	LearnAhead        bool
	QuizBidirectional bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "linguareader.db"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		ImportWorkerCount: envIntOr("IMPORT_WORKER_COUNT", 2),
		ImportQueueSize:   envIntOr("IMPORT_QUEUE_SIZE", 32),
		ForecastDays:      envIntOr("FORECAST_DAYS", 30),
		NewCardsPerDay:    envIntOr("NEW_CARDS_PER_DAY", 20),
		ReviewsPerDay:     envIntOr("REVIEWS_PER_DAY", 100),
		LearnAhead:        envBoolOr("LEARN_AHEAD", false),
		QuizBidirectional: envBoolOr("QUIZ_BIDIRECTIONAL", false),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}
	if c.ImportWorkerCount < 1 {
		problems = append(problems, fmt.Sprintf("IMPORT_WORKER_COUNT must be at least 1 (got %d)", c.ImportWorkerCount))
	}
	if c.ImportQueueSize < 1 {
		problems = append(problems, fmt.Sprintf("IMPORT_QUEUE_SIZE must be at least 1 (got %d)", c.ImportQueueSize))
	}
	if c.ForecastDays < 1 || c.ForecastDays > 365 {
		problems = append(problems, fmt.Sprintf("FORECAST_DAYS must be between 1 and 365 (got %d)", c.ForecastDays))
	}
	if c.NewCardsPerDay < 0 {
		problems = append(problems, fmt.Sprintf("NEW_CARDS_PER_DAY cannot be negative (got %d)", c.NewCardsPerDay))
	}
	if c.ReviewsPerDay < 0 {
		problems = append(problems, fmt.Sprintf("REVIEWS_PER_DAY cannot be negative (got %d)", c.ReviewsPerDay))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
