package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Mail      MailConfig
	LLM       LLMConfig
	Nutrition NutritionConfig
	Pipeline  PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// MailConfig controls which messages the mailbox source yields.
type MailConfig struct {
	SenderFilter string        // only messages from this sender
	AfterDate    time.Time     // only messages received after this date
	MaildirPath  string        // filesystem source directory (.eml files)
	AccountEmail string        // mailbox owner, used by the background poller
	PollInterval time.Duration // background poll period, 0 disables polling
}

// LLMConfig holds completion-oracle configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// NutritionConfig holds calorie-source credentials and endpoints.
// Empty keys disable the corresponding cascade step.
type NutritionConfig struct {
	NinjasAPIKey  string
	NinjasBaseURL string
	SearchAPIKey  string
	SearchBaseURL string
	Timeout       time.Duration
}

// PipelineConfig bounds pipeline parallelism.
type PipelineConfig struct {
	Workers         int           // concurrent messages
	QueueSize       int
	ProcessTimeout  time.Duration // per message
	DishConcurrency int           // concurrent dish resolutions per order
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Mail: MailConfig{
			SenderFilter: getEnv("MAIL_SENDER_FILTER", "noreply@swiggy.in"),
			AfterDate:    getEnvAsDate("MAIL_AFTER_DATE", time.Time{}),
			MaildirPath:  getEnv("MAILDIR_PATH", ""),
			AccountEmail: getEnv("MAIL_ACCOUNT_EMAIL", ""),
			PollInterval: getEnvAsDuration("MAIL_POLL_INTERVAL", 0),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Nutrition: NutritionConfig{
			NinjasAPIKey:  getEnv("API_NINJAS_KEY", ""),
			NinjasBaseURL: getEnv("API_NINJAS_URL", "https://api.api-ninjas.com/v1/nutrition"),
			SearchAPIKey:  getEnv("SERPAPI_KEY", ""),
			SearchBaseURL: getEnv("SERPAPI_URL", "https://serpapi.com/search"),
			Timeout:       getEnvAsDuration("NUTRITION_TIMEOUT", 10*time.Second),
		},
		Pipeline: PipelineConfig{
			Workers:         getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:       getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout:  getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 3*time.Minute),
			DishConcurrency: getEnvAsInt("DISH_CONCURRENCY", 3),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsDate(key string, defaultValue time.Time) time.Time {
	if value := os.Getenv(key); value != "" {
		if t, err := time.ParseInLocation("2006-01-02", value, time.UTC); err == nil {
			return t
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration. Missing external credentials
// surface here as configuration errors, distinct from per-message or
// per-dish resolution misses which are never errors.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
