package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	ShippoAPIKey  string
	ShippoBaseURL string
	ShippoTimeout time.Duration

	KafkaBrokers     []string
	StatusEventTopic string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			log.Printf("Loaded environment variables from %s", examplePath)
			return
		}
	}

	log.Println("No .env file found, relying on process environment")
}

// Load reads the configuration from .env files and the process environment.
func Load() (*Config, error) {
	loadEnv()

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "9000"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnvInt("DB_PORT", 5432),
		DBUser:             getEnv("POSTGRES_USER", "postgres"),
		DBPassword:         os.Getenv("POSTGRES_PASSWORD"),
		DBName:             getEnv("POSTGRES_DB", "shipping"),
		ShippoAPIKey:       os.Getenv("SHIPPO_API_KEY"),
		ShippoBaseURL:      getEnv("SHIPPO_BASE_URL", "https://api.goshippo.com"),
		ShippoTimeout:      getEnvDuration("SHIPPO_TIMEOUT", 30*time.Second),
		KafkaBrokers:       getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
		StatusEventTopic:   getEnv("STATUS_EVENT_TOPIC", "shipment_status_events"),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		OutboxBatchSize:    getEnvInt("OUTBOX_BATCH_SIZE", 20),
		OutboxMaxAttempts:  getEnvInt("OUTBOX_MAX_ATTEMPTS", 5),
	}

	if cfg.ShippoAPIKey == "" {
		return nil, fmt.Errorf("SHIPPO_API_KEY is not set")
	}

	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvList parses a comma-separated value, dropping empty entries.
func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
