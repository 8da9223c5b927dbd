package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything main needs to wire the service.
type Config struct {
	Addr            string
	PostgresDSN     string
	RedisURL        string
	KafkaBrokers    []string
	KafkaTopic      string
	JWTSigningKey   string
	ShutdownTimeout time.Duration
	RedirectTTL     time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:            getenv("VISTOFORMS_ADDR", ":8080"),
		PostgresDSN:     os.Getenv("VISTOFORMS_POSTGRES_DSN"),
		RedisURL:        os.Getenv("VISTOFORMS_REDIS_URL"),
		KafkaTopic:      getenv("VISTOFORMS_KAFKA_TOPIC", "vistoforms.step-submissions"),
		JWTSigningKey:   getenv("VISTOFORMS_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		ShutdownTimeout: getDuration("VISTOFORMS_SHUTDOWN_TIMEOUT", 10*time.Second),
		RedirectTTL:     getDuration("VISTOFORMS_REDIRECT_TTL", 30*time.Second),
	}
	if brokers := os.Getenv("VISTOFORMS_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
