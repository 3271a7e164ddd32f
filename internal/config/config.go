package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Finviz FinvizConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Host string
}

// FinvizConfig holds news source configuration
type FinvizConfig struct {
	BaseURL string
}

// RedisConfig holds the news cache configuration
type RedisConfig struct {
	Enabled bool
	Addr    string
	TTL     time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	EventTopic    string
	RequestTopic  string
	ConsumerGroup string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Finviz: FinvizConfig{
			BaseURL: getEnv("FINVIZ_BASE_URL", ""),
		},
		Redis: RedisConfig{
			Enabled: getEnvBool("REDIS_ENABLED", false),
			Addr:    getEnv("REDIS_ADDR", "localhost:6379"),
			TTL:     getEnvDuration("REDIS_NEWS_TTL", 5*time.Minute),
		},
		Kafka: KafkaConfig{
			Enabled:       getEnvBool("KAFKA_ENABLED", false),
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			EventTopic:    getEnv("KAFKA_EVENT_TOPIC", "analysis-events"),
			RequestTopic:  getEnv("KAFKA_REQUEST_TOPIC", "analysis-requests"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "sentiment-analytics"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
