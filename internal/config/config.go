package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config (доставка уведомлений внешнему коллаборатору)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Dispatch Engine Config
	// Паузы между фазами рабочего процесса назначения. Влияют только на темп,
	// порядок фаз фиксирован.
	AnalyzePositionDelay   time.Duration `env:"ANALYZE_POSITION_DELAY" envDefault:"1000ms"`
	CalculateDistanceDelay time.Duration `env:"CALCULATE_DISTANCE_DELAY" envDefault:"800ms"`
	EvaluateSkillsDelay    time.Duration `env:"EVALUATE_SKILLS_DELAY" envDefault:"800ms"`
	ActivityClearDelay     time.Duration `env:"ACTIVITY_CLEAR_DELAY" envDefault:"2s"`

	// Auto Detection Config
	DetectionInterval    time.Duration `env:"DETECTION_INTERVAL" envDefault:"15s"`
	DetectionProbability float64       `env:"DETECTION_PROBABILITY" envDefault:"0.3"`
	AutoAssignDelay      time.Duration `env:"AUTO_ASSIGN_DELAY" envDefault:"2s"`

	// Stats Config (константы для отображения, не пересчитываются)
	AvgAssignmentTimeSec int `env:"AVG_ASSIGNMENT_TIME_SEC" envDefault:"8"`
	AccuracyPercent      int `env:"ACCURACY_PERCENT" envDefault:"97"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		AnalyzePositionDelay:   getEnvAsDuration("ANALYZE_POSITION_DELAY", 1000*time.Millisecond),
		CalculateDistanceDelay: getEnvAsDuration("CALCULATE_DISTANCE_DELAY", 800*time.Millisecond),
		EvaluateSkillsDelay:    getEnvAsDuration("EVALUATE_SKILLS_DELAY", 800*time.Millisecond),
		ActivityClearDelay:     getEnvAsDuration("ACTIVITY_CLEAR_DELAY", 2*time.Second),
		DetectionInterval:      getEnvAsDuration("DETECTION_INTERVAL", 15*time.Second),
		DetectionProbability:   getEnvAsFloat("DETECTION_PROBABILITY", 0.3),
		AutoAssignDelay:        getEnvAsDuration("AUTO_ASSIGN_DELAY", 2*time.Second),
		AvgAssignmentTimeSec:   getEnvAsInt("AVG_ASSIGNMENT_TIME_SEC", 8),
		AccuracyPercent:        getEnvAsInt("ACCURACY_PERCENT", 97),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DetectionProbability < 0 || cfg.DetectionProbability > 1 {
		return nil, fmt.Errorf("DETECTION_PROBABILITY must be between 0 and 1, got %f", cfg.DetectionProbability)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
