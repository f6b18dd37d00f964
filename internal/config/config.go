// Package config загружает конфигурацию бота из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры,
// локальный .env подхватывается через godotenv.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

// Config содержит ВСЕ настройки приложения.
type Config struct {
	// --- Telegram ---
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`

	// --- Database ---
	// В Docker дефолт "postgres" (имя сервиса в docker-compose), локально DB_HOST=localhost.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"beautive"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"beautive"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	// Все «сегодня» и границы дней считаются в этом поясе.
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"Asia/Jakarta"`

	// --- Bot runtime ---
	// Сколько апдейтов обрабатываем параллельно.
	BotMaxInflight int `envconfig:"BOT_MAX_INFLIGHT" default:"64"`
	// Таймаут long polling (секунды)
	BotUpdateTimeoutSeconds int `envconfig:"BOT_UPDATE_TIMEOUT_SECONDS" default:"60"`

	// --- AI ---
	GenAIAPIKey  string        `envconfig:"GENAI_API_KEY"`
	GenAIModel   string        `envconfig:"GENAI_MODEL" default:"gemini-2.0-flash"`
	GenAITimeout time.Duration `envconfig:"GENAI_TIMEOUT" default:"30s"`
	// Модель синтеза речи для /narasi
	GenAISpeechModel string `envconfig:"GENAI_SPEECH_MODEL" default:"gemini-2.5-flash-preview-tts"`

	// --- Tracker ---
	ExerciseGoalMinutes int    `envconfig:"EXERCISE_GOAL_MINUTES" default:"60"`
	WaterGoalGlasses    int    `envconfig:"WATER_GOAL_GLASSES" default:"8"`
	ReminderSchedule    string `envconfig:"REMINDER_SCHEDULE" default:"0 19 * * *"`
	ReminderMinStreak   int    `envconfig:"REMINDER_MIN_STREAK" default:"3"`

	// --- Rate Limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"20"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// --- Metrics ---
	// Пустая строка отключает HTTP-сервер метрик.
	MetricsAddress string `envconfig:"METRICS_ADDRESS" default:":9090"`

	// --- Feature Flags ---
	FeatureTalksEnabled     bool `envconfig:"FEATURE_TALKS_ENABLED" default:"true"`
	FeaturePostureEnabled   bool `envconfig:"FEATURE_POSTURE_ENABLED" default:"false"`
	FeatureRemindersEnabled bool `envconfig:"FEATURE_REMINDERS_ENABLED" default:"true"`

	location *time.Location
}

// DatabaseDSN возвращает строку подключения к PostgreSQL в формате DSN.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Location возвращает часовой пояс приложения (заполняется в Validate).
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// AIEnabled — есть ли ключ для генеративной модели.
func (c *Config) AIEnabled() bool {
	return c.GenAIAPIKey != ""
}

func (c *Config) Validate() error {
	if c.BotMaxInflight <= 0 {
		return fmt.Errorf("BOT_MAX_INFLIGHT должен быть > 0")
	}
	if c.BotUpdateTimeoutSeconds <= 0 {
		return fmt.Errorf("BOT_UPDATE_TIMEOUT_SECONDS должен быть > 0")
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("некорректные DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if c.ExerciseGoalMinutes <= 0 || c.WaterGoalGlasses <= 0 {
		return fmt.Errorf("EXERCISE_GOAL_MINUTES и WATER_GOAL_GLASSES должны быть > 0")
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS и RATE_LIMIT_WINDOW должны быть > 0")
	}
	if c.GenAITimeout <= 0 {
		return fmt.Errorf("GENAI_TIMEOUT должен быть > 0")
	}
	if _, err := cron.ParseStandard(c.ReminderSchedule); err != nil {
		return fmt.Errorf("REMINDER_SCHEDULE %q: %w", c.ReminderSchedule, err)
	}
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		return fmt.Errorf("APP_TIMEZONE %q: %w", c.AppTimezone, err)
	}
	c.location = loc
	return nil
}

// Load читает .env (если есть) и переменные окружения и заполняет структуру Config.
// Уже выставленные переменные окружения имеют приоритет над .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("не удалось прочитать .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
