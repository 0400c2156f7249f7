package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Database  DatabaseConfig
	GRPC      GRPCConfig
	Auth      AuthConfig
	Reminders ReminderConfig
	Voice     VoiceConfig
	Log       LogConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path     string // SQLite database file path
	Required bool   // fail startup instead of serving in degraded mode
}

// GRPCConfig contains gRPC server settings.
type GRPCConfig struct {
	Address string // gRPC server listen address (e.g., ":50051")
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret   string // session token signing secret
	CookieName  string
	OwnerOpenID string // identity that is stored with the admin role
}

// ReminderConfig controls the reminder dispatcher.
type ReminderConfig struct {
	Schedule  string // cron spec, e.g. "@every 30s"
	BatchSize int
}

// VoiceConfig points at the transcription collaborator. An empty URL disables it.
type VoiceConfig struct {
	APIURL string
	APIKey string
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string // trace|debug|info|warn|error
	Format string // json|console
}

// Load loads configuration from the environment (and .env if present).
// JWT_SECRET is required.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := fromEnv("")
	if err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but uses a fixed JWT_SECRET when none is set.
// WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return fromEnv("dev-secret-change-me")
}

func fromEnv(defaultSecret string) (*Config, error) {
	required, err := getEnvBool("DB_REQUIRED", false)
	if err != nil {
		return nil, err
	}
	batch, err := getEnvInt("REMINDER_BATCH_SIZE", 100)
	if err != nil {
		return nil, err
	}
	if batch <= 0 {
		return nil, fmt.Errorf("REMINDER_BATCH_SIZE must be positive, got %d", batch)
	}
	return &Config{
		Database: DatabaseConfig{
			Path:     getEnv("DB_PATH", "planner.db"),
			Required: required,
		},
		GRPC: GRPCConfig{
			Address: getEnv("GRPC_ADDRESS", ":50051"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", defaultSecret),
			CookieName:  getEnv("SESSION_COOKIE_NAME", "app_session_id"),
			OwnerOpenID: getEnv("OWNER_OPEN_ID", ""),
		},
		Reminders: ReminderConfig{
			Schedule:  getEnv("REMINDER_SCHEDULE", "@every 30s"),
			BatchSize: batch,
		},
		Voice: VoiceConfig{
			APIURL: getEnv("VOICE_API_URL", ""),
			APIKey: getEnv("VOICE_API_KEY", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}, nil
}

// loadDotEnv reads .env (or the file named by ENV_FILE) without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv() error {
	file := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", file, err)
	}
	return nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		return b, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	voice := "disabled"
	if c.Voice.APIURL != "" {
		voice = c.Voice.APIURL
	}
	return fmt.Sprintf("Config{DB: %s (required=%t), gRPC: %s, Auth: *** (masked) ***, Reminders: %s, Voice: %s, Log: %s/%s}",
		c.Database.Path, c.Database.Required, c.GRPC.Address, c.Reminders.Schedule, voice, c.Log.Level, c.Log.Format)
}
