package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type Config struct {
	HTTP     HTTPConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Admin    AdminConfig
	Auth     AuthConfig
	Log      LogConfig
}

type HTTPConfig struct {
	Addr string
}

type StorageConfig struct {
	Driver           string
	DataDir          string
	SQLitePath       string
	ReconcileOnStart bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MongoConfig struct {
	URI      string
	Database string
}

// AdminConfig - учетная запись, которой заполняется пустой документ users
type AdminConfig struct {
	Username string
	Password string
}

type AuthConfig struct {
	LoginRatePerMinute int
	LoginBurst         int
}

type LogConfig struct {
	Level slog.Level
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Driver:           strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
			DataDir:          getEnv("DATA_DIR", "data"),
			SQLitePath:       getEnv("SQLITE_PATH", "voting.db"),
			ReconcileOnStart: getEnvBool("RECONCILE_ON_START", true),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "voting"),
			Password: getEnv("DB_PASSWORD", "voting"),
			DBName:   getEnv("DB_NAME", "team_voting"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "team_voting"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Auth: AuthConfig{
			LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 5),
			LoginBurst:         getEnvInt("LOGIN_BURST", 5),
		},
		Log: LogConfig{
			Level: getEnvLevel("LOG_LEVEL", slog.LevelInfo),
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
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv(key))); err != nil {
		return defaultValue
	}
	return level
}
