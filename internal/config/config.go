package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Database struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	ConnectRetries int
}

type Config struct {
	Port           string
	FrontendOrigin string
	StaticDir      string
	LogFile        string
	BodyLimitBytes int64
	RedisAddr      string
	Database       Database
}

// Load reads the environment once at process start. A missing .env file is
// not an error; real environment variables win either way.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "3000"),
		FrontendOrigin: getEnv("FRONTEND_URL", "http://localhost:5173"),
		StaticDir:      getEnv("STATIC_DIR", "./public"),
		LogFile:        getEnv("LOG_FILE", "./logs/app.log"),
		BodyLimitBytes: getEnvInt64("BODY_LIMIT_BYTES", 1<<20),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		Database: Database{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       os.Getenv("DB_PASSWORD"),
			Name:           getEnv("DB_NAME", "payroll"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
