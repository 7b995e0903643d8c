package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type Config struct {
	Env          string
	Port         string
	MongoURI     string
	DatabaseName string
	Origin       string
	JWTSecret    string
	Timeout      time.Duration
	SMTP         SMTPConfig
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// .env file not found, proceed with default values
		} else {
			panic("Error loading .env file")
		}
	}
	return Config{
		Env:          getEnv("ENV", "development"),
		Port:         getEnv("PORT", "8000"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017/"),
		DatabaseName: getEnv("DATABASE_NAME", "eduhub_db"),
		Origin:       getEnv("ORIGIN", "http://localhost:3000"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me"),
		Timeout:      10 * time.Second,
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
