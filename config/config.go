package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Params   string
}

type Config struct {
	HTTPPort      string
	LogsDirectory string
	JWTSecret     string
	Username      string
	Password      string
	Database      *DatabaseConfig
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return &Config{
		HTTPPort:      getEnv("APP_PORT", "8000"),
		LogsDirectory: getEnv("LOGS_DIRECTORY", "logs"),
		JWTSecret:     getEnv("JWT_SECRET", "quickdeliver-dev-secret"),
		Username:      getEnv("APP_USER", "admin"),
		Password:      getEnv("APP_PASS", "secret"),
		Database: &DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "quickdeliver"),
			Params:   getEnv("DB_PARAMS", ""),
		},
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
