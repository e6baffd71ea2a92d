package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	GitHubToken string
	RedisURL    string
	LogLevel    string
}

// Load reads .env if present, then the environment. The returned error only
// reports a missing .env; the config itself is always usable.
func Load() (Config, error) {
	err := godotenv.Load()

	return Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		GitHubToken: getEnv("GITHUB_TOKEN", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
