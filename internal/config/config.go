package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OllamaHost     string
	Model          string
	OutputRoot     string
	HostOutputRoot string
	HTTPAddr       string
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
}

func Load() (*Config, error) {
	// Missing .env is fine, values may come from the process environment.
	_ = godotenv.Load()

	return &Config{
		OllamaHost:     getEnv("OLLAMA_HOST", "http://localhost:11434"),
		Model:          getEnv("JOBBOT_MODEL", "llama3"),
		OutputRoot:     getEnv("JOBBOT_OUTPUT_ROOT", "job-packages"),
		HostOutputRoot: getEnv("HOST_OUTPUT_ROOT", "./job-packages"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		RequestTimeout: getEnvSeconds("JOBBOT_TIMEOUT", 600),
		ConnectTimeout: getEnvSeconds("JOBBOT_CONNECT_TIMEOUT", 30),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
