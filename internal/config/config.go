package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"catalog/internal/uploads"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the service settings.
type Config struct {
	Port          string
	UploadDir     string
	MaxUploadSize int64
	RabbitMQURL   string
	EventsQueue   string
}

// Addr is the address the HTTP server listens on.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from an optional .env file and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Could not load .env file: %v", err)
	}

	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_SIZE", uploads.DefaultMaxSize)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("PRODUCT_EVENTS_QUEUE", "product_events")
	v.AutomaticEnv()

	cfg := Config{
		Port:          v.GetString("PORT"),
		UploadDir:     v.GetString("UPLOAD_DIR"),
		MaxUploadSize: v.GetInt64("MAX_UPLOAD_SIZE"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		EventsQueue:   v.GetString("PRODUCT_EVENTS_QUEUE"),
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT must not be empty")
	}
	if cfg.UploadDir == "" {
		return Config{}, fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	if cfg.MaxUploadSize <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", cfg.MaxUploadSize)
	}
	return cfg, nil
}
