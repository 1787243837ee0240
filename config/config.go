package config

import (
	"fmt"
	"os"
)

// Config holds everything resolved from the environment at startup.
// Handlers never read the environment directly.
type Config struct {
	RecipeAPIBase string
	RecipeAPIKey  string
	Port          string
	MongoURI      string
	MongoDB       string
	RedisURL      string
}

// Load resolves configuration from the environment. Missing provider
// credentials are a startup error; the caller is expected to abort.
func Load() (*Config, error) {
	cfg := &Config{
		RecipeAPIBase: os.Getenv("RECIPE_API_BASE"),
		RecipeAPIKey:  os.Getenv("RECIPE_API_KEY"),
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       os.Getenv("MONGO_DB"),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	if cfg.RecipeAPIBase == "" {
		return nil, fmt.Errorf("RECIPE_API_BASE is required")
	}
	if cfg.RecipeAPIKey == "" {
		return nil, fmt.Errorf("RECIPE_API_KEY is required")
	}

	if cfg.Port == "" {
		cfg.Port = "4000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "forkful"
	}
	return cfg, nil
}
