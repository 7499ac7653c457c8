package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Engine   Engine   `yaml:"engine"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

type Engine struct {
	// SearchOpening runs the full search on the empty board instead of picking a random cell.
	SearchOpening bool `yaml:"search-opening" env:"ENGINE_SEARCH_OPENING" env-default:"false"`
	// Seed of the opening move source, 0 keeps the global math/rand source.
	Seed int64 `yaml:"seed" env:"ENGINE_SEED" env-default:"0"`
}

type SelfPlay struct {
	Games         int    `yaml:"games" env:"SELF_PLAY_GAMES" env-default:"1"`
	StartPosition string `yaml:"start-position" env:"SELF_PLAY_START" env-default:""`
}

// Load - reads the yml file at path, environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
