package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// Config holds the dashboard backend configuration
type Config struct {
	Port          string `mapstructure:"port"`
	DatasetPath   string `mapstructure:"dataset_path"`
	TopZonesLimit int    `mapstructure:"top_zones_limit"`
}

// Load reads configuration from config.yaml (if present) and the
// environment. Environment variables override file values.
func Load() *Config {
	viper.SetDefault("port", ":8080")
	viper.SetDefault("dataset_path", "./data/taxi.db")
	viper.SetDefault("top_zones_limit", 10)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &cfg
}
