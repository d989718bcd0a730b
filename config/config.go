package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress  string   `mapstructure:"SERVER_ADDRESS"`  // e.g., ":8080"
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"` // CORS origins of the browser UI

	// AI Configuration
	MistralAPIKey  string `mapstructure:"MISTRAL_API_KEY"`  // API key for the Mistral chat-completion API
	MistralBaseURL string `mapstructure:"MISTRAL_BASE_URL"` // e.g., "https://api.mistral.ai/v1"

	// Export Configuration
	OutputDir string `mapstructure:"OUTPUT_DIR"` // Where generated documents are written for download
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("MISTRAL_BASE_URL", "https://api.mistral.ai/v1")
	viper.SetDefault("OUTPUT_DIR", "generated_pages")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info().Msg("config.yaml not found, relying on environment variables")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("using configuration file")
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.MistralAPIKey == "" {
		log.Warn().Msg("MISTRAL_API_KEY is not set; generation will always use the catalog fallback")
	}

	return
}
