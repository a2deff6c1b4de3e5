package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

// MistralConfig configures the text-generation gateway. An empty APIKey
// disables the gateway; every caller has a deterministic fallback except
// document analysis, which reports an upstream failure.
type MistralConfig struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

// WeaviateConfig configures the semantic-search collaborator. An empty URL
// disables semantic ranking; search degrades to filter-only results.
type WeaviateConfig struct {
	URL    string
	APIKey string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Mistral     MistralConfig
	Weaviate    WeaviateConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Mistral: MistralConfig{
			APIKey:  v.GetString("MISTRAL_API_KEY"),
			APIURL:  v.GetString("MISTRAL_API_URL"),
			Model:   v.GetString("MISTRAL_MODEL"),
			Timeout: v.GetDuration("MISTRAL_TIMEOUT"),
		},
		Weaviate: WeaviateConfig{
			URL:    v.GetString("WEAVIATE_URL"),
			APIKey: v.GetString("WEAVIATE_API_KEY"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Mistral.APIURL == "" {
		cfg.Mistral.APIURL = "https://api.mistral.ai/v1"
	}
	if cfg.Mistral.Model == "" {
		cfg.Mistral.Model = "mistral-large-latest"
	}
	if cfg.Mistral.Timeout == 0 {
		cfg.Mistral.Timeout = 30 * time.Second
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", cfg.HTTP.Port)
	}
	if cfg.Mistral.Timeout < 0 {
		return fmt.Errorf("MISTRAL_TIMEOUT must not be negative")
	}
	return nil
}
