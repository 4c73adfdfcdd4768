package config

import "github.com/caarlos0/env/v10"

// Config centralises the service configuration.
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	SiteConfigPath string `env:"SITE_CONFIG_PATH"`

	ChatProvider string `env:"CHAT_PROVIDER" envDefault:"anthropic"`
	ChatAPIKey   string `env:"CHAT_API_KEY"`
	ChatModel    string `env:"CHAT_MODEL" envDefault:"claude-haiku-4-5-20251001"`
	ChatBaseURL  string `env:"CHAT_BASE_URL"`

	BlogProvider string `env:"BLOG_PROVIDER" envDefault:"openai"`
	BlogAPIKey   string `env:"BLOG_API_KEY"`
	BlogModel    string `env:"BLOG_MODEL" envDefault:"gpt-4o"`
	BlogBaseURL  string `env:"BLOG_BASE_URL"`

	AdminAPIToken string `env:"ADMIN_API_TOKEN"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
