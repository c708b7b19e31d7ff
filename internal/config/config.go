package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env" validate:"required"` // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`                       // Telegram API token loaded from environment
	Trivia           Trivia `mapstructure:"trivia"`                  // trivia provider section
	Bot              Bot    `mapstructure:"bot"`                     // bot behaviour section
}

// Trivia contains parameters of the external question provider.
type Trivia struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"` // provider root, e.g. https://opentdb.com
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`          // timeout of a single HTTP request
}

// Bot contains Telegram delivery parameters.
type Bot struct {
	Debug         bool `mapstructure:"debug"`                                        // verbose telegram client logging
	UpdateTimeout int  `mapstructure:"update_timeout" validate:"gte=0"`              // long polling timeout in seconds
	DefaultAmount int  `mapstructure:"default_amount" validate:"gte=1"`              // amount preselected by the generate flow
	MaxAmount     int  `mapstructure:"max_amount" validate:"gtefield=DefaultAmount"` // largest amount offered on the keyboard
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("trivia.base_url", "https://opentdb.com")
	v.SetDefault("trivia.timeout", "10s")
	v.SetDefault("bot.debug", false)
	v.SetDefault("bot.update_timeout", 60)
	v.SetDefault("bot.default_amount", 10)
	v.SetDefault("bot.max_amount", 50)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
