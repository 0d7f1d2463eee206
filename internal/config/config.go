package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	PlatformDiscord  = "discord"
	PlatformTelegram = "telegram"

	DefaultBackendURL = "https://gamerbodbot-api.herokuapp.com"
)

var (
	ErrMissingGatewayToken = errors.New("gateway token is not set")
	ErrMissingBackendToken = errors.New("backend token is not set")
	ErrUnknownPlatform     = errors.New("unknown gateway platform")
)

type Config struct {
	LogLevel        string
	Platform        string
	DiscordToken    string
	TelegramToken   string
	BackendURL      string
	BackendToken    string
	RefreshInterval time.Duration
	HandlerTimeout  time.Duration
	RateLimitEvery  time.Duration
	RateLimitBurst  int
	MetricsListen   string
}

// GatewayToken returns the login token of the selected platform.
func (c *Config) GatewayToken() string {
	if c.Platform == PlatformTelegram {
		return c.TelegramToken
	}

	return c.DiscordToken
}

var envBindings = map[string]string{
	"bot.log_level":            "LOG_LEVEL",
	"gateway.platform":         "GATEWAY_PLATFORM",
	"discord.token":            "TOKEN",
	"telegram.bot_token":       "TELEGRAM_TOKEN",
	"backend.base_url":         "BACKEND_URL",
	"backend.token":            "JWT_TOKEN",
	"backend.refresh_interval": "REFRESH_INTERVAL",
	"handler.timeout":          "HANDLER_TIMEOUT",
	"ratelimit.every":          "RATELIMIT_EVERY",
	"ratelimit.burst":          "RATELIMIT_BURST",
	"metrics.listen":           "METRICS_LISTEN",
}

// Load reads an optional .env file and an optional config.toml from the working directory, applies
// environment overrides and validates the result.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Debug().Msg("no .env file found, falling back to system environment variables")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	SetDefaults()

	log.Info().Msg("reading config file...")
	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		log.Info().Msg("no config file found, using defaults and environment")
	}

	return Parse()
}

// SetDefaults registers default values and environment variable names with viper.
func SetDefaults() {
	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("gateway.platform", PlatformDiscord)
	viper.SetDefault("backend.base_url", DefaultBackendURL)
	viper.SetDefault("backend.refresh_interval", "0s")
	viper.SetDefault("handler.timeout", "0s")
	viper.SetDefault("ratelimit.every", "0s")
	viper.SetDefault("ratelimit.burst", 1)

	for key, env := range envBindings {
		_ = viper.BindEnv(key, env)
	}
}

// Parse builds a Config from the current viper state.
func Parse() (*Config, error) {
	cfg := &Config{
		LogLevel:      viper.GetString("bot.log_level"),
		Platform:      viper.GetString("gateway.platform"),
		DiscordToken:  viper.GetString("discord.token"),
		TelegramToken: viper.GetString("telegram.bot_token"),
		BackendURL:    viper.GetString("backend.base_url"),
		BackendToken:  viper.GetString("backend.token"),
		MetricsListen: viper.GetString("metrics.listen"),
	}

	var err error

	cfg.RefreshInterval, err = parseDuration("backend.refresh_interval")
	if err != nil {
		return nil, err
	}

	cfg.HandlerTimeout, err = parseDuration("handler.timeout")
	if err != nil {
		return nil, err
	}

	cfg.RateLimitEvery, err = parseDuration("ratelimit.every")
	if err != nil {
		return nil, err
	}

	cfg.RateLimitBurst = viper.GetInt("ratelimit.burst")

	err = cfg.validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Platform != PlatformDiscord && c.Platform != PlatformTelegram {
		return fmt.Errorf("%w: %q", ErrUnknownPlatform, c.Platform)
	}

	if c.GatewayToken() == "" {
		return fmt.Errorf("%w for platform %s", ErrMissingGatewayToken, c.Platform)
	}

	if c.BackendToken == "" {
		return ErrMissingBackendToken
	}

	return nil
}

func parseDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	if raw == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s in config: %w", key, err)
	}

	return d, nil
}
