package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the portal
type Config struct {
	// Clinic branding
	Clinic ClinicConfig `mapstructure:"clinic"`

	// Session simulation configuration
	Session SessionConfig `mapstructure:"session"`

	// Chat engine configuration
	Chat ChatConfig `mapstructure:"chat"`

	// Domain store configuration
	Store StoreConfig `mapstructure:"store"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
}

// ClinicConfig holds clinic identity configuration
type ClinicConfig struct {
	Name string `mapstructure:"name"`
}

// SessionConfig holds login-simulation configuration
type SessionConfig struct {
	LoginDelayMS    int    `mapstructure:"login_delay_ms"`
	TokenTTLSeconds int    `mapstructure:"token_ttl_seconds"`
	JWTSecret       string `mapstructure:"jwt_secret"`
}

// ChatConfig holds chat-engine configuration
type ChatConfig struct {
	ReplyDelayMS int    `mapstructure:"reply_delay_ms"`
	CannedReply  string `mapstructure:"canned_reply"`
}

// StoreConfig holds domain-store configuration
type StoreConfig struct {
	SeedDemoData bool `mapstructure:"seed_demo_data"`
}

// LoginDelay returns the simulated login round-trip duration
func (c *Config) LoginDelay() time.Duration {
	return time.Duration(c.Session.LoginDelayMS) * time.Millisecond
}

// ReplyDelay returns the simulated staff-reply duration
func (c *Config) ReplyDelay() time.Duration {
	return time.Duration(c.Chat.ReplyDelayMS) * time.Millisecond
}

// TokenTTL returns the mock session token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Session.TokenTTLSeconds) * time.Second
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/clinic-portal")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideWithEnv(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns a configuration with all defaults applied and no file
// or environment lookup; tests and embedders use this directly.
func Default() *Config {
	return &Config{
		Clinic: ClinicConfig{
			Name: "Nudah Clinic",
		},
		Session: SessionConfig{
			LoginDelayMS:    1500,
			TokenTTLSeconds: 3600,
			JWTSecret:       "portal-demo-secret",
		},
		Chat: ChatConfig{
			ReplyDelayMS: 2000,
			CannedReply:  "Thank you for your message. A member of our team will get back to you shortly.",
		},
		Store: StoreConfig{
			SeedDemoData: true,
		},
		LogLevel: "info",
	}
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("clinic.name", "Nudah Clinic")

	// Simulated round-trip delays
	viper.SetDefault("session.login_delay_ms", 1500)
	viper.SetDefault("session.token_ttl_seconds", 3600)
	viper.SetDefault("session.jwt_secret", "portal-demo-secret")

	viper.SetDefault("chat.reply_delay_ms", 2000)
	viper.SetDefault("chat.canned_reply", "Thank you for your message. A member of our team will get back to you shortly.")

	viper.SetDefault("store.seed_demo_data", true)

	viper.SetDefault("log_level", "info")
}

// overrideWithEnv overrides configuration with environment variables
func overrideWithEnv(config *Config) {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}

	if secret := os.Getenv("PORTAL_JWT_SECRET"); secret != "" {
		config.Session.JWTSecret = secret
	}

	if delay := os.Getenv("PORTAL_LOGIN_DELAY_MS"); delay != "" {
		if d, err := strconv.Atoi(delay); err == nil {
			config.Session.LoginDelayMS = d
		}
	}

	if delay := os.Getenv("PORTAL_REPLY_DELAY_MS"); delay != "" {
		if d, err := strconv.Atoi(delay); err == nil {
			config.Chat.ReplyDelayMS = d
		}
	}
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Session.JWTSecret == "" {
		return fmt.Errorf("session JWT secret is required")
	}

	if config.Session.LoginDelayMS < 0 {
		return fmt.Errorf("invalid login delay: %d", config.Session.LoginDelayMS)
	}

	if config.Chat.ReplyDelayMS < 0 {
		return fmt.Errorf("invalid reply delay: %d", config.Chat.ReplyDelayMS)
	}

	if config.Chat.CannedReply == "" {
		return fmt.Errorf("chat canned reply is required")
	}

	return nil
}
