package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates runtime settings for the auction engine and its HTTP surface
type Config struct {
	ListenAddr     string        `mapstructure:"listen_addr"`
	DataDir        string        `mapstructure:"data_dir"`
	MinIncrement   int           `mapstructure:"min_increment"`
	BidCooldown    time.Duration `mapstructure:"bid_cooldown"`
	SnipeThreshold time.Duration `mapstructure:"snipe_threshold"`
	SnipeExtension time.Duration `mapstructure:"snipe_extension"`
	LogViewLimit   int           `mapstructure:"log_view_limit"`
	LosingDeposit  float64       `mapstructure:"losing_deposit"`
	AdminIDs       []string      `mapstructure:"admin_ids"`
}

// Load reads configuration from an optional dkp-auctioneer.yaml in the working
// directory, overridden by DKP_-prefixed environment variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("min_increment", 100)
	v.SetDefault("bid_cooldown", 30*time.Second)
	v.SetDefault("snipe_threshold", 5*time.Minute)
	v.SetDefault("snipe_extension", 5*time.Minute)
	v.SetDefault("log_view_limit", 10)
	v.SetDefault("losing_deposit", 0.0)
	v.SetDefault("admin_ids", []string{})

	v.SetConfigName("dkp-auctioneer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DKP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures the configuration contains sane values.
func (cfg *Config) Validate() error {
	if cfg.ListenAddr == "" {
		return fmt.Errorf("config: listen_addr is required")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	if cfg.MinIncrement < 0 {
		return fmt.Errorf("config: min_increment must not be negative")
	}
	if cfg.BidCooldown < 0 {
		return fmt.Errorf("config: bid_cooldown must not be negative")
	}
	if cfg.SnipeThreshold < 0 || cfg.SnipeExtension < 0 {
		return fmt.Errorf("config: snipe windows must not be negative")
	}
	if cfg.LogViewLimit <= 0 {
		return fmt.Errorf("config: log_view_limit must be positive")
	}
	if cfg.LosingDeposit < 0 || cfg.LosingDeposit > 1 {
		return fmt.Errorf("config: losing_deposit must be within [0, 1]")
	}
	return nil
}
