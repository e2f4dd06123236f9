// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token   string `yaml:"token" env:"TELEGRAM_TOKEN"`
	Workers int    `yaml:"workers"` // polling workers
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
}

type ShopConfig struct {
	BaseURL  string `yaml:"base_url"`
	ClientID string `yaml:"client_id" env:"SHOP_CLIENT_ID"`
}

type OpsConfig struct {
	Port int `yaml:"port"`
}

type Config struct {
	Bot   BotConfig   `yaml:"bot"`
	Log   LogConfig   `yaml:"log"`
	Redis RedisConfig `yaml:"redis"`
	Shop  ShopConfig  `yaml:"shop"`
	Ops   OpsConfig   `yaml:"ops"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the YAML file at path and applies env overrides for
// secrets (TELEGRAM_TOKEN, SHOP_CLIENT_ID, REDIS_PASSWORD).
func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	// defaults
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 8
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Shop.BaseURL == "" {
		cfg.Shop.BaseURL = "https://api.moltin.com"
	}
	if cfg.Ops.Port <= 0 {
		cfg.Ops.Port = 9090
	}

	// Minimal validation
	if cfg.Bot.Token == "" {
		return nil, errors.New("bot.token is required")
	}
	if cfg.Redis.URL == "" {
		return nil, errors.New("redis.url is required")
	}
	if cfg.Shop.ClientID == "" {
		return nil, errors.New("shop.client_id is required")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
