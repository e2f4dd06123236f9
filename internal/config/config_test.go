// File: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validYAML = `
bot:
  token: "123:abc"
redis:
  url: "localhost:6379"
shop:
  client_id: "client-abc"
`

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML), true)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bot.Workers != 8 {
		t.Errorf("workers = %d", cfg.Bot.Workers)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Shop.BaseURL != "https://api.moltin.com" {
		t.Errorf("base url = %q", cfg.Shop.BaseURL)
	}
	if cfg.Ops.Port != 9090 {
		t.Errorf("ops port = %d", cfg.Ops.Port)
	}
	if !cfg.Runtime.Dev {
		t.Error("dev flag not recorded")
	}
}

func TestLoadConfig_ExplicitValuesWin(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
bot:
  token: "123:abc"
  workers: 2
log:
  level: debug
  format: console
redis:
  url: "localhost:6379"
  db: 3
shop:
  client_id: "client-abc"
  base_url: "https://shop.internal"
ops:
  port: 8081
`), false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bot.Workers != 2 || cfg.Log.Level != "debug" || cfg.Redis.DB != 3 {
		t.Errorf("explicit values overridden: %+v", cfg)
	}
	if cfg.Shop.BaseURL != "https://shop.internal" || cfg.Ops.Port != 8081 {
		t.Errorf("explicit values overridden: %+v", cfg)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("SHOP_CLIENT_ID", "env-client")
	t.Setenv("REDIS_PASSWORD", "env-pass")

	cfg, err := LoadConfig(writeConfig(t, validYAML), false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bot.Token != "env-token" {
		t.Errorf("token = %q", cfg.Bot.Token)
	}
	if cfg.Shop.ClientID != "env-client" {
		t.Errorf("client id = %q", cfg.Shop.ClientID)
	}
	if cfg.Redis.Password != "env-pass" {
		t.Errorf("redis password = %q", cfg.Redis.Password)
	}
}

func TestLoadConfig_ValidatesRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing token", `
redis:
  url: "localhost:6379"
shop:
  client_id: "client-abc"
`},
		{"missing redis url", `
bot:
  token: "123:abc"
shop:
  client_id: "client-abc"
`},
		{"missing client id", `
bot:
  token: "123:abc"
redis:
  url: "localhost:6379"
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tc.yaml), false); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false); err == nil {
		t.Error("expected an error for a missing file")
	}
}
