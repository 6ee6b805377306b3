package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SecretKey.Access = "access-secret"

	applyDefaults(cfg)

	if cfg.SecretKey.Refresh != "access-secret" {
		t.Fatalf("refresh secret = %q, want fallback to access secret", cfg.SecretKey.Refresh)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("access ttl = %s, want %s", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("refresh ttl = %s, want %s", cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("body size = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.RateLimit.Window != time.Minute || cfg.RateLimit.Limit != defaultRateLimit {
		t.Fatalf("rate limit defaults not applied: %+v", cfg.RateLimit)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Postgres: &postgres.DBConn{}}
		cfg.SecretKey.Access = "secret"
		applyDefaults(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing access secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = " " }, wantErr: true},
		{name: "missing postgres", mutate: func(cfg *Config) { cfg.Postgres = nil }, wantErr: true},
		{name: "bcrypt cost too high", mutate: func(cfg *Config) { cfg.Auth.BcryptCost = 40 }, wantErr: true},
		{
			name: "rate limit without redis",
			mutate: func(cfg *Config) {
				cfg.RateLimit.Enabled = true
				cfg.RateLimit.Addr = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte("auth:\n  accessTokenTTL: 30m\n  bcryptCost: 10\nsecretKey:\n  access: from-file\n")
	if err := os.WriteFile(filepath.Join(dir, "market.yaml"), yamlContent, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Chdir(dir)
	t.Setenv("AUTH_ACCESSTOKENTTL", "5m")
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := LoadWithEnv[Config]("market")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.Auth.AccessTokenTTL != 5*time.Minute {
		t.Fatalf("access ttl = %s, want 5m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("bcrypt cost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.SecretKey.Access != "from-env" {
		t.Fatalf("access secret = %q, want from-env", cfg.SecretKey.Access)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("MARKET_DOTENV_PROBE=loaded\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("MARKET_DOTENV_PROBE", "")
	os.Unsetenv("MARKET_DOTENV_PROBE")

	if err := loadDotEnv(filepath.Join(dir, "missing.env"), envFile); err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}
	if got := os.Getenv("MARKET_DOTENV_PROBE"); got != "loaded" {
		t.Fatalf("MARKET_DOTENV_PROBE = %q, want loaded", got)
	}
}
