package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_FILE", "")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Errorf("default port: want 5000, got %s", cfg.Port)
	}
	if cfg.DBDSN != "mywallet.db" {
		t.Errorf("default dsn: want mywallet.db, got %s", cfg.DBDSN)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "/tmp/wallet.db")
	t.Setenv("LOG_FILE", "/tmp/wallet.log")

	cfg := Load()
	if cfg.Port != "9999" || cfg.DBDSN != "/tmp/wallet.db" || cfg.LogFile != "/tmp/wallet.log" {
		t.Errorf("env not honored: %+v", cfg)
	}
}
