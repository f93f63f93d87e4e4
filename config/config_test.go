package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAILGUN_API_KEY", "")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Errorf("default port = %q, want 5000", cfg.Port)
	}
	if cfg.MailgunAPIKey != "key-yourkeyhere" {
		t.Errorf("default mailgun key = %q", cfg.MailgunAPIKey)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "bistro")
	t.Setenv("DB_PASS", "s3cret")
	t.Setenv("ACCESS_TOKEN_SECRET", "topsecret")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.AccessTokenSecret != "topsecret" {
		t.Errorf("token secret = %q", cfg.AccessTokenSecret)
	}
	if got := cfg.MongoURI(); got == "" || got[:14] != "mongodb+srv://" {
		t.Errorf("unexpected mongo uri %q", got)
	}
}

func TestMongoURIOverride(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg := Load()
	if got := cfg.MongoURI(); got != "mongodb://localhost:27017" {
		t.Errorf("override uri = %q", got)
	}
}
