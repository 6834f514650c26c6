package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Errorf("unexpected addr %s", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Site.DefaultLang != "pt" {
		t.Errorf("expected default lang pt, got %s", cfg.Site.DefaultLang)
	}
	if cfg.Media.Dir != "projetos" {
		t.Errorf("unexpected media dir %s", cfg.Media.Dir)
	}
	if cfg.Media.PreviewLimit != 8 {
		t.Errorf("expected preview limit 8, got %d", cfg.Media.PreviewLimit)
	}
	if cfg.Site.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.Site.LogLevel)
	}
	if cfg.Site.Dev || cfg.Media.Watch {
		t.Errorf("dev and watch must default to false")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"SITE_SERVER_PORT":          "9090",
		"SITE_SERVER_READ_TIMEOUT":  "20s",
		"SITE_SERVER_WRITE_TIMEOUT": "25s",
		"SITE_SERVER_IDLE_TIMEOUT":  "2m",
		"SITE_COOKIE_SECURE":        "true",
		"SITE_DEV":                  "1",
		"SITE_WATCH_MEDIA":          "yes",
		"SITE_MEDIA_DIR":            "/srv/media",
		"SITE_PREVIEW_LIMIT":        "12",
		"SITE_DEFAULT_LANG":         "EN",
		"SITE_BASE_URL":             "https://studiocedro.example/",
		"SITE_GA_MEASUREMENT_ID":    "G-TEST",
	}

	cfg, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Server.IdleTimeout != 2*time.Minute {
		t.Errorf("unexpected idle timeout %s", cfg.Server.IdleTimeout)
	}
	if !cfg.Server.CookieSecure {
		t.Errorf("expected secure cookies")
	}
	if !cfg.Site.Dev || !cfg.Media.Watch {
		t.Errorf("expected dev and watch enabled")
	}
	if cfg.Media.Dir != "/srv/media" || cfg.Media.PreviewLimit != 12 {
		t.Errorf("unexpected media config %+v", cfg.Media)
	}
	if cfg.Site.DefaultLang != "en" {
		t.Errorf("expected lowercase lang, got %s", cfg.Site.DefaultLang)
	}
	if cfg.Site.BaseURL != "https://studiocedro.example" {
		t.Errorf("unexpected base url %s", cfg.Site.BaseURL)
	}
	if cfg.Analytics.GA4MeasurementID != "G-TEST" {
		t.Errorf("unexpected analytics %+v", cfg.Analytics)
	}
}

func TestLoadFallsBackToPORT(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Server.Port)
	}
}

func TestWatchRequiresDev(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{"SITE_WATCH_MEDIA": "true"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Media.Watch {
		t.Errorf("watch must stay off outside dev mode")
	}
}

func TestLoadValidationError(t *testing.T) {
	env := map[string]string{
		"SITE_SERVER_PORT":   "http",
		"SITE_PREVIEW_LIMIT": "0",
	}
	_, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := vErr.Fields()
	if len(fields) != 2 || fields[0] != "Server.Port" || fields[1] != "Media.PreviewLimit" {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nexport SITE_SERVER_PORT=7070\nSITE_MEDIA_DIR=\"media\"\nbogus\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(context.Background(), WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{"SITE_MEDIA_DIR": "override"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("expected port from .env, got %s", cfg.Server.Port)
	}
	if cfg.Media.Dir != "override" {
		t.Errorf("explicit map must win over .env, got %s", cfg.Media.Dir)
	}
}
