package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile      = ".env"
	defaultPort         = "8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultTemplatesDir = "templates"
	defaultPublicDir    = "public"
	defaultMediaDir     = "projetos"
	defaultContentFile  = "content/site.yaml"
	defaultLocalesDir   = "locales"
	defaultLang         = "pt"
	defaultPreviewLimit = 8
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Media     MediaConfig
	Analytics AnalyticsConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CookieSecure bool
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string { return ":" + s.Port }

// SiteConfig locates templates, static assets, copy, and translations.
type SiteConfig struct {
	Dev          bool
	TemplatesDir string
	PublicDir    string
	ContentFile  string
	LocalesDir   string
	DefaultLang  string
	BaseURL      string
	LogLevel     string
}

// MediaConfig controls the portfolio catalog.
type MediaConfig struct {
	Dir          string
	ImagePattern string
	VideoPattern string
	Watch        bool
	PreviewLimit int
}

// AnalyticsConfig holds client instrumentation ids surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, .env overrides, and environment variables.
func Load(_ context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	// Cloud Run style PORT is honoured when the site-specific key is absent.
	port := stringWithDefault(lookup, "SITE_SERVER_PORT", "")
	if port == "" {
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  durationWithDefault(lookup, "SITE_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "SITE_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "SITE_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
			CookieSecure: boolWithDefault(lookup, "SITE_COOKIE_SECURE", false),
		},
		Site: SiteConfig{
			Dev:          boolWithDefault(lookup, "SITE_DEV", false),
			TemplatesDir: stringWithDefault(lookup, "SITE_TEMPLATES_DIR", defaultTemplatesDir),
			PublicDir:    stringWithDefault(lookup, "SITE_PUBLIC_DIR", defaultPublicDir),
			ContentFile:  stringWithDefault(lookup, "SITE_CONTENT_FILE", defaultContentFile),
			LocalesDir:   stringWithDefault(lookup, "SITE_LOCALES_DIR", defaultLocalesDir),
			DefaultLang:  strings.ToLower(stringWithDefault(lookup, "SITE_DEFAULT_LANG", defaultLang)),
			BaseURL:      strings.TrimRight(stringWithDefault(lookup, "SITE_BASE_URL", ""), "/"),
			LogLevel:     stringWithDefault(lookup, "LOG_LEVEL", "info"),
		},
		Media: MediaConfig{
			Dir:          stringWithDefault(lookup, "SITE_MEDIA_DIR", defaultMediaDir),
			ImagePattern: stringWithDefault(lookup, "SITE_MEDIA_IMAGE_PATTERN", ""),
			VideoPattern: stringWithDefault(lookup, "SITE_MEDIA_VIDEO_PATTERN", ""),
			Watch:        boolWithDefault(lookup, "SITE_WATCH_MEDIA", false),
			PreviewLimit: intWithDefault(lookup, "SITE_PREVIEW_LIMIT", defaultPreviewLimit),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: stringWithDefault(lookup, "SITE_GA_MEASUREMENT_ID", ""),
			GTMContainerID:   stringWithDefault(lookup, "SITE_GTM_CONTAINER_ID", ""),
		},
	}

	// Watching only makes sense while developing.
	if !cfg.Site.Dev {
		cfg.Media.Watch = false
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		missing = append(missing, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		missing = append(missing, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		missing = append(missing, "Server.WriteTimeout")
	}
	if strings.TrimSpace(cfg.Site.TemplatesDir) == "" {
		missing = append(missing, "Site.TemplatesDir")
	}
	if strings.TrimSpace(cfg.Site.ContentFile) == "" {
		missing = append(missing, "Site.ContentFile")
	}
	if cfg.Media.PreviewLimit <= 0 {
		missing = append(missing, "Media.PreviewLimit")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
