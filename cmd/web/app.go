package main

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/studiocedro/site/internal/config"
	"github.com/studiocedro/site/internal/handlers"
	"github.com/studiocedro/site/internal/i18n"
	"github.com/studiocedro/site/internal/media"
	mw "github.com/studiocedro/site/internal/middleware"
	"github.com/studiocedro/site/internal/observability"
	"github.com/studiocedro/site/internal/site"
)

const mediaURLPrefix = "/media"

// app wires configuration, the media library, copy, and templates together.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	library   *media.Library
	bundle    *i18n.Bundle
	renderer  *renderer
	analytics handlers.Analytics

	contentMu sync.Mutex
	content   *site.Content
}

func newLibrary(cfg config.Config, logger *zap.Logger) (*media.Library, error) {
	src, err := media.NewDirSource(cfg.Media.Dir, mediaURLPrefix, cfg.Media.ImagePattern, cfg.Media.VideoPattern)
	if err != nil {
		return nil, fmt.Errorf("media source: %w", err)
	}
	return media.NewLibrary(src, logger)
}

func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	lib, err := newLibrary(cfg, logger)
	if err != nil {
		return nil, err
	}
	bundle, err := i18n.Load(cfg.Site.LocalesDir, cfg.Site.DefaultLang, []string{"pt", "en"})
	if err != nil {
		return nil, err
	}
	content, err := site.LoadContent(cfg.Site.ContentFile)
	if err != nil {
		return nil, err
	}
	rnd, err := newRenderer(cfg.Site.TemplatesDir, cfg.Site.Dev, bundle)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:       cfg,
		logger:    logger,
		library:   lib,
		bundle:    bundle,
		renderer:  rnd,
		analytics: handlers.AnalyticsFromConfig(cfg.Analytics),
		content:   content,
	}, nil
}

// siteContent returns the page copy, re-reading the file in dev mode.
func (a *app) siteContent() *site.Content {
	a.contentMu.Lock()
	defer a.contentMu.Unlock()
	if a.cfg.Site.Dev {
		c, err := site.LoadContent(a.cfg.Site.ContentFile)
		if err != nil {
			a.logger.Warn("content reload failed", zap.Error(err))
		} else {
			a.content = c
		}
	}
	return a.content
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	r.Use(middleware.RealIP)
	r.Use(observability.RequestLogger(a.logger))
	r.Use(observability.Recovery(a.logger))
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", mw.Static(filepath.Join(a.cfg.Site.PublicDir, "assets"), "/assets"))
	r.Handle(mediaURLPrefix+"/*", mw.Static(a.cfg.Media.Dir, mediaURLPrefix, mw.WithMaxAge(24*time.Hour)))

	r.Group(func(r chi.Router) {
		r.Use(mw.HTMX)
		r.Use(mw.Locale(a.bundle))
		r.Use(mw.CSRF(a.cfg.Server.CookieSecure))

		r.Get("/", a.homeHandler)
		r.Get("/lightbox", a.lightboxHandler)
		r.Post("/preferences/theme", a.themeHandler)
		r.Post("/sections/active", a.sectionsHandler)
	})
	return r
}
