package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studiocedro/site/internal/config"
	"github.com/studiocedro/site/internal/observability"
)

var version = "dev"

// overrides holds command-line flags that take precedence over config.
type overrides struct {
	envFile   string
	port      string
	templates string
	public    string
	media     string
	content   string
	dev       bool
}

func main() {
	var o overrides

	rootCmd := &cobra.Command{
		Use:           "web",
		Short:         "Studio Cedro portfolio site",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, o)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.envFile, "env-file", ".env", "dotenv file with local overrides")
	flags.StringVar(&o.port, "port", "", "HTTP listen port")
	flags.StringVar(&o.templates, "templates", "", "templates directory")
	flags.StringVar(&o.public, "public", "", "public assets directory")
	flags.StringVar(&o.media, "media", "", "portfolio media directory")
	flags.StringVar(&o.content, "content", "", "site content file")
	flags.BoolVar(&o.dev, "dev", false, "reparse templates per request and watch media")

	rootCmd.AddCommand(serveCmd(&o), catalogCmd(&o))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd(o *overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, *o)
		},
	}
}

func catalogCmd(o *overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the media catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *o)
			if err != nil {
				return err
			}
			lib, err := newLibrary(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(lib.Catalog().Items())
		},
	}
}

func loadConfig(cmd *cobra.Command, o overrides) (config.Config, error) {
	cfg, err := config.Load(cmd.Context(), config.WithEnvFile(o.envFile))
	if err != nil {
		return config.Config{}, err
	}
	if o.port != "" {
		cfg.Server.Port = o.port
	}
	if o.templates != "" {
		cfg.Site.TemplatesDir = o.templates
	}
	if o.public != "" {
		cfg.Site.PublicDir = o.public
	}
	if o.media != "" {
		cfg.Media.Dir = o.media
	}
	if o.content != "" {
		cfg.Site.ContentFile = o.content
	}
	if cmd.Flags().Changed("dev") {
		cfg.Site.Dev = o.dev
		cfg.Media.Watch = o.dev
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, o overrides) error {
	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Site.LogLevel, cfg.Site.Dev)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error("failed to initialise site", zap.Error(err))
		return err
	}

	if cfg.Media.Watch {
		go func() {
			if err := a.library.Watch(ctx, cfg.Media.Dir); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("media watch stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", srv.Addr),
			zap.Bool("dev", cfg.Site.Dev),
			zap.Int("media_items", a.library.Catalog().Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
