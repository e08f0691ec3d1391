package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/markdown"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/ui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Single-page developer portfolio server",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("content", "", "portfolio fixture, defaults to the embedded one")

	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		v, err := config.New(configFile)
		if err != nil {
			return nil, err
		}
		if err := bindFlags(v, cmd, map[string]string{
			"content_path": "content",
			"port":         "port",
		}); err != nil {
			return nil, err
		}
		return config.Load(v)
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
	serve.Flags().String("port", "", "listen port (overrides PORT)")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Load and check the portfolio fixture",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			p, err := content.Load(cfg.ContentPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d projects, %d skills in %d categories, %d experience, %d education\n",
				len(p.Projects), len(p.Skills), len(p.Categories()), len(p.Experience), len(p.Education))
			return nil
		},
	}

	root.AddCommand(serve, validate)
	// Running the binary without a subcommand serves.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

// bindFlags maps config keys onto flags that were set explicitly.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	portfolio, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	logger.Info("portfolio loaded",
		"projects", len(portfolio.Projects),
		"skills", len(portfolio.Skills),
	)

	md, err := markdown.New(0)
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	visits, err := analytics.Open(startCtx, cfg.AnalyticsDSN)
	if err != nil {
		return err
	}
	defer visits.Close()
	logger.Info("visitor tracking enabled with hashed IP addresses", "dsn", cfg.AnalyticsDSN)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(registry)
	if err != nil {
		return err
	}

	token, err := analytics.RandomToken()
	if err != nil {
		return err
	}

	mailer := contact.New(cfg.SMTP)
	if !cfg.SMTP.Enabled() {
		logger.Warn("SMTP credentials not configured, contact form is inert")
	}
	if cfg.AdminEnabled() {
		logger.Info("admin access available", "path", "/admin/login")
	}

	a := &app{
		cfg:        cfg,
		portfolio:  portfolio,
		md:         md,
		mailer:     mailer,
		visits:     visits,
		metrics:    m,
		clock:      ui.SystemClock(),
		logger:     logger,
		adminToken: token,
		version:    version,
	}
	router, err := newRouter(a, registry)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the typing stream stays open for as long as it types.
		IdleTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.cleanupLoop(ctx, 24*time.Hour)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
	return nil
}

// cleanupLoop purges visits past the retention window once at startup and
// then on every interval.
func (a *app) cleanupLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		a.cleanupVisits(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (a *app) cleanupVisits(ctx context.Context) int64 {
	n, err := a.visits.Cleanup(ctx, analytics.Retention)
	if err != nil {
		a.logger.Error("error cleaning up old visitor data", "error", err)
		return 0
	}
	if n > 0 {
		a.logger.Info("privacy cleanup removed old visitor records", "rows", n)
	}
	return n
}
