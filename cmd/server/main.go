package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hirewire/hirewire/internal/ai"
	"github.com/hirewire/hirewire/internal/api"
	"github.com/hirewire/hirewire/internal/app"
	"github.com/hirewire/hirewire/internal/realtime"
	"github.com/hirewire/hirewire/internal/services"
	"github.com/hirewire/hirewire/internal/store"
	"github.com/hirewire/hirewire/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("hirewire-server", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)

	var configPath string
	fs.StringVar(&configPath, "config", "", "Path to configuration directory or file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadApplicationConfig(configPath)
	if err != nil {
		return err
	}

	if err := app.ConfigureLogging(cfg.Server.LogLevel); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer logger.Sync() // best effort

	log := logger.WithModule("bootstrap")

	st, err := store.New(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("initialise record store: %w", err)
	}
	log.Info("record store ready", zap.String("dir", st.Dir()))

	hub := realtime.NewHub()

	interviewer, err := ai.NewInterviewer(ctx, ai.Config{
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout,
	})
	if err != nil {
		return fmt.Errorf("initialise interviewer: %w", err)
	}

	notificationSvc, err := services.NewNotificationService(st, hub)
	if err != nil {
		return fmt.Errorf("initialise notification service: %w", err)
	}
	authSvc, err := services.NewAuthService(st)
	if err != nil {
		return fmt.Errorf("initialise auth service: %w", err)
	}
	profileSvc, err := services.NewProfileService(st)
	if err != nil {
		return fmt.Errorf("initialise profile service: %w", err)
	}
	jobSvc, err := services.NewJobService(st, notificationSvc)
	if err != nil {
		return fmt.Errorf("initialise job service: %w", err)
	}
	applicationSvc, err := services.NewApplicationService(st, notificationSvc, profileSvc)
	if err != nil {
		return fmt.Errorf("initialise application service: %w", err)
	}
	interviewSvc, err := services.NewInterviewService(st, notificationSvc, interviewer)
	if err != nil {
		return fmt.Errorf("initialise interview service: %w", err)
	}
	matchSvc, err := services.NewMatchService(st, profileSvc)
	if err != nil {
		return fmt.Errorf("initialise match service: %w", err)
	}
	analyticsSvc, err := services.NewAnalyticsService(st)
	if err != nil {
		return fmt.Errorf("initialise analytics service: %w", err)
	}

	router, err := api.NewRouter(api.Dependencies{
		Config:        cfg,
		Store:         st,
		Hub:           hub,
		Auth:          authSvc,
		Jobs:          jobSvc,
		Applications:  applicationSvc,
		Profiles:      profileSvc,
		Interviews:    interviewSvc,
		Notifications: notificationSvc,
		Match:         matchSvc,
		Analytics:     analyticsSvc,
	})
	if err != nil {
		return fmt.Errorf("build api router: %w", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	if err, ok := <-serverErr; ok && err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}

func loadApplicationConfig(path string) (*app.Config, error) {
	switch {
	case strings.TrimSpace(path) == "":
		return app.LoadConfig()
	default:
		info, err := os.Stat(path)
		if err == nil {
			if info.IsDir() {
				return app.LoadConfig(path)
			}
			return app.LoadConfig(filepath.Dir(path))
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config path %q does not exist", path)
		}
		return nil, fmt.Errorf("stat config path: %w", err)
	}
}
