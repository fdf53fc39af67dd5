package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sumire/portfolio-cms/internal/config"
	"github.com/sumire/portfolio-cms/internal/handler"
	"github.com/sumire/portfolio-cms/internal/repository"
	"github.com/sumire/portfolio-cms/internal/service"
	"github.com/sumire/portfolio-cms/internal/upload"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := repository.Open(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	slog.Info("store opened", "path", cfg.DataFile)

	saver, err := upload.NewSaver(cfg.UploadsDir, cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("prepare upload directories: %w", err)
	}

	authSvc := service.NewAuthService(
		service.BcryptVerifier{
			Username:     cfg.AdminUsername,
			PasswordHash: cfg.AdminPasswordHash,
		},
		service.AuthConfig{
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.TokenTTL,
		},
	)
	contentSvc := service.NewContentService(store)

	e := newServer(cfg, authSvc, contentSvc, saver)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		errCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

func newServer(cfg config.Config, authSvc *service.AuthService, contentSvc *service.ContentService, saver *upload.Saver) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewAppValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(handler.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.CORSWithConfig(corsConfig(cfg)))

	// Uploaded images and the CV are served straight from their directories.
	e.Static("/uploads", cfg.UploadsDir)
	e.Static("/assets", cfg.AssetsDir)

	handler.Register(e, authSvc, contentSvc, saver)

	return e
}

func corsConfig(cfg config.Config) middleware.CORSConfig {
	origins := []string{
		"http://127.0.0.1:5500",
		"http://localhost:5500",
	}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}

	corsCfg := middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}

	// Local development talks to the API from arbitrary ports.
	if cfg.Development() {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowOriginFunc = func(string) (bool, error) { return true, nil }
	}

	return corsCfg
}
