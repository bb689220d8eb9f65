package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/biasbuster/api/internal/auth"
	"github.com/biasbuster/api/internal/config"
	"github.com/biasbuster/api/internal/db"
	"github.com/biasbuster/api/internal/handlers"
	"github.com/biasbuster/api/internal/middleware"
	"github.com/biasbuster/api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	dbConn, err := db.Connect(cfg)
	if err != nil {
		slog.Error("db connect", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(context.Background(), dbConn, db.DialectPostgres); err != nil {
		slog.Error("db migrate", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	users := store.NewUserStore(dbConn)
	analyses := store.NewAnalysisStore(dbConn)

	h := handlers.NewHandler(users, analyses, tokens)
	authn := middleware.NewAuthenticator(tokens, users)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handlers.Routes(h, authn),
	}

	go func() {
		slog.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
