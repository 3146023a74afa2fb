package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mindfullearner/internal/config"
	"mindfullearner/internal/crypto"
	"mindfullearner/internal/db"
	"mindfullearner/internal/logger"
	"mindfullearner/internal/server"
	"mindfullearner/internal/services"
	"mindfullearner/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Mode, cfg.Log.Level)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.RunMigrations(ctx, conn); err != nil {
		return err
	}
	if cfg.Storage.Seed {
		if err := db.NewSeeder(conn, log).Seed(ctx); err != nil {
			return err
		}
	}

	var key []byte
	if cfg.App.EncryptionKey != "" {
		if key, err = crypto.ParseKey(cfg.App.EncryptionKey); err != nil {
			return fmt.Errorf("encryption key: %w", err)
		}
	}
	encSvc, err := services.NewEncryptionService(key)
	if err != nil {
		return err
	}
	if !encSvc.Enabled() {
		log.Warn("APP_ENCRYPTION_KEY not set; journal text is stored in plain text")
	}

	router := server.NewRouter(store.New(conn, log), encSvc, server.Options{
		JWTSecret:         []byte(cfg.Auth.JWTSecret),
		TokenTTL:          cfg.Auth.TokenTTL,
		AllowUserIDHeader: cfg.Auth.AllowUserIDHeader,
		CORSOrigins:       cfg.Server.CORSOrigins,
		MetricsEnabled:    cfg.Metrics.Enabled,
	}, log)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting",
			zap.String("addr", cfg.Server.Address),
			zap.String("driver", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
