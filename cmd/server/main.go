// @title        Document Dashboard API
// @version      1.0
// @description  Folder and file browser backing the dashboard documents page.
// @BasePath     /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"dashboard/backend/internal/config"
	"dashboard/backend/internal/db"
	"dashboard/backend/internal/handler"
	apphttp "dashboard/backend/internal/http"
	"dashboard/backend/internal/notify"
	"dashboard/backend/internal/repository"
	"dashboard/backend/internal/scheduler"
	"dashboard/backend/internal/service"
	"dashboard/backend/pkg/logger"
	"dashboard/backend/pkg/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("server exited", "module", "main", "action", "run", "resource", "server", "result", "failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := snowflake.Init(cfg.NodeID); err != nil {
		return err
	}

	sqlDB, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDemo {
		seeded, err := db.SeedDemo(ctx, sqlDB, snowflake.NextID)
		if err != nil {
			return err
		}
		if seeded {
			logger.Info("demo documents seeded", "module", "main", "action", "seed", "resource", "document", "result", "ok")
		}
	}

	entryRepo := repository.NewEntryRepository(sqlDB)
	notifications := notify.NewBuffer(cfg.NotificationLimit)
	documentService := service.NewDocumentService(entryRepo, notifications, service.DocumentOptions{
		RootLabel:       cfg.RootLabel,
		CheckInvariants: cfg.CheckInvariants,
		NextID:          snowflake.NextID,
	})

	router := apphttp.NewRouter(
		handler.NewDocumentHandler(documentService),
		handler.NewNotificationHandler(notifications),
		apphttp.RouterOptions{
			StaticDir:     cfg.StaticDir,
			EnableSwagger: cfg.EnableSwagger,
			RateLimit:     cfg.RateLimit,
		},
	)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	sweeper := scheduler.New(documentService, cfg.SweepInterval, cfg.SessionTTL)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "module", "main", "action", "listen", "resource", "server", "result", "ok", "addr", cfg.Addr, "db", cfg.DBPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return sweeper.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
