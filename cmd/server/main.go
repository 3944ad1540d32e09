package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/cache"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/config"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/repository/mongodb"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/repository/sheets"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/scheduler"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/server/handlers"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/server/router"
	authsvc "github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/service/auth"
	catalogsvc "github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/service/catalog"
	ordersvc "github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/service/order"
	gmailclient "github.com/Dhruvsinh6969/Trade-Order-Sheet/pkg/clients/gmail"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
	if err != nil {
		baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
	}

	tableCache := cache.New(sheetsRepo, cfg.Cache.TTL, baseLogger.Named("cache.tables"))

	// Mirror submitted orders into MongoDB when configured; the spreadsheet
	// ledger stays authoritative either way.
	var archive mongodb.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archive = mongoRepo
	} else {
		baseLogger.Warn("mongodb uri missing, order archive disabled")
	}

	var mailer gmailclient.Client
	if cfg.Gmail.AccessToken != "" {
		mailer = gmailclient.NewClient(cfg.Gmail)
		baseLogger.Info("gmail alert client enabled")
	} else {
		baseLogger.Warn("gmail access token missing, excess order alerts disabled")
	}

	catalogService := catalogsvc.NewService(tableCache, baseLogger.Named("svc.catalog"))
	authService := authsvc.NewService(tableCache, baseLogger.Named("svc.auth"))
	orderService := ordersvc.NewService(catalogService, sheetsRepo, archive, mailer, baseLogger.Named("svc.order"))

	authHandler := handlers.NewAuthHandler(authService, baseLogger.Named("handlers.auth"))
	referenceHandler := handlers.NewReferenceHandler(catalogService, tableCache, baseLogger.Named("handlers.reference"))
	orderHandler := handlers.NewOrderHandler(orderService, baseLogger.Named("handlers.order"))
	engine := router.New(authHandler, referenceHandler, orderHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, tableCache, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
