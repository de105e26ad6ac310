package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"covid-hospital-backend/internal/config"
	"covid-hospital-backend/internal/database"
	"covid-hospital-backend/internal/handler"
	"covid-hospital-backend/internal/importer"
	"covid-hospital-backend/internal/metrics"
	"covid-hospital-backend/internal/middleware"
	"covid-hospital-backend/internal/repository"
	"covid-hospital-backend/internal/repository/memory"
	"covid-hospital-backend/internal/router"
	"covid-hospital-backend/internal/service"
	"covid-hospital-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const serviceName = "covid-hospital-backend"

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Build the logger shared by every component
	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync(zlog)
	zlog.Info("Configuration loaded successfully")

	// 3. Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 4. Initialize storage and repositories
	var (
		hospitalRepo repository.HospitalRepository
		countRepo    repository.GlobalCountRepository
		pinger       handler.Pinger
	)
	switch cfg.Database.Driver {
	case "memory":
		zlog.Warn("Using in-memory storage, data is lost on restart")
		hospitalRepo = memory.NewHospitalRepository()
		countRepo = memory.NewGlobalCountRepository()
	default:
		db, err := database.Connect(cfg, zlog)
		if err != nil {
			zlog.Fatal("Database unavailable", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			zlog.Fatal("Database unavailable", zap.Error(err))
		}
		defer sqlDB.Close()
		pinger = sqlDB
		hospitalRepo = repository.NewHospitalRepo(db)
		countRepo = repository.NewGlobalCountRepo(db)
	}

	// 5. Initialize services
	hospitalService := service.NewHospitalService(hospitalRepo, importer.FileSource(cfg.Import.DataFile), m, zlog)
	countService := service.NewGlobalCountService(countRepo, cfg.Server.DefaultPageSize)

	// 6. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := router.New(cfg, router.Handlers{
		Hospital:    handler.NewHospitalHandler(hospitalService, middleware.NewValidator(), zlog),
		GlobalCount: handler.NewGlobalCountHandler(countService),
		Health:      handler.NewHealthHandler(pinger, serviceName),
	}, m, reg, zlog)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// 7. Serve until interrupted
	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited")
}
