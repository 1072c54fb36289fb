package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/neuroguard/bioapi/pkg/acquisition"
	"github.com/neuroguard/bioapi/pkg/analysis"
	"github.com/neuroguard/bioapi/pkg/api"
	"github.com/neuroguard/bioapi/pkg/api/middleware"
	"github.com/neuroguard/bioapi/pkg/biosignal"
	"github.com/neuroguard/bioapi/pkg/common/config"
	"github.com/neuroguard/bioapi/pkg/common/logger"
	"github.com/neuroguard/bioapi/pkg/ledger"
	"github.com/neuroguard/bioapi/pkg/observability/metrics"
)

func main() {
	_ = godotenv.Load() // allow .env for local runs
	logger.Init()
	cfg := config.Load()

	// Probe the serial feed once at startup. Failure is not fatal: the API
	// serves generated data until the process restarts.
	adapter := acquisition.NewAdapter(cfg.SerialPort, acquisition.OpenSerial)
	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	if err := adapter.Initialize(initCtx); err != nil {
		logger.Log.WithError(err).WithField("device", cfg.SerialPort).Warn("serial feed unavailable, running in mock data mode")
	}
	cancelInit()

	rules, err := analysis.LoadRules(cfg.AnalysisRulesPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load analysis rules")
	}
	engine, err := analysis.NewEngine(rules)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to build analysis engine")
	}

	generator := biosignal.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	status := ledger.NewStatusService(rand.New(rand.NewSource(time.Now().UnixNano())))

	handler := api.NewHandler(adapter, generator, engine, status, cfg.AnalysisDelay)
	metrics.RegisterAcquisitionGauge(adapter.Active)

	router := mux.NewRouter()

	// Middleware
	router.Use(middleware.Logging)
	router.Use(middleware.Recovery)
	router.Use(middleware.CORS)
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.Use(middleware.BodyLimit(cfg.MaxRequestBody))

	// Health checks and metrics
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)
	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready"}`))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// API routes
	handler.Register(router)

	address := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	server := &http.Server{
		Addr:         address,
		Handler:      metrics.InstrumentHandler(router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"addr":   address,
			"device": cfg.SerialPort,
			"serial": adapter.Active(),
		}).Info("NeuroGuard bio-API started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down bio-API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}
	if err := adapter.Close(); err != nil {
		logger.Log.WithError(err).Warn("failed to close serial port")
	}

	logger.Log.Info("bio-API stopped")
}
