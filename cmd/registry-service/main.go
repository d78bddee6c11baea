package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/paec-registry/platform/pkg/audit"
	"github.com/paec-registry/platform/pkg/common/config"
	"github.com/paec-registry/platform/pkg/common/database"
	"github.com/paec-registry/platform/pkg/common/kafka"
	"github.com/paec-registry/platform/pkg/common/logger"
	"github.com/paec-registry/platform/pkg/exchange"
	"github.com/paec-registry/platform/pkg/records"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.Fatalf("postgres connection failed: %v", err)
	}

	recordRepo := records.NewRepository(db)
	if err := recordRepo.Migrate(); err != nil {
		logger.Log.Fatalf("records migration failed: %v", err)
	}
	auditRepo := audit.NewRepository(db)
	if err := auditRepo.Migrate(); err != nil {
		logger.Log.Fatalf("audit migration failed: %v", err)
	}

	rdb := database.GetRedis()
	producer := kafka.NewProducer(cfg.AuditKafkaTopic)

	auditSvc := audit.NewService(auditRepo, producer)
	recordSvc := records.NewService(recordRepo, auditSvc)
	exchangeSvc := exchange.NewService(recordRepo, auditSvc,
		exchange.NewRedisSummaryCache(rdb, cfg.ImportSummaryTTL),
		exchange.Options{
			MaxImportRows:    cfg.ImportMaxRows,
			MaxExportRecords: cfg.ExportMaxRecords,
		})

	router := mux.NewRouter()
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	router.HandleFunc("/ready", readyHandler(db)).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	records.NewHandler(recordSvc).Register(api)
	audit.NewHandler(auditSvc).Register(api)
	exchange.NewHandler(exchangeSvc).Register(api)

	srv := &http.Server{
		Addr:         cfg.ServerHost + ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("registry service listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorf("server shutdown: %v", err)
	}
	if err := producer.Close(); err != nil {
		logger.Log.Errorf("kafka close: %v", err)
	}
	if err := database.CloseRedis(); err != nil {
		logger.Log.Errorf("redis close: %v", err)
	}
	if err := database.ClosePostgres(); err != nil {
		logger.Log.Errorf("postgres close: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func readyHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}
}
