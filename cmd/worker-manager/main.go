// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"support-match-workers/internal/common/aws"
	"support-match-workers/internal/common/camunda"
	"support-match-workers/internal/common/config"
	"support-match-workers/internal/common/database"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/common/observability"
	"support-match-workers/internal/common/validation"
	"support-match-workers/internal/matching"
	"support-match-workers/internal/store"
	"support-match-workers/pkg/registry"

	// Data Access Workers (1)
	so "support-match-workers/internal/workers/data-access/search-opportunities"

	// Matching Workers (3)
	cns "support-match-workers/internal/workers/matching/check-notification-sent"
	mo "support-match-workers/internal/workers/matching/match-opportunities"
	rsn "support-match-workers/internal/workers/matching/record-sent-notification"

	// Notification Workers (1)
	nmo "support-match-workers/internal/workers/notification/notify-matched-opportunities"

	// Content Workers (2)
	et "support-match-workers/internal/workers/content/export-template"
	ft "support-match-workers/internal/workers/content/format-template"
)

const version = "1.0.0"

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs, err := observability.New(cfg.App.Name, version)
	if err != nil {
		zapLog.Warn("otel metrics disabled", zap.Error(err))
		obs = observability.Noop()
	}

	ctx := context.Background()

	// --- Activity registry and input validation ---
	reg, err := registry.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		zapLog.Fatal("registry load failed", zap.Error(err))
	}
	if err := reg.Validate(); err != nil {
		zapLog.Fatal("registry invalid", zap.Error(err))
	}
	validator, err := validation.NewValidator(reg)
	if err != nil {
		zapLog.Fatal("schema compilation failed", zap.Error(err))
	}

	// --- Init Zeebe Client with retry ---
	zeebe, err := camunda.Connect(ctx, &camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: cfg.Camunda.UsePlaintext,
		ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
	}, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init AWS messaging ---
	messenger, err := aws.NewMessenger(ctx, cfg.Notifications.AWSRegion, cfg.Notifications.FromEmail, cfg.Notifications.SMSSenderID)
	if err != nil {
		zapLog.Fatal("aws config failed", zap.Error(err))
	}

	// --- Domain services ---
	prefs := store.NewCachedPreferenceStore(
		store.NewPreferenceStore(pg.DB),
		redis.Client,
		time.Duration(cfg.Matching.PreferenceCacheTTL)*time.Second,
		log,
	)
	sent := store.NewSentNotificationStore(pg.DB)
	searcher := store.NewOpportunitySearcher(esClient.Client, cfg.Search.OpportunityIndex)

	matchService := matching.NewService(prefs, sent, matching.Options{
		MinimumMatchScore: cfg.Matching.MinimumMatchScore,
		RegionWeight:      cfg.Matching.RegionWeight,
		CategoryWeight:    cfg.Matching.CategoryWeight,
	}, log.WithFields(map[string]interface{}{"component": "matching"}))

	// --- Register Workers ---
	runtime := camunda.NewRuntime(zeebe.GetClient(), validator, obs, log)

	handlers := map[string]worker.JobHandler{
		so.TaskType:  so.NewHandler(so.LoadConfig(cfg), searcher, log).Handle,
		mo.TaskType:  mo.NewHandler(mo.LoadConfig(cfg), matchService, log).Handle,
		cns.TaskType: cns.NewHandler(cns.LoadConfig(cfg), matchService, log).Handle,
		rsn.TaskType: rsn.NewHandler(rsn.LoadConfig(cfg), matchService, log).Handle,
		nmo.TaskType: nmo.NewHandler(nmo.LoadConfig(cfg), matchService, messenger, log).Handle,
		ft.TaskType:  ft.NewHandler(ft.LoadConfig(cfg), log).Handle,
		et.TaskType:  et.NewHandler(et.LoadConfig(cfg), log).Handle,
	}

	for taskType, handler := range handlers {
		if !validator.Has(taskType) {
			zapLog.Warn("no input schema registered", zap.String("taskType", taskType))
		}
		runtime.StartWorker(taskType, config.GetWorkerConfig(cfg, taskType), handler)
	}
	zapLog.Info("All workers registered", zap.Int("count", len(handlers)))

	// --- Health & Metrics Server ---
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checkCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		checks := map[string]func(context.Context) error{
			"zeebe":         zeebe.HealthCheck,
			"postgres":      pg.Ping,
			"elasticsearch": esClient.Ping,
			"redis":         redis.Ping,
		}
		body := map[string]string{"status": "ready"}
		status := http.StatusOK
		for name, check := range checks {
			if err := check(checkCtx); err != nil {
				body[name] = err.Error()
				body["status"] = "not ready"
				status = http.StatusServiceUnavailable
			}
		}
		writeStatus(w, status, body)
	})
	http.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: cfg.Metrics.Address, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Metrics.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runtime.Close()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping otel meter provider", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func writeStatus(w http.ResponseWriter, status int, body map[string]string) {
	body["time"] = time.Now().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
