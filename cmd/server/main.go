package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"vattours/server/internal/api"
	"vattours/server/internal/common"
	"vattours/server/internal/config"
	"vattours/server/internal/db"
	"vattours/server/internal/logging"
	"vattours/server/internal/metrics"
	"vattours/server/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional; real deployments inject environment directly
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("VatTours starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	sqlxDB, err := db.ConnectPostgres(cfg.PostgresDSN())
	if err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	gormDB, err := db.ConnectPostgresORM(cfg.PostgresDSN())
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	// Redis backs sessions and, optionally, the cache layer
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
	})

	var cache common.CacheInterface
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(redisClient)
		if err != nil {
			logging.Error("Failed to connect to Redis cache", "error", err.Error())
			log.Fatalf("Failed to connect to Redis cache: %v", err)
		}
		cache = redisCache
		logging.Info("Cache backend: redis")
	} else {
		cache = common.NewCacheService(300, 600)
		logging.Info("Cache backend: in-memory")
	}

	sessionSvc := common.NewSessionService([]byte(cfg.SessionSecret), redisClient, 24*time.Hour)

	// Image storage is best-effort: the upload endpoint reports unavailable
	// when credentials are missing
	imageStore, err := common.NewImageStore(context.Background(), cfg.ImageBucket)
	if err != nil {
		logging.Warn("Image store unavailable", "error", err.Error())
		imageStore = nil
	}

	metricsReg := metrics.NewMetricsRegistry()

	deps := api.InitDependencies(gormDB, sqlxDB, cache, sessionSvc, imageStore, metricsReg)

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logging.Info("Shutdown signal received, draining connections")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server exited with error", "error", err.Error())
		log.Fatalf("Server exited with error: %v", err)
	}

	logging.Info("Server stopped cleanly")
}
