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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/florist-store/florist-api/handlers"
	"github.com/florist-store/florist-api/internal/config"
	"github.com/florist-store/florist-api/internal/database"
	"github.com/florist-store/florist-api/internal/seed"
	"github.com/florist-store/florist-api/internal/storage"
	"github.com/florist-store/florist-api/internal/storefront/handler"
	"github.com/florist-store/florist-api/internal/storefront/service"
	"github.com/florist-store/florist-api/pkg/logger"
	"github.com/florist-store/florist-api/pkg/metrics"
	"github.com/florist-store/florist-api/pkg/middleware"
)

func main() {
	// LOG_LEVEL is read before config so config loading itself can be traced
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.SetFormat(cfg.Log.Format)
	logger.Init(cfg.Log.Level)
	logger.Infof("config loaded: database=%v redis=%v minio=%v env=%s",
		cfg.Database.Configured(), cfg.Redis.Host != "", cfg.MinIO.Endpoint != "", cfg.Server.Environment)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Redis is optional and backs the distributed rate limiter and the seed lock.
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", cfg.Redis.Addr(), err)
			_ = client.Close()
		} else {
			logger.Infof("connected to Redis at %s", cfg.Redis.Addr())
			rdb = client
			defer func() { _ = rdb.Close() }()
		}
		cancel()
	}

	gw, mongoClient := database.OpenGateway(ctx, cfg.Database)

	if cfg.Seed.OnStart {
		var locker seed.Locker
		if rdb != nil {
			locker = seed.NewRedisLocker(rdb)
		}
		seed.EnsureProducts(ctx, gw, locker, seed.DemoProducts())
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.RequestID(), middleware.AccessLog())

	handlers.RegisterStatusRoutes(r, gw, cfg.Database)
	handlers.RegisterSwagger(r)

	// rate limiting applies to the /api surface only
	api := r.Group("/")
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			api.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			api.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}
	handler.RegisterStorefrontRoutes(api, service.New(gw))

	if cfg.MinIO.Endpoint != "" {
		images, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("image uploads disabled: %v", err)
		} else {
			logger.Infof("image uploads enabled (bucket %s)", images.Bucket())
			handler.RegisterUploadRoutes(api, images, cfg.MinIO.URLTTL)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("florist-api listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.Errorf("mongo disconnect: %v", err)
		}
	}
}
