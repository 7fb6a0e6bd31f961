package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/florist-store/florist-api/internal/config"
	"github.com/florist-store/florist-api/internal/database"
	"github.com/florist-store/florist-api/internal/seed"
	"github.com/florist-store/florist-api/pkg/logger"
)

func main() {
	useLock := flag.Bool("lock", true, "take the Redis seed lock when REDIS_HOST is set")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))
	code := run(*useLock)
	logger.Sync()
	os.Exit(code)
}

func run(useLock bool) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return 1
	}
	logger.SetFormat(cfg.Log.Format)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	gw, client := database.OpenGateway(ctx, cfg.Database)
	if client != nil {
		defer func() { _ = client.Disconnect(context.Background()) }()
	}

	var locker seed.Locker
	if useLock && cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer func() { _ = rdb.Close() }()
		locker = seed.NewRedisLocker(rdb)
	}

	report := seed.EnsureProducts(ctx, gw, locker, seed.DemoProducts())
	if report.Skipped {
		fmt.Printf("seed skipped: %s\n", report.Reason)
		return 0
	}
	failed := 0
	for _, res := range report.Results {
		if res.Err != nil {
			failed++
			fmt.Printf("  FAIL %s: %v\n", res.Title, res.Err)
			continue
		}
		fmt.Printf("  ok   %s (%s)\n", res.Title, res.ID)
	}
	fmt.Printf("inserted %d/%d products\n", report.Inserted(), len(report.Results))
	if failed > 0 {
		return 1
	}
	return 0
}
