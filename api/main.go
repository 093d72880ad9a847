package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pventura/stockroom/internal/auth"
	"github.com/pventura/stockroom/internal/config"
	"github.com/pventura/stockroom/internal/db"
	api "github.com/pventura/stockroom/internal/http"
	"github.com/pventura/stockroom/internal/http/handlers"
	rl "github.com/pventura/stockroom/internal/http/rate_limiter"
	"github.com/pventura/stockroom/internal/kv"
	"github.com/pventura/stockroom/internal/repo"
)

// @title Stockroom API
// @version 1.0
// @description Multi-tenant inventory API: products, stock adjustments and notifications per signed-in user.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)

	store, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("could not open %s store: %v", cfg.StoreBackend, err)
	}

	handlers.SetInventoryRepo(repo.NewInventoryRepository(store))
	handlers.SetUserStore(auth.NewUserStore(store))

	go rl.StartVisitorCleanupLoop()

	r := api.RateLimitMiddleware(api.NewRouter())
	logrus.WithFields(logrus.Fields{"addr": cfg.Addr, "backend": cfg.StoreBackend}).Info("server running")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logrus.Fatal(err)
	}
}

func openStore(cfg config.Config) (kv.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		return kv.NewRedisStore(rdb), nil
	case config.BackendMemory:
		logrus.Warn("using in-memory store; data is lost on restart")
		return kv.NewMemoryStore(), nil
	default:
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store := kv.NewPostgresStore(database)
		if err := store.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	}
}
