package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tirona-thrift/internal/api"
	"tirona-thrift/internal/auth"
	"tirona-thrift/internal/cache"
	"tirona-thrift/internal/config"
	"tirona-thrift/internal/db"
	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/middleware"
	"tirona-thrift/internal/order"
	"tirona-thrift/internal/product"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(addr string, handler http.Handler) error {
		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	database := initDBFunc(cfg)
	defer database.Close()

	router, err := newServer(cfg, database)
	if err != nil {
		return err
	}

	logger.L().Info("API server running", zap.String("addr", "http://localhost:"+cfg.AppPort+"/api"))
	return startServerFunc(":"+cfg.AppPort, router)
}

func newServer(cfg *config.Config, database *sql.DB) (http.Handler, error) {
	tokens, err := auth.NewTokens(cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("admin tokens: %w", err)
	}

	loginLimiter := middleware.NewLimiter(middleware.LimitStrict, middleware.BurstStrict)
	orderLimiter := middleware.NewLimiter(middleware.LimitGeneral, middleware.BurstGeneral)
	go loginLimiter.RunCleanup(context.Background())
	go orderLimiter.RunCleanup(context.Background())

	h := api.NewHandler(api.Deps{
		Products:     product.NewRepository(database),
		Orders:       order.NewRepository(database),
		Cache:        newProductCache(cfg),
		Admin:        auth.NewAdmin(cfg.AdminPasswordHash, tokens),
		Tokens:       tokens,
		LoginLimiter: loginLimiter,
		OrderLimiter: orderLimiter,
	})

	return setupRouter(h, cfg.CORSOrigin), nil
}

// newProductCache falls back to no caching when Redis is absent or down.
func newProductCache(cfg *config.Config) cache.ProductCache {
	if cfg.RedisAddr == "" {
		return cache.Nop{}
	}
	client, err := cache.NewRedisClient(context.Background(), cfg.RedisAddr)
	if err != nil {
		logger.L().Warn("product cache disabled", zap.Error(err))
		return cache.Nop{}
	}
	return cache.NewProductCache(client, cfg.CacheTTL)
}

func setupRouter(h *api.Handler, corsOrigin string) chi.Router {
	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORS(corsOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Route("/api", h.RegisterRoutes)
	return r
}
