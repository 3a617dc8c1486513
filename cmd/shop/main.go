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

	"github.com/redis/go-redis/v9"

	"github.com/rick465/react-shop/internal/cart"
	"github.com/rick465/react-shop/internal/catalog"
	"github.com/rick465/react-shop/internal/checkout"
	shophttp "github.com/rick465/react-shop/internal/http"
	"github.com/rick465/react-shop/internal/identity"
	"github.com/rick465/react-shop/internal/order"
	"github.com/rick465/react-shop/internal/storage"
)

type Config struct {
	HTTPAddr        string
	StorageBackend  string // sqlite, redis or memory
	DBPath          string
	MigrationsPath  string
	RedisAddr       string
	RedisPassword   string
	CatalogDelay    time.Duration
	CartDelay       time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPAddr:        getEnv("SHOP_HTTP_ADDR", ":8080"),
		StorageBackend:  getEnv("SHOP_STORAGE", "sqlite"),
		DBPath:          getEnv("SHOP_DB_PATH", "shop.db"),
		MigrationsPath:  getEnv("SHOP_MIGRATIONS_PATH", "./migrations"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogDelay:    300 * time.Millisecond,
		CartDelay:       300 * time.Millisecond,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func openStorage(cfg *Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := store.RunMigrations(cfg.MigrationsPath); err != nil {
			store.Close()
			return nil, err
		}
		log.Printf("using sqlite storage at %s", cfg.DBPath)
		return store, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			client.Close()
			return nil, err
		}
		log.Printf("using redis storage at %s", cfg.RedisAddr)
		return storage.NewRedisStore(client), nil
	case "memory":
		log.Printf("using in-memory storage, state will not survive a restart")
		return storage.NewMemoryStore(), nil
	default:
		return nil, errors.New("SHOP_STORAGE must be sqlite, redis or memory")
	}
}

func main() {
	cfg := loadConfig()

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer store.Close()

	provider := catalog.NewProvider(cfg.CatalogDelay)
	cartStore := cart.NewStore(provider, store, cfg.CartDelay)
	defer cartStore.Close()
	orderStore := order.NewStore(store)
	idManager := identity.NewManager(store)
	orchestrator := checkout.New(cartStore, orderStore, idManager)

	router := shophttp.NewRouter(shophttp.Deps{
		Catalog:  provider,
		Cart:     cartStore,
		Orders:   orderStore,
		Identity: idManager,
		Checkout: orchestrator,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
