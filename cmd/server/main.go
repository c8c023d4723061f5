// Package main запускает сервис политик производительности
// Сервис реализует:
// - Политики доставки изображений и srcset для прокси изображений
// - Заголовки кэширования для браузера и CDN
// - Link заголовки preload / dns-prefetch / modulepreload
// - Политику runtime кэширования service worker и бюджет производительности
// - Прием и оценку Core Web Vitals со скользящей статистикой оценок
// - Ленту последних измерений в Redis и экспорт метрик в Prometheus
package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"perf-policy-service/internal/analytics"
	"perf-policy-service/internal/cache"
	"perf-policy-service/internal/handlers"
	"perf-policy-service/internal/logger"
	"perf-policy-service/internal/store"
)

// Config содержит конфигурацию сервиса
type Config struct {
	ServerAddr      string
	RedisEnabled    bool
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RecentBeacons   int
	ScoreWindow     int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func main() {
	defer logger.Sync()

	logger.Infof("Starting Performance Policy Service...")
	logger.Infof("Go version: %s, NumCPU: %d", runtime.Version(), runtime.NumCPU())

	cfg := loadConfig()

	metricsStore := store.NewMetricsStore()
	tracker := analytics.NewScoreTracker(cfg.ScoreWindow)

	redisCache := connectRedis(cfg)

	// Не передаем nil *RedisCache в интерфейс
	var feed handlers.BeaconFeed
	if redisCache != nil {
		feed = redisCache
	}

	handler := handlers.NewHandler(metricsStore, tracker, feed)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      newRouter(handler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("Server listening on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	logger.Infof("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}

	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			logger.Warnf("Redis close error: %v", err)
		}
	}

	logger.Infof("Server stopped")
}

// newRouter добавляет служебные маршруты и оборачивает все в RecoverMiddleware
func newRouter(h *handlers.Handler) http.Handler {
	router := h.Routes()
	router.Handle("/prometheus", promhttp.Handler())
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	return handlers.RecoverMiddleware(router)
}

// connectRedis подключается к Redis с повторами; nil означает работу без ленты
func connectRedis(cfg Config) *cache.RedisCache {
	if !cfg.RedisEnabled {
		logger.Infof("Redis feed disabled by configuration")
		return nil
	}

	var err error
	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		var c *cache.RedisCache
		c, err = cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RecentBeacons)
		cancel()
		if err == nil {
			logger.Infof("Connected to Redis at %s", cfg.RedisAddr)
			return c
		}
		logger.Warnf("Redis connection attempt %d failed: %v", i+1, err)
		if i < 4 {
			time.Sleep(time.Duration(i+1) * time.Second)
		}
	}

	logger.Warnf("Failed to connect to Redis, running without beacon feed: %v", err)
	return nil
}

// loadConfig загружает конфигурацию из переменных окружения
func loadConfig() Config {
	return Config{
		ServerAddr:      getEnv("SERVER_ADDR", ":8080"),
		RedisEnabled:    getEnvBool("REDIS_ENABLED", true),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RecentBeacons:   getEnvInt("RECENT_BEACONS", cache.DefaultMaxRecent),
		ScoreWindow:     getEnvInt("SCORE_WINDOW", analytics.WindowSize),
		ReadTimeout:     getEnvDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// getEnv получает переменную окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает целочисленную переменную окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		n, err := strconv.Atoi(value)
		if err == nil && n >= 0 {
			return n
		}
		logger.Warnf("Invalid %s=%q, using default %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvBool получает логическую переменную окружения
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		logger.Warnf("Invalid %s=%q, using default %t", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration получает длительность из переменной окружения
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil && d > 0 {
			return d
		}
		logger.Warnf("Invalid %s=%q, using default %s", key, value, defaultValue)
	}
	return defaultValue
}
