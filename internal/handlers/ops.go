package handlers

import (
	"errors"
	"net/http"
	"time"

	"perf-policy-service/internal/cache"
	"perf-policy-service/internal/logger"
	"perf-policy-service/internal/metrics"
	"perf-policy-service/internal/models"
)

// HealthHandler обрабатывает GET /health - проверка здоровья
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	redisStatus := "disabled"
	if h.feed != nil {
		redisStatus = "connected"
		if err := h.feed.Ping(r.Context()); err != nil {
			redisStatus = "disconnected"
		}
	}

	status := models.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Redis:     redisStatus,
		Uptime:    time.Since(h.startTime).String(),
	}

	h.respondJSON(w, status, http.StatusOK)
}

// StatsHandler обрабатывает GET /stats - статистика сервиса
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	mean, stdDev, _ := h.tracker.Stats()

	stats := models.StatsResponse{
		PagesTracked: h.store.Len(),
		Feed:         models.FeedDisabled,
		RollingScore: mean,
		ScoreStdDev:  stdDev,
		WindowSize:   h.tracker.WindowSize(),
	}

	if h.feed != nil {
		stats.Feed = models.FeedOK
		total, errTotal := h.feed.GetCounter(r.Context(), cache.BeaconsTotalKey)
		zero, errZero := h.feed.GetCounter(r.Context(), cache.ZeroScoreBeaconsKey)
		if err := errors.Join(errTotal, errZero); err != nil {
			metrics.FeedErrors.Inc()
			logger.Warnf("failed to read beacon counters: %v", err)
			stats.Feed = models.FeedUnavailable
		} else {
			stats.BeaconsTotal = &total
			stats.ZeroScoreBeacons = &zero
		}
	}

	h.respondJSON(w, stats, http.StatusOK)
}
