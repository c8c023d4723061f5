// Package handlers содержит HTTP обработчики для внешних потребителей политик
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"perf-policy-service/internal/analytics"
	"perf-policy-service/internal/models"
	"perf-policy-service/internal/store"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 64 << 10

// BeaconFeed лента последних измерений (Redis)
type BeaconFeed interface {
	PushBeacon(ctx context.Context, rec models.BeaconRecord, score int) error
	GetRecentBeacons(ctx context.Context, count int64) ([]models.BeaconRecord, error)
	GetCounter(ctx context.Context, key string) (int64, error)
	Ping(ctx context.Context) error
}

// Handler содержит зависимости для HTTP обработчиков
type Handler struct {
	store     *store.MetricsStore
	tracker   *analytics.ScoreTracker
	feed      BeaconFeed
	startTime time.Time
	now       func() time.Time
}

// NewHandler создает новый обработчик. feed может быть nil, тогда лента отключена.
func NewHandler(metricsStore *store.MetricsStore, tracker *analytics.ScoreTracker, feed BeaconFeed) *Handler {
	return &Handler{
		store:     metricsStore,
		tracker:   tracker,
		feed:      feed,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// Routes регистрирует маршруты API.
// RecoverMiddleware сюда не входит, им оборачивается весь роутер сервера.
func (h *Handler) Routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/vitals", h.RecordVitalsHandler).Methods(http.MethodPost)
	router.HandleFunc("/vitals", h.GetVitalsHandler).Methods(http.MethodGet)
	router.HandleFunc("/vitals/all", h.AllVitalsHandler).Methods(http.MethodGet)
	router.HandleFunc("/vitals/recent", h.RecentVitalsHandler).Methods(http.MethodGet)

	router.HandleFunc("/policy/image/{class}", h.ImagePolicyHandler).Methods(http.MethodGet)
	router.HandleFunc("/policy/cache/{class}", h.CachePolicyHandler).Methods(http.MethodGet)
	router.HandleFunc("/policy/hints", h.HintsHandler).Methods(http.MethodPost)
	router.HandleFunc("/policy/service-worker", h.ServiceWorkerHandler).Methods(http.MethodGet)
	router.HandleFunc("/policy/budget", h.BudgetHandler).Methods(http.MethodGet)
	router.HandleFunc("/policy/critical-css", h.CriticalCSSHandler).Methods(http.MethodGet)

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", h.StatsHandler).Methods(http.MethodGet)

	router.Use(RequestIDMiddleware, LoggingMiddleware, MetricsMiddleware)

	return router
}

// respondJSON отправляет JSON ответ
func (h *Handler) respondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError отправляет ошибку в JSON формате
func (h *Handler) respondError(w http.ResponseWriter, message string, status int) {
	h.respondJSON(w, map[string]string{"error": message}, status)
}

// decodeJSON читает тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dest)
}
