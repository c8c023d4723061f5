package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"perf-policy-service/internal/analytics"
	"perf-policy-service/internal/cache"
	"perf-policy-service/internal/logger"
	"perf-policy-service/internal/metrics"
	"perf-policy-service/internal/models"
)

// RecordVitalsHandler обрабатывает POST /vitals - прием измерения от клиента
func (h *Handler) RecordVitalsHandler(w http.ResponseWriter, r *http.Request) {
	var beacon models.VitalsBeacon
	if err := decodeJSON(w, r, &beacon); err != nil {
		h.respondError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if beacon.Page == "" {
		metrics.SamplesRejected.Inc()
		h.respondError(w, "page is required", http.StatusBadRequest)
		return
	}
	if err := beacon.MetricsSample.Validate(); err != nil {
		metrics.SamplesRejected.Inc()
		h.respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sample := beacon.MetricsSample
	h.store.Record(beacon.Page, sample)
	metrics.PagesTracked.Set(float64(h.store.Len()))

	analysis := analytics.AnalyzeVitals(sample)
	ratings := analytics.Ratings(sample)
	obs := h.tracker.Observe(analysis.Score)
	metrics.ObserveAnalysis(analysis.Score, ratings, obs.RollingScore, obs.Regression)

	if obs.Regression {
		logger.With(
			zap.String("page", beacon.Page),
			zap.Int("score", analysis.Score),
			zap.Float64("z_score", obs.ZScore),
		).Warn("vitals score regression detected")
	}

	// Ошибка ленты не должна ломать прием
	if h.feed != nil {
		rec := models.BeaconRecord{Page: beacon.Page, Sample: sample, ReceivedAt: h.now().UTC()}
		if err := h.feed.PushBeacon(r.Context(), rec, analysis.Score); err != nil {
			metrics.FeedErrors.Inc()
			logger.Warnf("failed to push beacon for %s: %v", beacon.Page, err)
		}
	}

	h.respondJSON(w, models.IntakeResponse{
		Page:         beacon.Page,
		Analysis:     analysis,
		Ratings:      ratings,
		RollingScore: obs.RollingScore,
		ZScore:       obs.ZScore,
		Regression:   obs.Regression,
	}, http.StatusOK)
}

// GetVitalsHandler обрабатывает GET /vitals?page= - измерение страницы со свежим анализом
func (h *Handler) GetVitalsHandler(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if page == "" {
		h.respondError(w, "page is required", http.StatusBadRequest)
		return
	}

	sample, ok := h.store.Get(page)
	if !ok {
		h.respondError(w, "no metrics recorded for page", http.StatusNotFound)
		return
	}

	h.respondJSON(w, buildReport(page, sample), http.StatusOK)
}

// AllVitalsHandler обрабатывает GET /vitals/all - отчет по всем страницам
func (h *Handler) AllVitalsHandler(w http.ResponseWriter, r *http.Request) {
	all := h.store.GetAll()

	pages := make([]string, 0, len(all))
	for page := range all {
		pages = append(pages, page)
	}
	sort.Strings(pages)

	reports := make([]models.PageReport, 0, len(pages))
	for _, page := range pages {
		reports = append(reports, buildReport(page, all[page]))
	}

	h.respondJSON(w, reports, http.StatusOK)
}

// RecentVitalsHandler возвращает последние измерения из ленты Redis
func (h *Handler) RecentVitalsHandler(w http.ResponseWriter, r *http.Request) {
	count := int64(50)
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		if c, err := strconv.ParseInt(countStr, 10, 64); err == nil && c > 0 {
			count = min(c, cache.DefaultMaxRecent)
		}
	}

	if h.feed == nil {
		h.respondError(w, "Beacon feed not available", http.StatusServiceUnavailable)
		return
	}

	beacons, err := h.feed.GetRecentBeacons(r.Context(), count)
	if err != nil {
		logger.Errorf("failed to read beacon feed: %v", err)
		h.respondError(w, "Failed to get recent beacons", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, beacons, http.StatusOK)
}

func buildReport(page string, sample models.MetricsSample) models.PageReport {
	return models.PageReport{
		Page:     page,
		Sample:   sample,
		Analysis: analytics.AnalyzeVitals(sample),
		Ratings:  analytics.Ratings(sample),
	}
}
