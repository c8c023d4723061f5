package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"perf-policy-service/internal/metrics"
	"perf-policy-service/internal/models"
	"perf-policy-service/internal/policy"
)

// ImagePolicyHandler обрабатывает GET /policy/image/{class}?src= - параметры изображения и srcset
func (h *Handler) ImagePolicyHandler(w http.ResponseWriter, r *http.Request) {
	class := mux.Vars(r)["class"]

	cfg, err := policy.GetImageConfig(policy.AssetClass(class))
	if err != nil {
		if errors.Is(err, policy.ErrUnknownAssetClass) {
			metrics.PolicyLookupErrors.WithLabelValues("image").Inc()
			h.respondError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := models.ImagePolicyResponse{Class: class, Config: cfg}
	if src := r.URL.Query().Get("src"); src != "" {
		resp.SrcSet = policy.BuildSrcSet(src, cfg)
		resp.URLs = make(map[int]string, len(cfg.Sizes))
		for _, width := range cfg.Sizes {
			resp.URLs[width] = policy.BuildOptimizedURL(src, width, cfg)
		}
	}

	h.respondJSON(w, resp, http.StatusOK)
}

// CachePolicyHandler обрабатывает GET /policy/cache/{class} - выставляет заголовки кэширования
func (h *Handler) CachePolicyHandler(w http.ResponseWriter, r *http.Request) {
	class := mux.Vars(r)["class"]

	headers, err := policy.GetCacheHeaders(policy.ContentClass(class))
	if err != nil {
		if errors.Is(err, policy.ErrUnknownContentClass) {
			metrics.PolicyLookupErrors.WithLabelValues("cache").Inc()
			h.respondError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for name, value := range headers {
		w.Header().Set(name, value)
	}
	h.respondJSON(w, headers, http.StatusOK)
}

// HintsHandler обрабатывает POST /policy/hints - генерирует Link заголовки
func (h *Handler) HintsHandler(w http.ResponseWriter, r *http.Request) {
	var req models.HintsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := models.HintsResponse{
		Preload:       policy.PreloadLinks(req.Preload),
		DNSPrefetch:   policy.DNSPrefetchLinks(req.DNSPrefetch),
		ModulePreload: policy.ModulePreloadLinks(req.ModulePreload),
	}

	for _, link := range []string{resp.DNSPrefetch, resp.Preload, resp.ModulePreload} {
		if link != "" {
			w.Header().Add("Link", link)
		}
	}
	h.respondJSON(w, resp, http.StatusOK)
}

// ServiceWorkerHandler обрабатывает GET /policy/service-worker - политика runtime кэширования
func (h *Handler) ServiceWorkerHandler(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, policy.GetRuntimeCachingPolicy(), http.StatusOK)
}

// BudgetHandler обрабатывает GET /policy/budget - бюджет производительности.
// С параметрами type и size проверяет размер против бюджета.
func (h *Handler) BudgetHandler(w http.ResponseWriter, r *http.Request) {
	doc := policy.GetPerformanceBudget()

	q := r.URL.Query()
	budgetType, sizeStr := q.Get("type"), q.Get("size")
	if budgetType == "" && sizeStr == "" {
		h.respondJSON(w, doc, http.StatusOK)
		return
	}
	if budgetType == "" || sizeStr == "" {
		h.respondError(w, "both type and size are required", http.StatusBadRequest)
		return
	}

	size, err := strconv.ParseInt(sizeStr, 10, 64)
	if err != nil {
		size, err = policy.ParseBudgetSize(sizeStr)
		if err != nil {
			h.respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	status, err := doc.Check(budgetType, size)
	if err != nil {
		if errors.Is(err, policy.ErrUnknownBudgetType) {
			h.respondError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, map[string]interface{}{
		"type":       budgetType,
		"size_bytes": size,
		"status":     status,
	}, http.StatusOK)
}

// CriticalCSSHandler обрабатывает GET /policy/critical-css - критический CSS
func (h *Handler) CriticalCSSHandler(w http.ResponseWriter, r *http.Request) {
	headers, _ := policy.GetCacheHeaders(policy.ContentStatic)
	for name, value := range headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(policy.ExtractCriticalCSS("")))
}
