// Package models содержит структуры данных для политик доставки и метрик Web Vitals
package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidSample возвращается, если значение метрики отрицательное или не конечное
var ErrInvalidSample = errors.New("invalid metrics sample")

// MetricsSample представляет одно измерение Core Web Vitals для страницы.
// FCP, LCP, FID и TTFB в миллисекундах, CLS безразмерный.
type MetricsSample struct {
	FCP  float64 `json:"fcp"`
	LCP  float64 `json:"lcp"`
	FID  float64 `json:"fid"`
	CLS  float64 `json:"cls"`
	TTFB float64 `json:"ttfb"`
}

// Validate проверяет, что все значения конечны и неотрицательны.
// Движок оценки сам по себе не валидирует вход, проверка нужна на границе приема.
func (s MetricsSample) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"fcp", s.FCP},
		{"lcp", s.LCP},
		{"fid", s.FID},
		{"cls", s.CLS},
		{"ttfb", s.TTFB},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidSample, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s is negative", ErrInvalidSample, f.name)
		}
	}
	return nil
}

// VitalsAnalysis содержит итоговую оценку 0-100 и упорядоченные рекомендации
type VitalsAnalysis struct {
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

// ImageFormat формат кодирования изображения
type ImageFormat string

const (
	FormatWebP ImageFormat = "webp"
	FormatAVIF ImageFormat = "avif"
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
)

// Placeholder тип заглушки, показываемой до загрузки изображения
type Placeholder string

const (
	PlaceholderBlur  Placeholder = "blur"
	PlaceholderEmpty Placeholder = "empty"
)

// ImageConfig параметры доставки изображений для класса ассетов
type ImageConfig struct {
	Quality     int         `json:"quality"`
	Format      ImageFormat `json:"format"`
	Sizes       []int       `json:"sizes"`
	Placeholder Placeholder `json:"placeholder"`
}

// CachePolicy параметры кэширования для класса контента
type CachePolicy struct {
	MaxAgeSeconds               int   `json:"max_age_seconds"`
	StaleWhileRevalidateSeconds int   `json:"stale_while_revalidate_seconds"`
	MustRevalidate              *bool `json:"must_revalidate,omitempty"`
}

// ResourceHint описывает ресурс для предзагрузки
type ResourceHint struct {
	Href        string `json:"href"`
	As          string `json:"as"`
	MimeType    string `json:"type,omitempty"`
	CrossOrigin bool   `json:"crossorigin,omitempty"`
}

// VitalsBeacon тело запроса телеметрии от клиента
type VitalsBeacon struct {
	Page string `json:"page"`
	MetricsSample
}

// BeaconRecord запись в ленте последних измерений
type BeaconRecord struct {
	Page       string        `json:"page"`
	Sample     MetricsSample `json:"sample"`
	ReceivedAt time.Time     `json:"received_at"`
}

// IntakeResponse ответ на прием измерения
type IntakeResponse struct {
	Page         string            `json:"page"`
	Analysis     VitalsAnalysis    `json:"analysis"`
	Ratings      map[string]string `json:"ratings"`
	RollingScore float64           `json:"rolling_score"`
	ZScore       float64           `json:"z_score"`
	Regression   bool              `json:"regression"`
}

// PageReport измерение страницы вместе со свежим анализом
type PageReport struct {
	Page     string            `json:"page"`
	Sample   MetricsSample     `json:"sample"`
	Analysis VitalsAnalysis    `json:"analysis"`
	Ratings  map[string]string `json:"ratings"`
}

// HintsRequest входные списки для генерации Link заголовков
type HintsRequest struct {
	Preload       []ResourceHint `json:"preload"`
	DNSPrefetch   []string       `json:"dnsPrefetch"`
	ModulePreload []string       `json:"modulePreload"`
}

// HintsResponse сгенерированные фрагменты Link заголовков
type HintsResponse struct {
	Preload       string `json:"preload,omitempty"`
	DNSPrefetch   string `json:"dnsPrefetch,omitempty"`
	ModulePreload string `json:"modulePreload,omitempty"`
}

// ImagePolicyResponse конфигурация изображения и, при наличии источника, srcset
type ImagePolicyResponse struct {
	Class  string         `json:"class"`
	Config ImageConfig    `json:"config"`
	SrcSet string         `json:"srcset,omitempty"`
	URLs   map[int]string `json:"urls,omitempty"`
}

// HealthStatus представляет статус здоровья сервиса
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Redis     string    `json:"redis"`
	Uptime    string    `json:"uptime"`
}

// Состояние ленты в StatsResponse
const (
	FeedDisabled    = "disabled"
	FeedOK          = "ok"
	FeedUnavailable = "unavailable"
)

// StatsResponse содержит статистику сервиса.
// Счетчики ленты отсутствуют, если лента выключена или Redis не ответил.
type StatsResponse struct {
	PagesTracked     int     `json:"pages_tracked"`
	Feed             string  `json:"feed"`
	BeaconsTotal     *int64  `json:"beacons_total,omitempty"`
	ZeroScoreBeacons *int64  `json:"zero_score_beacons,omitempty"`
	RollingScore     float64 `json:"rolling_score"`
	ScoreStdDev      float64 `json:"score_std_dev"`
	WindowSize       int     `json:"window_size"`
}
