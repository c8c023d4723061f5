package analytics

import "perf-policy-service/internal/models"

// Рейтинги метрики
const (
	RatingGood             = "good"
	RatingNeedsImprovement = "needs_improvement"
	RatingPoor             = "poor"
)

// Имена метрик в фиксированном порядке оценки
const (
	MetricLCP  = "LCP"
	MetricFID  = "FID"
	MetricCLS  = "CLS"
	MetricFCP  = "FCP"
	MetricTTFB = "TTFB"
)

// MaxScore начальная оценка до вычета штрафов
const MaxScore = 100

// threshold пороги и штрафы одной метрики
type threshold struct {
	metric     string
	poor       float64
	poorCost   int
	poorAdvice string
	ni         float64
	niCost     int
	niAdvice   string
	value      func(models.MetricsSample) float64
}

// vitalsThresholds таблица порогов, порядок задает порядок рекомендаций
var vitalsThresholds = [...]threshold{
	{
		metric:     MetricLCP,
		poor:       4000,
		poorCost:   30,
		poorAdvice: "Optimize Largest Contentful Paint (LCP) - consider image optimization, server response times, and resource loading",
		ni:         2500,
		niCost:     15,
		niAdvice:   "Improve Largest Contentful Paint (LCP) - optimize critical resources",
		value:      func(s models.MetricsSample) float64 { return s.LCP },
	},
	{
		metric:     MetricFID,
		poor:       300,
		poorCost:   25,
		poorAdvice: "Reduce First Input Delay (FID) - minimize JavaScript execution time and use code splitting",
		ni:         100,
		niCost:     10,
		niAdvice:   "Optimize First Input Delay (FID) - consider reducing JavaScript bundle size",
		value:      func(s models.MetricsSample) float64 { return s.FID },
	},
	{
		metric:     MetricCLS,
		poor:       0.25,
		poorCost:   25,
		poorAdvice: "Fix Cumulative Layout Shift (CLS) - ensure images have dimensions and avoid inserting content above existing content",
		ni:         0.1,
		niCost:     10,
		niAdvice:   "Improve Cumulative Layout Shift (CLS) - optimize layout stability",
		value:      func(s models.MetricsSample) float64 { return s.CLS },
	},
	{
		metric:     MetricFCP,
		poor:       3000,
		poorCost:   15,
		poorAdvice: "Optimize First Contentful Paint (FCP) - improve server response times and eliminate render-blocking resources",
		ni:         1800,
		niCost:     8,
		niAdvice:   "Improve First Contentful Paint (FCP) - optimize critical rendering path",
		value:      func(s models.MetricsSample) float64 { return s.FCP },
	},
	{
		metric:     MetricTTFB,
		poor:       1500,
		poorCost:   15,
		poorAdvice: "Optimize Time to First Byte (TTFB) - improve server performance and use CDN",
		ni:         600,
		niCost:     8,
		niAdvice:   "Improve Time to First Byte (TTFB) - optimize server response times",
		value:      func(s models.MetricsSample) float64 { return s.TTFB },
	},
}

// AnalyzeVitals вычисляет оценку 0-100 и рекомендации для измерения.
// Значения сравниваются с порогами как есть: отрицательные значения считаются
// хорошими, NaN не превышает ни одного порога.
func AnalyzeVitals(s models.MetricsSample) models.VitalsAnalysis {
	score := MaxScore
	recommendations := make([]string, 0, len(vitalsThresholds))

	for _, t := range vitalsThresholds {
		v := t.value(s)
		switch {
		case v > t.poor:
			score -= t.poorCost
			recommendations = append(recommendations, t.poorAdvice)
		case v > t.ni:
			score -= t.niCost
			recommendations = append(recommendations, t.niAdvice)
		}
	}

	if score < 0 {
		score = 0
	}

	return models.VitalsAnalysis{
		Score:           score,
		Recommendations: recommendations,
	}
}

// Rate возвращает рейтинг значения метрики по тем же порогам, что и AnalyzeVitals.
// Для неизвестной метрики возвращается пустая строка.
func Rate(metric string, value float64) string {
	for _, t := range vitalsThresholds {
		if t.metric != metric {
			continue
		}
		switch {
		case value > t.poor:
			return RatingPoor
		case value > t.ni:
			return RatingNeedsImprovement
		default:
			return RatingGood
		}
	}
	return ""
}

// Ratings возвращает рейтинг каждой метрики измерения
func Ratings(s models.MetricsSample) map[string]string {
	out := make(map[string]string, len(vitalsThresholds))
	for _, t := range vitalsThresholds {
		out[t.metric] = Rate(t.metric, t.value(s))
	}
	return out
}

// Metrics возвращает имена метрик в порядке оценки
func Metrics() []string {
	out := make([]string, 0, len(vitalsThresholds))
	for _, t := range vitalsThresholds {
		out = append(out, t.metric)
	}
	return out
}
