package policy

import (
	"fmt"

	"perf-policy-service/internal/models"
)

// ContentClass класс контента, определяющий политику кэширования
type ContentClass string

const (
	ContentStatic ContentClass = "static"
	ContentAPI    ContentClass = "api"
	ContentPage   ContentClass = "page"
	ContentImage  ContentClass = "image"
)

// ContentClasses перечисляет все известные классы в фиксированном порядке
var ContentClasses = []ContentClass{ContentStatic, ContentAPI, ContentPage, ContentImage}

// Длительности в секундах, общие для заголовков и политики service worker
const (
	OneYearSeconds     = 31536000
	ThirtyDaysSeconds  = 2592000
	OneHourSeconds     = 3600
	OneDaySeconds      = 86400
	FiveMinutesSeconds = 300
	OneMinuteSeconds   = 60
)

// Имена заголовков
const (
	HeaderCacheControl       = "Cache-Control"
	HeaderCDNCacheControl    = "CDN-Cache-Control"
	HeaderVercelCacheControl = "Vercel-CDN-Cache-Control"
)

// GetCachePolicy возвращает параметры кэширования для класса контента
func GetCachePolicy(class ContentClass) (models.CachePolicy, error) {
	switch class {
	case ContentStatic:
		return models.CachePolicy{MaxAgeSeconds: OneYearSeconds, StaleWhileRevalidateSeconds: OneDaySeconds}, nil
	case ContentAPI:
		return models.CachePolicy{MaxAgeSeconds: FiveMinutesSeconds, StaleWhileRevalidateSeconds: OneMinuteSeconds}, nil
	case ContentPage:
		return models.CachePolicy{MaxAgeSeconds: OneHourSeconds, StaleWhileRevalidateSeconds: FiveMinutesSeconds}, nil
	case ContentImage:
		return models.CachePolicy{MaxAgeSeconds: ThirtyDaysSeconds, StaleWhileRevalidateSeconds: OneDaySeconds}, nil
	default:
		return models.CachePolicy{}, fmt.Errorf("%w: %q", ErrUnknownContentClass, string(class))
	}
}

// GetCacheHeaders возвращает набор заголовков кэширования для класса контента.
// CDN заголовки несут только max-age: stale-while-revalidate нужен лишь браузеру.
func GetCacheHeaders(class ContentClass) (map[string]string, error) {
	p, err := GetCachePolicy(class)
	if err != nil {
		return nil, err
	}

	browser := fmt.Sprintf("public, max-age=%d, s-maxage=%d, stale-while-revalidate=%d",
		p.MaxAgeSeconds, p.MaxAgeSeconds, p.StaleWhileRevalidateSeconds)
	if p.MustRevalidate != nil && *p.MustRevalidate {
		browser += ", must-revalidate"
	}
	edge := fmt.Sprintf("public, max-age=%d", p.MaxAgeSeconds)

	return map[string]string{
		HeaderCacheControl:       browser,
		HeaderCDNCacheControl:    edge,
		HeaderVercelCacheControl: edge,
	}, nil
}
