package policy

import "regexp"

// CachingStrategy стратегия обработки запроса в service worker
type CachingStrategy string

const (
	StrategyCacheFirst   CachingStrategy = "CacheFirst"
	StrategyNetworkFirst CachingStrategy = "NetworkFirst"
)

// CacheExpiration ограничения кэша правила
type CacheExpiration struct {
	MaxEntries    int `json:"maxEntries"`
	MaxAgeSeconds int `json:"maxAgeSeconds"`
}

// RuleOptions параметры кэша правила
type RuleOptions struct {
	CacheName             string          `json:"cacheName"`
	Expiration            CacheExpiration `json:"expiration"`
	NetworkTimeoutSeconds int             `json:"networkTimeoutSeconds,omitempty"`
}

// CachingRule одно правило runtime кэширования
type CachingRule struct {
	URLPattern string          `json:"urlPattern"`
	Handler    CachingStrategy `json:"handler"`
	Options    RuleOptions     `json:"options"`

	re *regexp.Regexp
}

// Matches сообщает, подходит ли URL под шаблон правила
func (r CachingRule) Matches(rawURL string) bool {
	if r.re == nil {
		return false
	}
	return r.re.MatchString(rawURL)
}

// ServiceWorkerPolicy документ runtime кэширования для офлайн клиента.
// Правила применяются по первому совпадению, порядок важен.
type ServiceWorkerPolicy struct {
	RuntimeCaching []CachingRule `json:"runtimeCaching"`
	SkipWaiting    bool          `json:"skipWaiting"`
	ClientsClaim   bool          `json:"clientsClaim"`
}

// Match возвращает первое правило, подходящее под URL
func (p ServiceWorkerPolicy) Match(rawURL string) (CachingRule, bool) {
	for _, r := range p.RuntimeCaching {
		if r.Matches(rawURL) {
			return r, true
		}
	}
	return CachingRule{}, false
}

// Шаблоны совместимы с RegExp клиента и с пакетом regexp
const (
	fontsPattern  = `^https://fonts\.googleapis\.com/.*`
	imagesPattern = `\.(?:png|jpg|jpeg|svg|gif|webp|avif)$`
	apiPattern    = `/api/.*`
	staticPattern = `/_next/static/.*`
)

var (
	fontsRe  = regexp.MustCompile(`(?i)` + fontsPattern)
	imagesRe = regexp.MustCompile(imagesPattern)
	apiRe    = regexp.MustCompile(apiPattern)
	staticRe = regexp.MustCompile(staticPattern)
)

// GetRuntimeCachingPolicy возвращает фиксированную политику из четырех правил:
// шрифты, изображения, API, статика сборки.
func GetRuntimeCachingPolicy() ServiceWorkerPolicy {
	return ServiceWorkerPolicy{
		RuntimeCaching: []CachingRule{
			{
				URLPattern: fontsPattern,
				Handler:    StrategyCacheFirst,
				Options: RuleOptions{
					CacheName:  "google-fonts-cache",
					Expiration: CacheExpiration{MaxEntries: 10, MaxAgeSeconds: OneYearSeconds},
				},
				re: fontsRe,
			},
			{
				URLPattern: imagesPattern,
				Handler:    StrategyCacheFirst,
				Options: RuleOptions{
					CacheName:  "images-cache",
					Expiration: CacheExpiration{MaxEntries: 100, MaxAgeSeconds: ThirtyDaysSeconds},
				},
				re: imagesRe,
			},
			{
				URLPattern: apiPattern,
				Handler:    StrategyNetworkFirst,
				Options: RuleOptions{
					CacheName:             "api-cache",
					Expiration:            CacheExpiration{MaxEntries: 50, MaxAgeSeconds: FiveMinutesSeconds},
					NetworkTimeoutSeconds: 3,
				},
				re: apiRe,
			},
			{
				URLPattern: staticPattern,
				Handler:    StrategyCacheFirst,
				Options: RuleOptions{
					CacheName:  "static-cache",
					Expiration: CacheExpiration{MaxEntries: 100, MaxAgeSeconds: OneYearSeconds},
				},
				re: staticRe,
			},
		},
		SkipWaiting:  true,
		ClientsClaim: true,
	}
}
