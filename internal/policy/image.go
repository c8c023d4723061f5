package policy

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"perf-policy-service/internal/models"
)

// ImageProxyPath путь эндпоинта, который выполняет фактическую трансформацию
const ImageProxyPath = "/api/image-proxy"

// AssetClass класс изображения, определяющий политику доставки
type AssetClass string

const (
	AssetHero      AssetClass = "hero"
	AssetThumbnail AssetClass = "thumbnail"
	AssetContent   AssetClass = "content"
	AssetAvatar    AssetClass = "avatar"
)

// AssetClasses перечисляет все известные классы в фиксированном порядке
var AssetClasses = []AssetClass{AssetHero, AssetThumbnail, AssetContent, AssetAvatar}

// GetImageConfig возвращает параметры доставки для класса ассетов.
// Каждый вызов возвращает новую копию, вызывающий может ее менять.
func GetImageConfig(class AssetClass) (models.ImageConfig, error) {
	var (
		quality int
		sizes   []int
	)
	switch class {
	case AssetHero:
		quality, sizes = 85, []int{640, 768, 1024, 1280, 1920}
	case AssetThumbnail:
		quality, sizes = 80, []int{150, 300, 450}
	case AssetContent:
		quality, sizes = 85, []int{400, 600, 800, 1200}
	case AssetAvatar:
		quality, sizes = 90, []int{32, 48, 64, 96, 128}
	default:
		return models.ImageConfig{}, fmt.Errorf("%w: %q", ErrUnknownAssetClass, string(class))
	}

	return models.ImageConfig{
		Quality:     quality,
		Format:      models.FormatWebP,
		Sizes:       sizes,
		Placeholder: models.PlaceholderBlur,
	}, nil
}

// BuildOptimizedURL строит URL прокси изображений.
// Порядок параметров фиксирован (url, w, q, f), пробел кодируется как "+".
func BuildOptimizedURL(src string, width int, cfg models.ImageConfig) string {
	var b strings.Builder
	b.WriteString(ImageProxyPath)
	b.WriteString("?url=")
	b.WriteString(url.QueryEscape(src))
	b.WriteString("&w=")
	b.WriteString(strconv.Itoa(width))
	b.WriteString("&q=")
	b.WriteString(strconv.Itoa(cfg.Quality))
	b.WriteString("&f=")
	b.WriteString(url.QueryEscape(string(cfg.Format)))
	return b.String()
}

// BuildSrcSet строит значение атрибута srcset по всем ширинам конфигурации
func BuildSrcSet(src string, cfg models.ImageConfig) string {
	entries := make([]string, 0, len(cfg.Sizes))
	for _, w := range cfg.Sizes {
		entries = append(entries, BuildOptimizedURL(src, w, cfg)+" "+strconv.Itoa(w)+"w")
	}
	return strings.Join(entries, ", ")
}
