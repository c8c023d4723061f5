package policy

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perf-policy-service/internal/models"
)

func TestGetImageConfig(t *testing.T) {
	tests := []struct {
		class   AssetClass
		quality int
		sizes   []int
	}{
		{AssetHero, 85, []int{640, 768, 1024, 1280, 1920}},
		{AssetThumbnail, 80, []int{150, 300, 450}},
		{AssetContent, 85, []int{400, 600, 800, 1200}},
		{AssetAvatar, 90, []int{32, 48, 64, 96, 128}},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			cfg, err := GetImageConfig(tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.quality, cfg.Quality)
			assert.Equal(t, models.FormatWebP, cfg.Format)
			assert.Equal(t, tt.sizes, cfg.Sizes)
			assert.Equal(t, models.PlaceholderBlur, cfg.Placeholder)
		})
	}
}

func TestGetImageConfig_UnknownClass(t *testing.T) {
	_, err := GetImageConfig("banner")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAssetClass))
	assert.Contains(t, err.Error(), "banner")
}

func TestGetImageConfig_ReturnsFreshCopy(t *testing.T) {
	cfg, err := GetImageConfig(AssetHero)
	require.NoError(t, err)
	cfg.Sizes[0] = 1

	again, err := GetImageConfig(AssetHero)
	require.NoError(t, err)
	assert.Equal(t, 640, again.Sizes[0])
}

func TestBuildOptimizedURL(t *testing.T) {
	hero, err := GetImageConfig(AssetHero)
	require.NoError(t, err)
	assert.Equal(t, "/api/image-proxy?url=%2Fhero.jpg&w=1280&q=85&f=webp",
		BuildOptimizedURL("/hero.jpg", 1280, hero))

	content, err := GetImageConfig(AssetContent)
	require.NoError(t, err)
	assert.Equal(t, "/api/image-proxy?url=https%3A%2F%2Fexample.com%2Fimage.jpg&w=800&q=85&f=webp",
		BuildOptimizedURL("https://example.com/image.jpg", 800, content))
}

func TestBuildOptimizedURL_SpaceEncodedAsPlus(t *testing.T) {
	cfg, err := GetImageConfig(AssetThumbnail)
	require.NoError(t, err)

	u := BuildOptimizedURL("/test image with spaces.jpg", 150, cfg)
	assert.Contains(t, u, "url=%2Ftest+image+with+spaces.jpg")
	assert.NotContains(t, u, "%20")
}

func TestBuildSrcSet(t *testing.T) {
	cfg, err := GetImageConfig(AssetContent)
	require.NoError(t, err)

	srcSet := BuildSrcSet("/test-image.jpg", cfg)
	entries := strings.Split(srcSet, ", ")
	require.Len(t, entries, 4)

	assert.Equal(t, "/api/image-proxy?url=%2Ftest-image.jpg&w=400&q=85&f=webp 400w", entries[0])
	assert.Equal(t, "/api/image-proxy?url=%2Ftest-image.jpg&w=600&q=85&f=webp 600w", entries[1])
	assert.Equal(t, "/api/image-proxy?url=%2Ftest-image.jpg&w=800&q=85&f=webp 800w", entries[2])
	assert.Equal(t, "/api/image-proxy?url=%2Ftest-image.jpg&w=1200&q=85&f=webp 1200w", entries[3])
}

func TestBuildSrcSet_EmptySizes(t *testing.T) {
	assert.Equal(t, "", BuildSrcSet("/a.jpg", models.ImageConfig{Quality: 80, Format: models.FormatPNG}))
}
