package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"perf-policy-service/internal/models"
)

func TestPreloadLinks(t *testing.T) {
	resources := []models.ResourceHint{
		{Href: "/styles.css", As: AsStyle},
		{Href: "/script.js", As: AsScript},
		{Href: "/font.woff2", As: AsFont, MimeType: "font/woff2", CrossOrigin: true},
	}

	assert.Equal(t,
		"</styles.css>; rel=preload; as=style, </script.js>; rel=preload; as=script, </font.woff2>; rel=preload; as=font; type=font/woff2; crossorigin",
		PreloadLinks(resources))
}

func TestPreloadLinks_CrossOriginWithoutType(t *testing.T) {
	links := PreloadLinks([]models.ResourceHint{{Href: "/hero.avif", As: AsImage, CrossOrigin: true}})
	assert.Equal(t, "</hero.avif>; rel=preload; as=image; crossorigin", links)
}

func TestDNSPrefetchLinks(t *testing.T) {
	links := DNSPrefetchLinks([]string{"https://fonts.googleapis.com", "https://api.example.com"})
	assert.Equal(t, "<https://fonts.googleapis.com>; rel=dns-prefetch, <https://api.example.com>; rel=dns-prefetch", links)
}

func TestModulePreloadLinks(t *testing.T) {
	links := ModulePreloadLinks([]string{"/chunk-123.js", "/chunk-456.js"})
	assert.Equal(t, "</chunk-123.js>; rel=modulepreload, </chunk-456.js>; rel=modulepreload", links)
}

func TestLinks_EmptyInput(t *testing.T) {
	assert.Empty(t, PreloadLinks(nil))
	assert.Empty(t, DNSPrefetchLinks(nil))
	assert.Empty(t, ModulePreloadLinks([]string{}))
}
