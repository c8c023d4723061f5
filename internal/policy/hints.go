package policy

import (
	"strings"

	"perf-policy-service/internal/models"
)

// Значения параметра as для preload
const (
	AsScript = "script"
	AsStyle  = "style"
	AsFont   = "font"
	AsImage  = "image"
)

// PreloadLinks строит фрагменты Link заголовка с rel=preload
func PreloadLinks(resources []models.ResourceHint) string {
	links := make([]string, 0, len(resources))
	for _, r := range resources {
		link := "<" + r.Href + ">; rel=preload; as=" + r.As
		if r.MimeType != "" {
			link += "; type=" + r.MimeType
		}
		if r.CrossOrigin {
			link += "; crossorigin"
		}
		links = append(links, link)
	}
	return strings.Join(links, ", ")
}

// DNSPrefetchLinks строит фрагменты Link заголовка с rel=dns-prefetch
func DNSPrefetchLinks(domains []string) string {
	return joinLinks(domains, "dns-prefetch")
}

// ModulePreloadLinks строит фрагменты Link заголовка с rel=modulepreload
func ModulePreloadLinks(modules []string) string {
	return joinLinks(modules, "modulepreload")
}

func joinLinks(targets []string, rel string) string {
	links := make([]string, 0, len(targets))
	for _, t := range targets {
		links = append(links, "<"+t+">; rel="+rel)
	}
	return strings.Join(links, ", ")
}
