package handlers

import (
	"fmt"
	"net/http"

	"qrforge/internal/engine/render"
)

type StatsSource interface {
	Stats() render.Stats
}

type MetricsHandler struct {
	renderer StatsSource
}

func NewMetricsHandler(renderer StatsSource) *MetricsHandler {
	return &MetricsHandler{renderer: renderer}
}

// Export writes counters in the Prometheus text format.
func (h *MetricsHandler) Export(w http.ResponseWriter, r *http.Request) {
	stats := h.renderer.Stats()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP qrforge_up Is the server up\n")
	fmt.Fprintf(w, "# TYPE qrforge_up gauge\n")
	fmt.Fprintf(w, "qrforge_up 1\n")

	counter(w, "qrforge_renders_total", "PNG renders performed", stats.Renders)
	counter(w, "qrforge_render_failures_total", "PNG renders that failed", stats.Failures)
	counter(w, "qrforge_render_cache_hits_total", "Renders served from cache", stats.CacheHits)
}

func counter(w http.ResponseWriter, name, help string, v uint64) {
	fmt.Fprintf(w, "# HELP %s %s\n", name, help)
	fmt.Fprintf(w, "# TYPE %s counter\n", name)
	fmt.Fprintf(w, "%s %d\n", name, v)
}
