package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fogleman/gg"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
	"qrforge/internal/engine/colors"
)

type Stats struct {
	Renders   uint64 `json:"renders"`
	Failures  uint64 `json:"failures"`
	CacheHits uint64 `json:"cache_hits"`
}

type Renderer struct {
	cache *cache.Cache

	renders   atomic.Uint64
	failures  atomic.Uint64
	cacheHits atomic.Uint64
}

// NewRenderer creates a renderer that caches PNGs for ttl. A zero ttl
// disables caching.
func NewRenderer(ttl, cleanupInterval time.Duration) *Renderer {
	r := &Renderer{}
	if ttl > 0 {
		r.cache = cache.New(ttl, cleanupInterval)
	}
	return r
}

// PNG draws payload as a width x width PNG. Whitespace-only payloads are
// treated as empty and never rendered.
func (r *Renderer) PNG(payload string, opts Options) ([]byte, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, ErrEmptyPayload
	}

	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	key := opts.cacheKey(payload)
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			r.cacheHits.Add(1)
			return cached.([]byte), nil
		}
	}

	png, err := draw(payload, opts)
	if err != nil {
		r.failures.Add(1)
		log.Warn().Err(err).Int("payload_len", len(payload)).Str("level", opts.Level).Msg("render failed")
		return nil, err
	}
	r.renders.Add(1)

	if r.cache != nil {
		r.cache.SetDefault(key, png)
	}
	return png, nil
}

func (r *Renderer) Stats() Stats {
	return Stats{
		Renders:   r.renders.Load(),
		Failures:  r.failures.Load(),
		CacheHits: r.cacheHits.Load(),
	}
}

func draw(payload string, opts Options) ([]byte, error) {
	level, err := recoveryLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	qr, err := qrcode.New(payload, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	qr.DisableBorder = true
	bitmap := qr.Bitmap()

	n := len(bitmap)
	modulePx := opts.Width / (n + 2*opts.Margin)
	if modulePx < 1 {
		return nil, fmt.Errorf("%w: width %d too small for %d modules", ErrRenderFailed, opts.Width, n)
	}
	offset := (opts.Width - modulePx*n) / 2

	dark, _ := colors.ParseHex(opts.Dark)
	light, _ := colors.ParseHex(opts.Light)

	dc := gg.NewContext(opts.Width, opts.Width)
	dc.SetColor(light.Color())
	dc.Clear()

	dc.SetColor(dark.Color())
	size := float64(modulePx)
	for y, row := range bitmap {
		for x, on := range row {
			if on {
				dc.DrawRectangle(float64(offset+x*modulePx), float64(offset+y*modulePx), size, size)
			}
		}
	}
	dc.Fill()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}
