package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"qrforge/internal/engine/colors"
	"qrforge/internal/engine/history"
	"qrforge/internal/engine/payload"
	"qrforge/internal/engine/render"
	"qrforge/internal/engine/themes"
)

type Request struct {
	Content payload.Content
	Label   string
	// Color is the requested foreground. Empty means the theme default.
	Color string
	// ThemeID selects the theme. Empty means the active theme.
	ThemeID string
	Width   int
	Margin  *int
	Level   string
}

type Result struct {
	Payload string
	Color   string // color actually used for the dark modules
	Theme   themes.Theme
	PNG     []byte // nil when the payload is empty
}

type Generator struct {
	renderer       *render.Renderer
	history        *history.Service
	prefs          *themes.Preferences
	defaults       render.Options
	thumbnailWidth int
}

func New(renderer *render.Renderer, hist *history.Service, prefs *themes.Preferences, defaults render.Options, thumbnailWidth int) *Generator {
	return &Generator{
		renderer:       renderer,
		history:        hist,
		prefs:          prefs,
		defaults:       defaults,
		thumbnailWidth: thumbnailWidth,
	}
}

// Preview encodes and renders req. An empty payload is not an error: the
// result simply carries no image.
func (g *Generator) Preview(ctx context.Context, req Request) (Result, error) {
	theme, err := g.resolveTheme(ctx, req.ThemeID)
	if err != nil {
		return Result{}, err
	}

	requested := req.Color
	if requested == "" {
		requested = theme.QRDefault
	}
	safe, err := colors.Safe(requested, theme.QRDefault)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Payload: payload.Encode(req.Content),
		Color:   safe,
		Theme:   theme,
	}

	opts := g.options(req, safe)
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	png, err := g.renderer.PNG(res.Payload, opts)
	if errors.Is(err, render.ErrEmptyPayload) {
		return res, nil
	}
	if err != nil {
		return Result{}, err
	}
	res.PNG = png
	return res, nil
}

// Download renders req and records it in history.
func (g *Generator) Download(ctx context.Context, req Request) (Result, history.Item, error) {
	res, err := g.Preview(ctx, req)
	if err != nil {
		return Result{}, history.Item{}, err
	}
	if res.PNG == nil {
		return Result{}, history.Item{}, render.ErrEmptyPayload
	}

	thumb, err := render.Thumbnail(res.PNG, g.thumbnailWidth)
	if err != nil {
		return Result{}, history.Item{}, err
	}

	color := req.Color
	if color == "" {
		color = res.Theme.QRDefault
	}

	item, err := g.history.Save(ctx, history.Draft{
		Content:   req.Content,
		Label:     req.Label,
		Color:     color,
		Theme:     res.Theme.ID,
		DataURL:   render.DataURL(res.PNG),
		Thumbnail: render.DataURL(thumb),
	})
	if err != nil {
		return Result{}, history.Item{}, err
	}

	log.Info().Str("id", item.ID).Str("type", string(item.Type)).Str("theme", item.Theme).Msg("qr code downloaded")
	return res, item, nil
}

// Reuse rebuilds the content of history item id and renders it again with
// the item's color and theme. A theme that has since left the catalog
// falls back to the active one.
func (g *Generator) Reuse(ctx context.Context, id string) (Request, Result, error) {
	item, err := g.history.Get(ctx, id)
	if err != nil {
		return Request{}, Result{}, err
	}

	content, err := history.Reuse(item)
	if err != nil {
		return Request{}, Result{}, err
	}

	req := Request{
		Content: content,
		Label:   item.Label,
		Color:   item.Color,
	}
	if _, ok := themes.Lookup(item.Theme); ok {
		req.ThemeID = item.Theme
	}

	res, err := g.Preview(ctx, req)
	if err != nil {
		return Request{}, Result{}, err
	}
	return req, res, nil
}

func (g *Generator) resolveTheme(ctx context.Context, id string) (themes.Theme, error) {
	if id == "" {
		return g.prefs.Active(ctx)
	}
	t, ok := themes.Lookup(id)
	if !ok {
		return themes.Theme{}, fmt.Errorf("%w: %q", themes.ErrUnknownTheme, id)
	}
	return t, nil
}

func (g *Generator) options(req Request, dark string) render.Options {
	opts := g.defaults
	if opts.Width == 0 {
		opts.Width = render.DefaultWidth
	}
	if opts.Level == "" {
		opts.Level = render.DefaultLevel
	}
	opts.Dark = dark
	opts.Light = render.DefaultLight
	if req.Width != 0 {
		opts.Width = req.Width
	}
	if req.Margin != nil {
		opts.Margin = *req.Margin
	}
	if req.Level != "" {
		opts.Level = req.Level
	}
	return opts
}
