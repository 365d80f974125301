package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	apiContext "qrforge/internal/api/context"
	"qrforge/internal/engine/generator"
	"qrforge/internal/engine/history"
	"qrforge/internal/engine/payload"
	"qrforge/internal/engine/render"
	"qrforge/internal/pkg/errors"
)

type HistoryHandler struct {
	service *history.Service
	gen     *generator.Generator
	now     func() time.Time
}

func NewHistoryHandler(service *history.Service, gen *generator.Generator) *HistoryHandler {
	return &HistoryHandler{service: service, gen: gen, now: time.Now}
}

type historyEntry struct {
	history.Item
	Age string `json:"age"`
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Load(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load history")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load history", nil)
		return
	}

	now := h.now()
	entries := make([]historyEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, historyEntry{Item: item, Age: history.FormatAge(item.Timestamp, now)})
	}

	errors.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": entries,
		"total": len(entries),
		"limit": history.MaxItems,
	})
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.lookup(w, r)
	if !ok {
		return
	}
	errors.WriteJSON(w, http.StatusOK, historyEntry{Item: item, Age: history.FormatAge(item.Timestamp, h.now())})
}

// Image serves the PNG stored with the item.
func (h *HistoryHandler) Image(w http.ResponseWriter, r *http.Request) {
	item, ok := h.lookup(w, r)
	if !ok {
		return
	}

	png, err := render.DecodeDataURL(item.DataURL)
	if err != nil {
		log.Warn().Err(err).Str("id", item.ID).Msg("history item has no usable image")
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "History item has no image", nil)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Reuse rebuilds the item's content and renders it again so the client can
// load it back into the editor. Nothing is written to history.
func (h *HistoryHandler) Reuse(w http.ResponseWriter, r *http.Request) {
	ps := r.Context().Value(apiContext.Params).(httprouter.Params)

	req, res, err := h.gen.Reuse(r.Context(), ps.ByName("id"))
	switch {
	case stderrors.Is(err, history.ErrNotFound):
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "History item not found", nil)
		return
	case stderrors.Is(err, history.ErrNotReusable):
		errors.WriteError(w, http.StatusUnprocessableEntity, errors.ErrCodeInvalidInput, err.Error(), nil)
		return
	case err != nil:
		writeGenerateError(w, err)
		return
	}

	fields, err := payload.Fields(req.Content)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode reused fields")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Internal server error", nil)
		return
	}

	dataURL := ""
	if res.PNG != nil {
		dataURL = render.DataURL(res.PNG)
	}

	errors.WriteJSON(w, http.StatusOK, struct {
		Type    payload.ContentType `json:"type"`
		Fields  json.RawMessage     `json:"fields"`
		Payload string              `json:"payload"`
		Label   string              `json:"label"`
		Color   string              `json:"color"`
		ThemeID string              `json:"theme_id"`
		DataURL string              `json:"data_url"`
	}{
		Type:    req.Content.Type(),
		Fields:  fields,
		Payload: res.Payload,
		Label:   req.Label,
		Color:   res.Color,
		ThemeID: res.Theme.ID,
		DataURL: dataURL,
	})
}

func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ps := r.Context().Value(apiContext.Params).(httprouter.Params)

	if err := h.service.Remove(r.Context(), ps.ByName("id")); err != nil {
		log.Error().Err(err).Msg("failed to remove history item")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to remove history item", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		log.Error().Err(err).Msg("failed to clear history")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to clear history", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) lookup(w http.ResponseWriter, r *http.Request) (history.Item, bool) {
	ps := r.Context().Value(apiContext.Params).(httprouter.Params)

	item, err := h.service.Get(r.Context(), ps.ByName("id"))
	if stderrors.Is(err, history.ErrNotFound) {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "History item not found", nil)
		return history.Item{}, false
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to load history item")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load history item", nil)
		return history.Item{}, false
	}
	return item, true
}
