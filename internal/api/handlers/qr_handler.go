package handlers

import (
	"encoding/json"
	stderrors "errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"qrforge/internal/engine/colors"
	"qrforge/internal/engine/generator"
	"qrforge/internal/engine/payload"
	"qrforge/internal/engine/render"
	"qrforge/internal/engine/themes"
	"qrforge/internal/pkg/errors"
)

type QRHandler struct {
	gen *generator.Generator
}

func NewQRHandler(gen *generator.Generator) *QRHandler {
	return &QRHandler{gen: gen}
}

type qrRequest struct {
	Type    payload.ContentType `json:"type"`
	Fields  json.RawMessage     `json:"fields"`
	Label   string              `json:"label"`
	Color   string              `json:"color"`
	ThemeID string              `json:"theme_id"`
	Width   int                 `json:"width"`
	Margin  *int                `json:"margin"`
	Level   string              `json:"level"`
}

func decodeQRRequest(w http.ResponseWriter, r *http.Request) (generator.Request, bool) {
	var req qrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return generator.Request{}, false
	}

	if !payload.IsValidType(req.Type) {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Unknown content type", map[string]interface{}{
			"type":  req.Type,
			"valid": validTypeIDs(),
		})
		return generator.Request{}, false
	}

	content, err := payload.Parse(req.Type, req.Fields)
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
		return generator.Request{}, false
	}

	return generator.Request{
		Content: content,
		Label:   req.Label,
		Color:   req.Color,
		ThemeID: req.ThemeID,
		Width:   req.Width,
		Margin:  req.Margin,
		Level:   req.Level,
	}, true
}

func validTypeIDs() []payload.ContentType {
	types := payload.Types()
	ids := make([]payload.ContentType, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	return ids
}

// Payload returns the encoded payload without rendering it.
func (h *QRHandler) Payload(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeQRRequest(w, r)
	if !ok {
		return
	}

	errors.WriteJSON(w, http.StatusOK, map[string]string{
		"type":    string(req.Content.Type()),
		"payload": payload.Encode(req.Content),
	})
}

func (h *QRHandler) Preview(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeQRRequest(w, r)
	if !ok {
		return
	}

	res, err := h.gen.Preview(r.Context(), req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	dataURL := ""
	if res.PNG != nil {
		dataURL = render.DataURL(res.PNG)
	}

	errors.WriteJSON(w, http.StatusOK, struct {
		Payload string `json:"payload"`
		Color   string `json:"color"`
		ThemeID string `json:"theme_id"`
		DataURL string `json:"data_url"`
	}{
		Payload: res.Payload,
		Color:   res.Color,
		ThemeID: res.Theme.ID,
		DataURL: dataURL,
	})
}

// Download renders the PNG as an attachment and records it in history.
func (h *QRHandler) Download(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeQRRequest(w, r)
	if !ok {
		return
	}

	res, item, err := h.gen.Download(r.Context(), req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	name := req.Label
	if name == "" {
		name = "qrcode"
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PNG)))
	w.Header().Set("Content-Disposition", attachment(name+".png"))
	w.Header().Set("X-History-ID", item.ID)
	w.WriteHeader(http.StatusOK)
	w.Write(res.PNG)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// attachment builds a Content-Disposition header with a quoted filename.
// Non-ASCII names are RFC 2231 encoded.
func attachment(filename string) string {
	for _, r := range filename {
		if r < 0x20 || r > 0x7e {
			return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
		}
	}
	return `attachment; filename="` + quoteEscaper.Replace(filename) + `"`
}

func writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, colors.ErrInvalidColorFormat):
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidColor, err.Error(), nil)
	case stderrors.Is(err, render.ErrEmptyPayload):
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeEmptyPayload, "Nothing to encode: required field is empty", nil)
	case stderrors.Is(err, themes.ErrUnknownTheme),
		stderrors.Is(err, render.ErrInvalidSize),
		stderrors.Is(err, render.ErrInvalidMargin),
		stderrors.Is(err, render.ErrInvalidLevel):
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
	case stderrors.Is(err, render.ErrRenderFailed):
		errors.WriteError(w, http.StatusUnprocessableEntity, errors.ErrCodeRenderFailed, err.Error(), nil)
	default:
		log.Error().Err(err).Msg("qr generation failed")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Internal server error", nil)
	}
}
