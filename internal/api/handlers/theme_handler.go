package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"qrforge/internal/engine/themes"
	"qrforge/internal/pkg/errors"
)

type ThemeHandler struct {
	prefs *themes.Preferences
}

func NewThemeHandler(prefs *themes.Preferences) *ThemeHandler {
	return &ThemeHandler{prefs: prefs}
}

func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	theme, err := h.prefs.Active(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to read theme preference")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to read theme", nil)
		return
	}
	errors.WriteJSON(w, http.StatusOK, theme)
}

func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ThemeID string `json:"theme_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}

	theme, err := h.prefs.SetActive(r.Context(), req.ThemeID)
	if stderrors.Is(err, themes.ErrUnknownTheme) {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), map[string]string{"theme_id": req.ThemeID})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to store theme preference")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to store theme", nil)
		return
	}

	log.Info().Str("theme", theme.ID).Msg("theme changed")
	errors.WriteJSON(w, http.StatusOK, theme)
}
