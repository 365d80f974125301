package handlers

import (
	"net/http"

	"qrforge/internal/engine/payload"
	"qrforge/internal/engine/themes"
	"qrforge/internal/pkg/errors"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Types(w http.ResponseWriter, r *http.Request) {
	errors.WriteJSON(w, http.StatusOK, map[string]interface{}{"types": payload.Types()})
}

func (h *CatalogHandler) Themes(w http.ResponseWriter, r *http.Request) {
	errors.WriteJSON(w, http.StatusOK, map[string]interface{}{"themes": themes.All()})
}
