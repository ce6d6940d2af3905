package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"adcraft/internal/domain/campaign"
)

// CatalogHandler serves the read-only data a brief editor needs
type CatalogHandler struct {
	presets campaign.PresetRepository
	log     zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(presets campaign.PresetRepository, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{presets: presets, log: log}
}

// Health handles GET /api/health
func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	SendSuccess(w, "", map[string]string{"status": "ok"})
}

// Options handles GET /api/options
func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	SendSuccess(w, "", campaign.Options())
}

// ListPresets handles GET /api/presets
func (h *CatalogHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	presets, err := h.presets.List()
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list presets")
		SendError(w, "Failed to list presets", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, "", presets)
}

// GetPreset handles GET /api/presets/{id}
func (h *CatalogHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	preset, err := h.presets.GetByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, campaign.ErrPresetNotFound) {
			SendError(w, "Preset not found", http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Msg("failed to load preset")
		SendError(w, "Failed to load preset", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, "", preset)
}
