package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"adcraft/internal/application/creative"
	"adcraft/internal/application/export"
	"adcraft/internal/delivery/validation"
	"adcraft/internal/domain/campaign"
	"adcraft/internal/domain/concept"
)

// ConceptHandler serves concept generation and export
type ConceptHandler struct {
	creative creative.Service
	export   export.Service
	validate *validation.BriefValidator
	maxBytes int64
	log      zerolog.Logger
}

// ConceptResponse is the payload of a generated concept
type ConceptResponse struct {
	Concept     *concept.AdConcept `json:"concept"`
	Fingerprint string             `json:"fingerprint"`
}

// NewConceptHandler creates a new concept handler
func NewConceptHandler(creativeSvc creative.Service, exportSvc export.Service, maxBytes int64, log zerolog.Logger) *ConceptHandler {
	return &ConceptHandler{
		creative: creativeSvc,
		export:   exportSvc,
		validate: validation.NewBriefValidator(),
		maxBytes: maxBytes,
		log:      log,
	}
}

// Generate handles POST /api/concepts
func (h *ConceptHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c, ok := h.generate(w, r)
	if !ok {
		return
	}

	fingerprint := creative.Fingerprint(c)
	etag := `"` + fingerprint + `"`
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	SendSuccess(w, "Concept generated", ConceptResponse{
		Concept:     c,
		Fingerprint: fingerprint,
	})
}

// Export handles POST /api/concepts/export?format=text|googleads
func (h *ConceptHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := export.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatText
	}
	if format != export.FormatText && format != export.FormatGoogleAds {
		SendError(w, "Unknown export format", http.StatusBadRequest)
		return
	}

	c, ok := h.generate(w, r)
	if !ok {
		return
	}

	switch format {
	case export.FormatGoogleAds:
		SendSuccess(w, "Search ad draft", h.export.SearchAd(c))
	default:
		SendText(w, http.StatusOK, h.export.Text(c))
	}
}

// generate decodes the brief and runs the generator, answering the
// request itself on failure.
func (h *ConceptHandler) generate(w http.ResponseWriter, r *http.Request) (*concept.AdConcept, bool) {
	brief, err := decodeBrief(w, r, h.validate, h.maxBytes)
	if err != nil {
		switch {
		case errors.Is(err, errBodyTooLarge):
			SendError(w, "Request body too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, errInvalidBody), errors.Is(err, campaign.ErrValidation):
			SendError(w, err.Error(), http.StatusBadRequest)
		default:
			h.log.Error().Err(err).Str("request_id", GetRequestIDFromContext(r.Context())).Msg("failed to read brief")
			SendError(w, "Failed to read request", http.StatusBadRequest)
		}
		return nil, false
	}

	c, err := h.creative.Generate(brief)
	if err != nil {
		if errors.Is(err, campaign.ErrValidation) {
			SendError(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		h.log.Error().Err(err).Str("request_id", GetRequestIDFromContext(r.Context())).Msg("concept generation failed")
		SendError(w, "Failed to generate concept", http.StatusInternalServerError)
		return nil, false
	}

	return c, true
}

// etagMatches applies the weak comparison If-None-Match uses: "*" matches
// anything, and each listed tag matches with or without a W/ prefix.
func etagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}
