package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"adcraft/internal/delivery/validation"
	"adcraft/internal/domain/campaign"
)

var (
	errBodyTooLarge = errors.New("request body too large")
	errInvalidBody  = errors.New("invalid request body")
)

// decodeBrief reads a size capped JSON brief and checks it at the boundary
func decodeBrief(w http.ResponseWriter, r *http.Request, v *validation.BriefValidator, maxBytes int64) (campaign.Brief, error) {
	var brief campaign.Brief

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return brief, errBodyTooLarge
		}
		return brief, fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, &brief); err != nil {
		return brief, errInvalidBody
	}

	if err := v.Validate(brief); err != nil {
		return brief, err
	}
	return brief, nil
}
