package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"adcraft/internal/delivery/http/handler"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID reuses a sane incoming X-Request-ID or assigns a new UUID
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next(w, r.WithContext(handler.WithRequestID(r.Context(), id)))
	}
}
