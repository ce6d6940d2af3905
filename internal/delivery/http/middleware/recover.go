package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"adcraft/internal/delivery/http/handler"
)

// Recover turns a panic in a handler into a 500 response
func Recover(log zerolog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					log.Error().
						Str("request_id", handler.GetRequestIDFromContext(r.Context())).
						Interface("panic", v).
						Bytes("stack", debug.Stack()).
						Msg("handler panicked")
					handler.SendError(w, "Internal server error", http.StatusInternalServerError)
				}
			}()

			next(w, r)
		}
	}
}
