package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/delivery/http/handler"
)

func ok(w http.ResponseWriter, r *http.Request) {
	handler.SendSuccess(w, "", map[string]string{"request_id": handler.GetRequestIDFromContext(r.Context())})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"wildcard echoes origin", []string{"*"}, "https://app.pl", "https://app.pl"},
		{"wildcard without origin", []string{"*"}, "", "*"},
		{"listed origin", []string{"https://a.pl", "https://b.pl"}, "https://b.pl", "https://b.pl"},
		{"unlisted origin", []string{"https://a.pl"}, "https://evil.pl", ""},
		{"subdomain wildcard", []string{"*.greenframe.pl"}, "https://studio.greenframe.pl", "https://studio.greenframe.pl"},
		{"subdomain wildcard needs a dot", []string{"*.greenframe.pl"}, "https://evilgreenframe.pl", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			CORSFor(tt.origins)(ok)(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	next := func(w http.ResponseWriter, r *http.Request) { called = true }

	rec := httptest.NewRecorder()
	CORS(next)(rec, httptest.NewRequest(http.MethodOptions, "/api/concepts", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "ETag")
}

func TestRequestID(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequestID(ok)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), id)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		RequestID(ok)(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("oversized replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, string(bytes.Repeat([]byte("x"), maxRequestIDLength+1)))
		rec := httptest.NewRecorder()
		RequestID(ok)(rec, req)

		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	teapot := func(w http.ResponseWriter, r *http.Request) {
		handler.SendError(w, "nope", http.StatusTeapot)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/concepts", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	RequestID(AccessLog(log)(teapot))(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/concepts", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Greater(t, entry["bytes"], float64(0))
}

func TestAccessLogDefaultsToOK(t *testing.T) {
	var buf bytes.Buffer
	silent := func(w http.ResponseWriter, r *http.Request) {}

	AccessLog(zerolog.New(&buf))(silent)(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	boom := func(w http.ResponseWriter, r *http.Request) {
		panic("creative: lexicon has no voice for tone \"gothic\"")
	}

	rec := httptest.NewRecorder()
	Recover(zerolog.New(&buf))(boom)(rec, httptest.NewRequest(http.MethodPost, "/api/concepts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.Contains(t, buf.String(), "lexicon has no voice")
}

func TestRecoverRepanicsOnAbort(t *testing.T) {
	abort := func(w http.ResponseWriter, r *http.Request) { panic(http.ErrAbortHandler) }

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		Recover(zerolog.Nop())(abort)(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
