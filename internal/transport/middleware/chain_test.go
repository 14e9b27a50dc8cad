package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pet-health-journal/internal/config"
	"github.com/heartmarshall/pet-health-journal/pkg/ctxutil"
)

func TestChain_OuterFirstAndSkipsNil(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(tag("recovery"), nil, tag("request_id"), tag("logger"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "journal")
		}),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/subjects/lucky/daily/2025-11-20", nil))

	assert.Equal(t, []string{"recovery", "request_id", "logger", "journal"}, order)
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	h := Chain()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// stackFixture serves the journal middleware stack over a handler that
// panics on /boom and otherwise echoes the request id it sees.
type stackFixture struct {
	handler http.Handler
	logs    *bytes.Buffer
}

func newStackFixture(t *testing.T, writesPerMinute int) stackFixture {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	rl := NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)

	cors := config.CORSConfig{
		AllowedOrigins: "https://journal.example",
		AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowedHeaders: "Content-Type",
		MaxAge:         600,
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			panic("store exploded")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"request_id":"` + ctxutil.RequestIDFromCtx(r.Context()) + `"}`)) //nolint:errcheck
	})

	return stackFixture{
		handler: Stack(logger, cors, rl, writesPerMinute)(inner),
		logs:    logs,
	}
}

func (f stackFixture) do(method, path, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "10.0.0.7:5123"
	req.Header.Set("Origin", "https://journal.example")
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f stackFixture) entries(t *testing.T) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(f.logs.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func TestStack_PanicBecomesJSON500WithRequestID(t *testing.T) {
	t.Parallel()
	f := newStackFixture(t, 0)

	rec := f.do(http.MethodGet, "/boom", "req-panic-1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Equal(t, "req-panic-1", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "https://journal.example", rec.Header().Get("Access-Control-Allow-Origin"))

	entries := f.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "panic recovered", entries[0]["msg"])
	assert.Equal(t, "req-panic-1", entries[0]["request_id"])
}

func TestStack_LogsEveryRequestWithItsID(t *testing.T) {
	t.Parallel()
	f := newStackFixture(t, 0)

	rec := f.do(http.MethodGet, "/api/subjects/lucky/daily/2025-11-20", "")
	require.Equal(t, http.StatusOK, rec.Code)

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.JSONEq(t, `{"request_id":"`+id+`"}`, rec.Body.String())
	assert.Equal(t, "https://journal.example", rec.Header().Get("Access-Control-Allow-Origin"))

	entries := f.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "http.request", entries[0]["msg"])
	assert.Equal(t, id, entries[0]["request_id"])
}

func TestStack_WriteLimitInsideLoggerAndCORS(t *testing.T) {
	t.Parallel()
	f := newStackFixture(t, 2)

	const path = "/api/subjects/lucky/toilet"
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, f.do(http.MethodPost, path, "").Code, "write %d", i)
	}

	rec := f.do(http.MethodPost, path, "req-limited")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "req-limited", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "https://journal.example", rec.Header().Get("Access-Control-Allow-Origin"))

	// Reads are never limited.
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, path, "").Code)

	entries := f.entries(t)
	require.Len(t, entries, 4)
	last := entries[2]
	assert.Equal(t, "req-limited", last["request_id"])
	assert.EqualValues(t, http.StatusTooManyRequests, last["status"])
}

func TestStack_NoLimiterWhenDisabled(t *testing.T) {
	t.Parallel()
	f := newStackFixture(t, 0)

	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, f.do(http.MethodPut, "/api/subjects/lucky/daily/2025-11-20", "").Code)
	}
}
