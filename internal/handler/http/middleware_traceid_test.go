package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func executeWithTraceID(h *Handler, incoming string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

// ---- Tests ----

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(t, &buf)

	rr := executeWithTraceID(h, "trace-123")

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(t, &buf)

	rr := executeWithTraceID(h, "")

	traceID := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h, _ := newTestHandler(t)

	first := executeWithTraceID(h, "").Header().Get(traceIDHeader)
	second := executeWithTraceID(h, "").Header().Get(traceIDHeader)

	assert.NotEqual(t, first, second)
}

func TestWithTraceID_DoesNotLeakIntoParentLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(t, &buf)

	executeWithTraceID(h, "trace-abc")
	buf.Reset()
	h.logger.Info().Msg("outside request")

	assert.NotContains(t, buf.String(), "trace_id")
}
