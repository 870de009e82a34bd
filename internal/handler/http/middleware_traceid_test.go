package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joms1025/company-management-app/internal/logger"
)

func executeWithTraceID(h *Handler, inboundTraceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if inboundTraceID != "" {
		req.Header.Set(traceIDHeader, inboundTraceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_ReusesInboundID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr := executeWithTraceID(h, "my-custom-trace-id")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_MintsUUIDWhenAbsent(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr := executeWithTraceID(h, "")

	echoed := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, echoed)
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err)
}
