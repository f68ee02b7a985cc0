package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/paybridge/platform/logger"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	var fields []logger.Field
	h := chimw.RequestID(RequestLogger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		fields = logger.FieldsFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, fields, 1)
	assert.Equal(t, "request_id", fields[0].Key)
	assert.Equal(t, "req-42", fields[0].String)
}

func TestRequestLoggerWithoutRequestID(t *testing.T) {
	t.Parallel()

	called := false
	h := RequestLogger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		assert.Empty(t, logger.FieldsFromContext(r.Context()))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}
