package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/paybridge/platform/logger"
)

// RequestLogger attaches the chi request id to the context logger fields.
// It must run after chimw.RequestID.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if reqID := chimw.GetReqID(ctx); reqID != "" {
			ctx = logger.ContextWithFields(ctx, logger.String("request_id", reqID))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
