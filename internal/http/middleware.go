package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/mauv0809/cricket-score/internal/metrics"
)

// RequestIDHeader carries the per-request id back to the client.
const RequestIDHeader = "X-Request-ID"

// requestMiddleware tags every request with an id, logs it and records its
// status and latency against the matched route pattern.
func requestMiddleware(m metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)
			logger := log.With("request_id", requestID)
			r = r.WithContext(log.WithContext(r.Context(), logger))

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routeLabel(r)
			elapsed := time.Since(start)
			m.ObserveRequest(route, status, elapsed.Seconds())
			logger.Info("request served", "method", r.Method, "url", r.URL.String(), "route", route,
				"status", status, "duration", elapsed)
		})
	}
}

// paramsMiddleware handles common query parameters like 'verbose'.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 'verbose' raises the level of this request's logger only.
		if r.URL.Query().Get("verbose") == "true" {
			logger := log.FromContext(r.Context()).With()
			logger.SetLevel(log.DebugLevel)
			r = r.WithContext(log.WithContext(r.Context(), logger))
		}
		next.ServeHTTP(w, r)
	})
}

// routeLabel is the registered pattern of the matched route, trailing slash
// included, or the raw path when nothing matched.
func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.RoutePatterns) == 0 {
		return r.URL.Path
	}
	return strings.Join(rctx.RoutePatterns, "")
}
