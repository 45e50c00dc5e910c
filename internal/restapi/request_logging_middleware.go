package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"campusapi.hyuabot.app/internal/logging"
	"campusapi.hyuabot.app/internal/metrics"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// NewRequestLoggingMiddleware creates middleware that tags each request
// with an ID, logs it and records metrics.
func NewRequestLoggingMiddleware(logger *slog.Logger, collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()

			requestLogger := logger.With(slog.String("request_id", requestID))
			ctx := logging.WithLogger(r.Context(), requestLogger)
			r = r.WithContext(ctx)

			w.Header().Set("X-Request-ID", requestID)
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			if collector != nil {
				collector.RequestsInFlight.Inc()
				defer collector.RequestsInFlight.Dec()
			}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			if collector != nil {
				collector.ObserveRequest(r.Method, r.URL.Path, wrapped.statusCode, duration)
			}

			logging.LogHTTPRequest(requestLogger,
				r.Method,
				r.URL.Path,
				wrapped.statusCode,
				float64(duration.Nanoseconds())/1e6,
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"))
		})
	}
}
