package middleware

import (
	"net/http"
	"time"
)

// AccessLog пишет строку на каждый запрос с X-Request-ID; ставится после RequestID.
// Ответы 5xx пишутся как Warn.
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			format := "HTTP %s %s - status=%d, duration=%s, request_id=%s"
			args := []interface{}{r.Method, r.URL.Path, rec.status, time.Since(start), RequestIDFromContext(r.Context())}
			if rec.status >= http.StatusInternalServerError {
				logger.Warn(format, args...)
				return
			}
			logger.Info(format, args...)
		})
	}
}
