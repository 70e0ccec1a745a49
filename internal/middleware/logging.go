package middleware

import (
	"net/http"
	"time"

	"rebookz-admin/internal/logger"

	"go.uber.org/zap"
)

// responseRecorder captures the status code and the signed-in admin.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	actor      string
}

func (r *responseRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) SetActor(actor string) { r.actor = actor }

func (r *responseRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// LoggingMiddleware logs every HTTP request. It must run inside
// logger.RequestIDMiddleware so entries carry the request id.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.statusCode),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", clientIP(r)),
		}
		if rec.actor != "" {
			fields = append(fields, zap.String("actor", rec.actor))
		}

		log := logger.FromCtx(r.Context())
		switch {
		case rec.statusCode >= 500:
			log.Error("HTTP request", fields...)
		case rec.statusCode >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	})
}
