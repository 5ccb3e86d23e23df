package router

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Middleware wraps a Handler with additional behavior.
type Middleware func(next Handler) Handler

// Chain combines multiple middlewares into one; the first middleware is
// the outermost wrapper.
func Chain(middlewares ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// statusRecorder captures the status code a handler writes.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs every handled request with its status code and
// duration at debug level.
func LoggingMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(w http.ResponseWriter, r *http.Request) error {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			err := next(rec, r)
			log.WithField("caller", "router").Debugf("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
			return err
		}
	}
}

// RateLimitMiddleware limits requests with a token bucket. A rps of 0 or
// below disables limiting; exhausted buckets answer 429.
func RateLimitMiddleware(rps float64, burst int) Middleware {
	if rps <= 0 {
		return func(next Handler) Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next Handler) Handler {
		return func(w http.ResponseWriter, r *http.Request) error {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return nil
			}
			return next(w, r)
		}
	}
}
