package httpadapter

import (
	"ad-strategy/internal/core/port"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	headerRequestID   = "X-Request-ID"
	headerProcessTime = "X-Process-Time"
)

// requestContext tags the request with an id, taken from X-Request-ID or
// minted, and reports it back together with the processing time.
func (h *Handler) requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()[:8]
		}
		w.Header().Set(headerRequestID, id)

		tw := &timedWriter{ResponseWriter: w, start: time.Now(), status: http.StatusOK}
		next.ServeHTTP(tw, r.WithContext(port.WithRequestID(r.Context(), id)))
		tw.stamp()

		h.logger.Info("http request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", tw.status),
			slog.Duration("duration", time.Since(tw.start)),
		)
	})
}

// rateLimit rejects requests once the process-wide token bucket is empty.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter != nil && !h.limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// timedWriter sets X-Process-Time right before the header is sent.
type timedWriter struct {
	http.ResponseWriter
	start   time.Time
	status  int
	stamped bool
}

func (w *timedWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	elapsed := time.Since(w.start).Seconds()
	w.Header().Set(headerProcessTime, strconv.FormatFloat(elapsed, 'f', 4, 64))
}

func (w *timedWriter) WriteHeader(code int) {
	if !w.stamped {
		w.status = code
	}
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *timedWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
