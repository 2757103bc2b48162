package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
)

// middleware decorates an http.Handler.
type middleware func(http.Handler) http.Handler

// ApplyMiddleware wraps next so that a request passes through CORS, then
// request logging, then panic recovery before reaching next. Recovery sits
// inside logging so a recovered panic is logged with its 500 status.
func ApplyMiddleware(next http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	chain := []middleware{
		withCORS(allowedOrigins),
		withRequestLog(logger),
		withRecovery(logger),
	}

	h := next
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

// withCORS lets browser front-ends on allowedOrigins call the JSON API. The
// X-CSRF-Token header is allowed for the review form's script submissions.
func withCORS(allowedOrigins []string) middleware {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-CSRF-Token"},
		MaxAge:         600,
	})
	return c.Handler
}

// recorder remembers the status and body size written through it.
type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *recorder) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *recorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

func withRequestLog(logger *slog.Logger) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &recorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			level := slog.LevelInfo
			if rw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Int("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start).Round(time.Microsecond)),
			)
		})
	}
}

// headerGuard records whether the response header has been sent.
type headerGuard struct {
	http.ResponseWriter
	sent bool
}

func (g *headerGuard) WriteHeader(status int) {
	g.sent = true
	g.ResponseWriter.WriteHeader(status)
}

func (g *headerGuard) Write(b []byte) (int, error) {
	g.sent = true
	return g.ResponseWriter.Write(b)
}

// withRecovery turns a handler panic into a 500. When the handler already
// started the response, the status cannot change and the response is left
// as is.
func withRecovery(logger *slog.Logger) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g := &headerGuard{ResponseWriter: w}
			defer func() {
				if v := recover(); v != nil {
					logger.Error("panic in handler",
						"panic", v,
						"method", r.Method,
						"path", r.URL.Path,
						"response_started", g.sent,
					)
					if !g.sent {
						writeError(g, http.StatusInternalServerError, "internal server error")
					}
				}
			}()

			next.ServeHTTP(g, r)
		})
	}
}
