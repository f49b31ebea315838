package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vishubh/bizbilling/app/services"
	"github.com/vishubh/bizbilling/app/utils/sessions"
)

type contextKey string

const (
	CartCountKey contextKey = "cart_count"
	ThemeKey     contextKey = "theme"
)

// PageContextMiddleware exposes the session cart size and theme to the
// templates through the request context.
func PageContextMiddleware(store sessions.Store, themes *services.ThemeService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cart := store.GetCart(r)

			ctx := context.WithValue(r.Context(), CartCountKey, len(cart.Items))
			ctx = context.WithValue(ctx, ThemeKey, themes.Current(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestLogMiddleware logs every request with method, path, status and
// duration.
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
