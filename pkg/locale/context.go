package locale

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey struct{}

// WithLocale stores a resolved locale in the context.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, contextKey{}, locale)
}

// FromContext returns the locale stored in ctx, or Default when none is set.
func FromContext(ctx context.Context) string {
	if l, ok := Lookup(ctx); ok {
		return l
	}
	return Default
}

// Lookup returns the locale stored in ctx and whether one was set.
func Lookup(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	l, _ := ctx.Value(contextKey{}).(string)
	return l, l != ""
}

// LoggerExtractor adds the request locale to log records as "locale".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if l, ok := Lookup(ctx); ok {
			return slog.String("locale", l), true
		}
		return slog.Attr{}, false
	}
}

// Middleware negotiates the Accept-Language header and stores the matching
// locale in the request context. Requests without a supported language
// get fallback, or keep no locale when fallback is empty.
func Middleware(fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l, ok := ForLanguage(FromAcceptLanguage(r.Header.Get("Accept-Language")))
			if !ok {
				l = fallback
			}
			if l != "" {
				r = r.WithContext(WithLocale(r.Context(), l))
			}
			next.ServeHTTP(w, r)
		})
	}
}
