package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/shop-service/pkg/session"
)

const SessionCookie = "session_token"

type TokenParser interface {
	Parse(token string) (session.Identity, error)
}

// Authenticate attaches the session identity to the request context.
// Requests without a valid token pass through anonymously.
func Authenticate(logger *slog.Logger, parser TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := parser.Parse(token)
			if err != nil {
				logger.DebugContext(r.Context(), "rejected session token", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithIdentity(r.Context(), id)))
		})
	}
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}
