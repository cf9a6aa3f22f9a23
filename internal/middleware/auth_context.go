package middleware

import (
	"context"
	"net/http"
	"strings"

	"pawbuddy-client/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// SessionCookie es la cookie que emite el login.
const SessionCookie = "pawbuddy_session"

// AuthContext:
// - Si viene la cookie de sesión y el resolver la reconoce => setea claims.
// - Si no hay claims, el request sigue igual; los handlers (o RequireUser /
//   RequireAdmin) deciden si exigen auth.
func AuthContext(resolver auth.SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if resolver == nil {
				next.ServeHTTP(w, r)
				return
			}

			c, err := r.Cookie(SessionCookie)
			if err != nil || strings.TrimSpace(c.Value) == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := resolver.Resolve(r.Context(), c.Value)
			if err != nil {
				// Cookie vencida o desconocida: se trata como anónimo.
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
