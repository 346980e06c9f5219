package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
	msgForbidden    = "недостаточно прав"
)

type identityKey struct{}

// WithIdentity кладет пользователя в контекст
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// GetIdentity достает пользователя, положенного Auth
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}

// Auth проверяет Bearer токен и кладет domain.Identity в контекст запроса
func Auth(tokens TokenParser, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := tokens.ParseValidate(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
			if err != nil {
				log.Warn("Auth: %s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			role, err := domain.ParseRole(claims.Role)
			if err != nil {
				log.Warn("Auth: %s %s - token for %s has unknown role %q", r.Method, r.URL.Path, claims.Email, claims.Role)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			id := domain.Identity{Subject: claims.Sub, Email: claims.Email, Role: role}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireRole пропускает только пользователей с одной из ролей. Ставится после Auth
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := GetIdentity(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if _, ok := allowed[id.Role]; !ok {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
