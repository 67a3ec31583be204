package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/identity"
)

const (
	msgMissingToken = "требуется ID-токен"
	msgInvalidToken = "некорректный ID-токен"
	msgTokenExpired = "срок действия ID-токена истек"
)

type profileKey struct{}

// TokenVerifier проверяет ID-токен пользователя
type TokenVerifier interface {
	Verify(token string) (*identity.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет "Authorization: Bearer <ID-токен>" и кладет профиль в контекст
// Истекший токен - 403, любой другой невалидный - 401
func Auth(verifier TokenVerifier, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			profile, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("%s %s - id token rejected: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, identity.ErrTokenExpired) {
					handlers.RespondForbidden(w, msgTokenExpired)
					return
				}
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithProfile(r.Context(), profile)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || len(token) > domain.MaxTokenLength {
		return "", false
	}
	return token, true
}

// WithProfile кладет профиль пользователя в контекст
func WithProfile(ctx context.Context, p *identity.Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

// ProfileFromContext достает профиль, положенный Auth
func ProfileFromContext(ctx context.Context) (*identity.Profile, bool) {
	p, ok := ctx.Value(profileKey{}).(*identity.Profile)
	return p, ok && p != nil
}
