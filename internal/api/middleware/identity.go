package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/royalrinse/booking-service/internal/api/handlers"
	"github.com/royalrinse/booking-service/internal/domain"
)

type identityKey struct{}

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя
	// Проставляется внешним gateway после проверки сессии
	HeaderUserID = "X-User-ID"

	// HeaderAdminToken заголовок с административным токеном
	HeaderAdminToken = "X-Admin-Token"
)

const (
	msgMissingUserID = "missing or invalid X-User-ID header"
	msgInvalidToken  = "invalid admin token"
)

// Auth извлекает идентичность пользователя из заголовка X-User-ID
// и помещает ее в контекст запроса. Запросы без валидного заголовка
// отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		actor := domain.Actor{UserID: userID}
		ctx := context.WithValue(r.Context(), identityKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuth проверяет административный токен из заголовка X-Admin-Token
// и помечает идентичность запроса как администраторскую. Сравнение токена
// выполняется за постоянное время
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}

			actor := IdentityFromContext(r.Context())
			actor.IsAdmin = true
			ctx := context.WithValue(r.Context(), identityKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext возвращает идентичность запроса из контекста.
// Для запросов вне Auth/AdminAuth возвращает нулевую идентичность
func IdentityFromContext(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(identityKey{}).(domain.Actor)
	return actor
}
