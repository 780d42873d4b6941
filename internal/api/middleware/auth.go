package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
)

type userIDContextKey struct{}

const userIDHeader = "X-User-ID"

const msgMissingUserID = "требуется заголовок X-User-ID"

// Auth проверяет наличие заголовка X-User-ID и кладет ID пользователя
// в контекст запроса. Аутентификацию выполняет внешний шлюз, здесь
// только извлечение идентификатора
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext извлекает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
