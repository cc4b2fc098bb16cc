package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

type ctxKey int

const (
	ctxKeyUserID ctxKey = iota
	ctxKeyRole
	ctxKeyRequestID
)

const (
	UserIDHeader = "X-User-ID"
	RoleHeader   = "X-User-Role"

	// RoleAdmin администратор салона: может записывать поверх занятого времени
	RoleAdmin = "admin"
)

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный X-User-ID"
)

// Auth требует заголовок X-User-ID (аутентификацию выполняет API gateway)
// и кладет пользователя и его роль в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
		ctx = context.WithValue(ctx, ctxKeyRole, r.Header.Get(RoleHeader))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает пользователя, установленного Auth
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(int64)
	return id, ok
}

// IsAdmin true, если пользователь прошел Auth с ролью admin
func IsAdmin(ctx context.Context) bool {
	role, _ := ctx.Value(ctxKeyRole).(string)
	return role == RoleAdmin
}
