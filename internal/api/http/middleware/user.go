package middleware

import (
	"net/http"

	"github.com/shestoi/GoBigTech/warehouse/internal/authctx"
)

// UserHeader заголовок с идентификатором пользователя; значение не проверяется
const UserHeader = "user"

// WithUser — HTTP middleware: читает заголовок user, при отсутствии возвращает 400, иначе кладёт его в context
func WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserHeader)
		if userID == "" {
			http.Error(w, "Missing user header", http.StatusBadRequest)
			return
		}
		ctx := authctx.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
