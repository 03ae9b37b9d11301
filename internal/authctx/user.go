package authctx

import (
	"context"
)

type ctxKeyUserID struct{}

var userIDKey = ctxKeyUserID{}

// WithUserID сохраняет идентификатор пользователя из заголовка user в контексте
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext возвращает идентификатор пользователя, если он был установлен
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
