package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// ReadinessFunc проверяет готовность зависимостей сервиса (например ping MongoDB)
type ReadinessFunc func(ctx context.Context) error

const readinessTimeout = 2 * time.Second

type status struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Handler возвращает handler для /health.
// 200 {"status":"ok"}, если readiness == nil или вернула nil; иначе 503 {"status":"not ready"}.
func Handler(readiness ReadinessFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if readiness != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			err := readiness(ctx)
			cancel()
			if err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(status{Status: "not ready", Error: err.Error()})
				return
			}
		}

		_ = json.NewEncoder(w).Encode(status{Status: "ok"})
	}
}
