package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	platformhealth "github.com/shestoi/GoBigTech/warehouse/platform/health/http"
	platformobservability "github.com/shestoi/GoBigTech/warehouse/platform/observability"

	"github.com/shestoi/GoBigTech/warehouse/internal/api/http/middleware"
)

// NewRouter создаёт и настраивает HTTP роутер для Warehouse Service
// readiness - функция проверки готовности (ping MongoDB), nil означает "всегда готов".
// logger используется для observability HTTP middleware (trace_id в логах), может быть nil.
func NewRouter(handler *Handler, readiness platformhealth.ReadinessFunc, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()

	// CORS для всех маршрутов: любые origin и методы, preflight кэшируется на час
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         3600,
	}))

	if logger != nil {
		router.Use(platformobservability.HTTPMiddleware("warehouse", logger))
	}

	router.Get("/ping", handler.Ping)

	// /storage* требуют заголовок user (middleware возвращает 400 при отсутствии)
	router.Route("/storage", func(r chi.Router) {
		r.Use(middleware.WithUser)
		r.Get("/tags/list", handler.ListTags)
		r.Get("/list", handler.ListItems)
		r.Post("/", handler.CreateItem)
		r.Get("/{id}", handler.GetItem)
		r.Put("/{id}", handler.UpdateQuantity)
		r.Delete("/{id}", handler.DeleteItem)
	})

	// Health без middleware (не требует user)
	router.Get("/health", platformhealth.Handler(readiness))

	return router
}
