package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/pventura/stockroom/internal/http/handlers"
)

// NewRouter wires every route. Inventory and notification routes sit
// behind the auth middleware; health, metrics, swagger and the auth
// endpoints do not. Rate limiting is applied by main around the whole
// router so test suites can drive handlers without tripping it.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogMiddleware)
	r.Use(MetricsMiddleware)

	r.Get("/health", handlers.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Post("/auth/signup", handlers.SignupHandler)
	r.Post("/auth/login", handlers.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Get("/products", handlers.GetProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Put("/products/{id}/stock", handlers.AdjustStockHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Get("/notifications", handlers.GetNotificationsHandler)
		r.Put("/notifications/{id}/read", handlers.MarkNotificationReadHandler)

		r.Post("/init-sample-data", handlers.InitSampleDataHandler)
	})

	return r
}
