package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"aura-gateway/internal/health"
	"aura-gateway/internal/marketdata"
	"aura-gateway/internal/orders"
)

type RouterDeps struct {
	OrderHandler  *orders.Handler
	MarketHandler *marketdata.Handler
	HealthHandler *health.Handler
	AllowedOrigin string
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(CORS(d.AllowedOrigin))
	r.Use(SecurityHeaders)
	r.Use(RateLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", d.HealthHandler.Get)
		r.Post("/trade", d.OrderHandler.Submit)
		r.Get("/trade", d.OrderHandler.Get)
		r.Get("/market", d.MarketHandler.Get)
	})
	return r
}

// CORS allows the configured frontend origin.
func CORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
