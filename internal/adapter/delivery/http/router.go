// Package http provides the HTTP delivery layer for the URL shortener service.
// It wires the public redirect routes and the secret-key admin routes onto a
// chi router together with logging, metrics and API documentation.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/shortener/docs"
	"github.com/vadimbarashkov/shortener/internal/metrics"
)

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the URL shortener API.
func NewRouter(logger *httplog.Logger, m *metrics.Metrics, urlUseCase urlUseCase) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(docs.Swagger)
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Get("/", handleWelcome)
	r.Get("/ping", handlePing)

	h := newURLHandler(urlUseCase, newValidate())

	r.Post("/url", h.shortenURL)
	r.Get("/all", h.listURLs)
	r.Get("/{key}", h.redirect)
	r.Head("/{key}", h.peek)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/getInfo/{secretKey}", h.getURLInfo)
		r.Post("/toggleActive", h.toggleURL)
		r.Delete("/delete", h.deleteURL)
	})

	return r
}
