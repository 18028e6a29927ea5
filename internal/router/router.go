package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/galleryd-dev/galleryd/internal/config"
	"github.com/galleryd-dev/galleryd/internal/handler"
	"github.com/galleryd-dev/galleryd/internal/middleware/metrics"
)

// New creates and configures the chi router with all routes.
func New(h *handler.Handler, cfg *config.Public, mediaRoot string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// The gallery frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/login", h.Login)

	r.Route("/posts", func(r chi.Router) {
		r.Post("/", h.CreatePost)
		r.Get("/", h.ListPosts)
		r.Delete("/{id}", h.DeletePost)
	})

	// Stored media is addressed by the mediaPath persisted on the post.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(mediaRoot)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
