package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/biasbuster/api/internal/middleware"
)

// Routes assembles the full HTTP surface.
func Routes(h *Handler, authn *middleware.Authenticator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Public
	r.Post("/auth/register", h.Auth.Register)
	r.Post("/auth/login", h.Auth.Login)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(authn.RequireUser)

		r.Get("/users/me", h.Users.Me)
		r.Put("/users/me", h.Users.UpdateMe)

		r.Post("/analyses/", h.Analyses.Create)
		r.Get("/analyses/", h.Analyses.List)
		r.Post("/analyses/{id}/feedback", h.Analyses.SubmitFeedback)
	})

	return r
}
