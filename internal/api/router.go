package api

import (
	"net/http"

	"github.com/chiroyli/salon-backend/internal/api/handlers"
	"github.com/chiroyli/salon-backend/internal/api/middleware"
	"github.com/chiroyli/salon-backend/internal/config"
	"github.com/chiroyli/salon-backend/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	notificationHandler := handlers.NewNotificationHandler(services.Notification)
	contactHandler := handlers.NewContactHandler(services.Contact)

	sessionAuth := middleware.Session(services.Auth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/sso", authHandler.SSOLogin)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(sessionAuth)
				r.Get("/user", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Public form submissions
		r.Post("/contact", contactHandler.Submit)
		r.Post("/newsletter", contactHandler.Subscribe)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(sessionAuth)

			r.Get("/contact", contactHandler.List)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Patch("/read-all", notificationHandler.MarkAllRead)
				r.Patch("/{id}/read", notificationHandler.MarkRead)
			})
		})
	})

	return r
}
