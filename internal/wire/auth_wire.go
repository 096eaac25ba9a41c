package wire

import (
	"eventhub/internal/adaptor"
	"eventhub/internal/data/repository"
	"eventhub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, repo *repository.Repository, log *zap.Logger) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/auth/logout", authHandler.Logout)
		r.Get("/api/auth/me", authHandler.GetProfile)
		r.Put("/api/auth/me", authHandler.UpdateProfile)
		r.Put("/api/auth/password", authHandler.ChangePassword)
	})
}
