package wire

import (
	"eventhub/internal/adaptor"
	"eventhub/internal/data/repository"
	"eventhub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireResource(r chi.Router, resourceHandler *adaptor.ResourceHandler, repo *repository.Repository, log *zap.Logger) {
	// Public routes
	r.Get("/api/resources", resourceHandler.GetResources)
	r.Get("/api/resources/{id}", resourceHandler.GetResource)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/resources", resourceHandler.CreateResource)
		r.Put("/api/resources/{id}", resourceHandler.UpdateResource)
		r.Delete("/api/resources/{id}", resourceHandler.DeleteResource)
	})
}
