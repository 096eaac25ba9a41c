package wire

import (
	"eventhub/internal/adaptor"
	"eventhub/internal/data/repository"
	"eventhub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler, repo *repository.Repository, log *zap.Logger) {
	// Public routes
	r.Get("/api/ratings", ratingHandler.GetRatings)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/ratings", ratingHandler.CreateRating)
		r.Put("/api/ratings/{id}", ratingHandler.UpdateRating)
		r.Delete("/api/ratings/{id}", ratingHandler.DeleteRating)
	})
}
