package wire

import (
	"eventhub/internal/adaptor"
	"eventhub/internal/data/repository"
	"eventhub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	waitingListHandler *adaptor.WaitingListHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/events", eventHandler.GetEvents)
	r.Get("/api/events/{id}", eventHandler.GetEvent)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/events/check-conflicts", eventHandler.CheckConflicts)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/events", eventHandler.CreateEvent)
		r.Put("/api/events/{id}", eventHandler.UpdateEvent)
		r.Delete("/api/events/{id}", eventHandler.DeleteEvent)
		r.Get("/api/events/{id}/waiting-list", waitingListHandler.GetEventWaitingList)
	})
}
