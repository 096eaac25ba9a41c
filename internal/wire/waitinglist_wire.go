package wire

import (
	"eventhub/internal/adaptor"
	"eventhub/internal/data/repository"
	"eventhub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWaitingList(r chi.Router, waitingListHandler *adaptor.WaitingListHandler, repo *repository.Repository, log *zap.Logger) {
	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/waiting-list", waitingListHandler.Join)
		r.Get("/api/my-waitlist", waitingListHandler.GetMyEntries)
		r.Delete("/api/waiting-list/{id}", waitingListHandler.Remove)
	})
}
