package wire

import (
	"net/http"

	"eventhub/internal/adaptor"
	"eventhub/internal/data/repository"
	"eventhub/internal/usecase"
	"eventhub/pkg/mailer"
	"eventhub/pkg/middleware"
	"eventhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service, handler and routing graph.
func Wiring(repo *repository.Repository, config *utils.Config, notifier mailer.Notifier, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireEvent(r, handler.Event, handler.WaitingList, repo, logger)
	wireResource(r, handler.Resource, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireWaitingList(r, handler.WaitingList, repo, logger)
	wireRating(r, handler.Rating, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
