package wire

import (
	"eventhub/internal/adaptor"
	"eventhub/internal/data/repository"
	"eventhub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, repo *repository.Repository, log *zap.Logger) {
	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/bookings", bookingHandler.CreateResourceBooking)
		r.Post("/api/bookings/register", bookingHandler.RegisterForEvent)
		r.Get("/api/my-bookings", bookingHandler.GetMyBookings)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
		r.Put("/api/bookings/{id}", bookingHandler.UpdateBooking)
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/bookings", bookingHandler.GetBookings)
	})
}
