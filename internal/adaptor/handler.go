package adaptor

import (
	"eventhub/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Event       *EventHandler
	Resource    *ResourceHandler
	Booking     *BookingHandler
	WaitingList *WaitingListHandler
	Rating      *RatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Event:       NewEventHandler(service.Event, service.Conflict, log),
		Resource:    NewResourceHandler(service.Resource, log),
		Booking:     NewBookingHandler(service.Booking, log),
		WaitingList: NewWaitingListHandler(service.WaitingList, log),
		Rating:      NewRatingHandler(service.Rating, log),
	}
}
