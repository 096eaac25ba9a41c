package repository

import (
	"eventhub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Event       EventRepository
	Resource    ResourceRepository
	Booking     BookingRepository
	WaitingList WaitingListRepository
	Rating      RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Event:       NewEventRepository(db, log),
		Resource:    NewResourceRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		WaitingList: NewWaitingListRepository(db, log),
		Rating:      NewRatingRepository(db, log),
	}
}
