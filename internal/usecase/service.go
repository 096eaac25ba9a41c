package usecase

import (
	"eventhub/internal/data/repository"
	"eventhub/pkg/mailer"
	"eventhub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Event       EventService
	Resource    ResourceService
	Conflict    ConflictService
	Booking     BookingService
	WaitingList WaitingListService
	Rating      RatingService
}

func NewService(repo *repository.Repository, config *utils.Config, notifier mailer.Notifier, log *zap.Logger) *Service {
	conflict := NewConflictService(repo, log)
	waitingList := NewWaitingListService(repo, notifier, log)

	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo.User, log),
		Event:       NewEventService(repo, log),
		Resource:    NewResourceService(repo.Resource, log),
		Conflict:    conflict,
		Booking:     NewBookingService(repo, waitingList, notifier, log),
		WaitingList: waitingList,
		Rating:      NewRatingService(repo, log),
	}
}
