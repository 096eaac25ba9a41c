package usecase

import (
	"context"
	"testing"

	"eventhub/internal/data/entity"
	"eventhub/internal/data/repository"
	"eventhub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	repo     *repository.Repository
	bookings *fakeBookingRepo
	waiting  *fakeWaitingListRepo
	notifier *fakeNotifier
	svc      BookingService

	event *entity.Event
	user  *entity.User
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	event := &entity.Event{
		Base:            entity.Base{ID: uuid.New()},
		Title:           "Go Meetup",
		Date:            day("2024-07-01"),
		StartTime:       "18:00",
		EndTime:         "20:00",
		Capacity:        30,
		RegisteredCount: 10,
		Status:          entity.EventStatusUpcoming,
	}
	user := &entity.User{
		Base:                      entity.Base{ID: uuid.New()},
		Email:                     "gopher@example.com",
		FullName:                  "Gopher",
		Role:                      entity.RoleUser,
		BookingConfirmationEmails: true,
	}

	bookings := &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
	waiting := &fakeWaitingListRepo{}
	notifier := &fakeNotifier{}

	repo := &repository.Repository{
		User:        &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}},
		Event:       &fakeEventRepo{events: map[uuid.UUID]*entity.Event{event.ID: event}},
		Booking:     bookings,
		WaitingList: waiting,
	}

	log := zap.NewNop()
	waitingSvc := NewWaitingListService(repo, notifier, log)

	return &bookingFixture{
		repo:     repo,
		bookings: bookings,
		waiting:  waiting,
		notifier: notifier,
		svc:      NewBookingService(repo, waitingSvc, notifier, log),
		event:    event,
		user:     user,
	}
}

func TestRegisterForEventSendsConfirmation(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.RegisterForEvent(context.Background(), f.user.ID.String(), &request.RegisterForEventRequest{
		EventID: f.event.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingTypeEvent, booking.BookingType)
	assert.Equal(t, "18:00", booking.StartTime)
	require.Len(t, f.bookings.registered, 1)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "gopher@example.com", f.notifier.sent[0].To)
	assert.Equal(t, "Booking Confirmation - EventHub", f.notifier.sent[0].Subject)
	assert.Contains(t, f.notifier.sent[0].Body, "Go Meetup")
}

func TestRegisterForEventRespectsEmailOptOut(t *testing.T) {
	f := newBookingFixture(t)
	f.user.BookingConfirmationEmails = false

	_, err := f.svc.RegisterForEvent(context.Background(), f.user.ID.String(), &request.RegisterForEventRequest{
		EventID: f.event.ID.String(),
	})
	require.NoError(t, err)
	assert.Empty(t, f.notifier.sent)
}

func TestRegisterForEventFull(t *testing.T) {
	f := newBookingFixture(t)
	f.bookings.registerErr = entity.ErrEventFull

	_, err := f.svc.RegisterForEvent(context.Background(), f.user.ID.String(), &request.RegisterForEventRequest{
		EventID: f.event.ID.String(),
	})
	assert.ErrorIs(t, err, entity.ErrEventFull)
	assert.Empty(t, f.notifier.sent)
}

func TestRegisterForEventClosedStatuses(t *testing.T) {
	f := newBookingFixture(t)
	f.event.Status = entity.EventStatusCancelled

	_, err := f.svc.RegisterForEvent(context.Background(), f.user.ID.String(), &request.RegisterForEventRequest{
		EventID: f.event.ID.String(),
	})
	assert.ErrorContains(t, err, "registration closed")
}

func TestRegisterForEventConvertsNotifiedEntry(t *testing.T) {
	f := newBookingFixture(t)
	entry := &entity.WaitingListEntry{
		Base:      entity.Base{ID: uuid.New()},
		EventID:   f.event.ID,
		UserID:    f.user.ID,
		UserEmail: f.user.Email,
		Position:  1,
		Status:    entity.WaitingStatusNotified,
	}
	f.waiting.entries = append(f.waiting.entries, entry)

	_, err := f.svc.RegisterForEvent(context.Background(), f.user.ID.String(), &request.RegisterForEventRequest{
		EventID: f.event.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.WaitingStatusConverted, entry.Status)
}

func TestCancelEventBookingPromotesWaitingList(t *testing.T) {
	f := newBookingFixture(t)

	eventID := f.event.ID
	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		BookingType: entity.BookingTypeEvent,
		EventID:     &eventID,
		Date:        f.event.Date,
		StartTime:   f.event.StartTime,
		EndTime:     f.event.EndTime,
		Status:      entity.BookingStatusConfirmed,
		CreatedBy:   f.user.ID,
	}
	f.bookings.bookings[booking.ID] = booking

	waiter := &entity.WaitingListEntry{
		Base:      entity.Base{ID: uuid.New()},
		EventID:   eventID,
		UserID:    uuid.New(),
		UserEmail: "waiter@example.com",
		Position:  1,
		Status:    entity.WaitingStatusWaiting,
	}
	f.waiting.entries = append(f.waiting.entries, waiter)

	err := f.svc.CancelBooking(context.Background(), f.user.ID.String(), false, booking.ID.String())
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
	assert.Equal(t, entity.WaitingStatusNotified, waiter.Status)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "waiter@example.com", f.notifier.sent[0].To)
	assert.Equal(t, "Spot Available - EventHub", f.notifier.sent[0].Subject)
}

func TestCancelBookingOwnerOnly(t *testing.T) {
	f := newBookingFixture(t)

	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		BookingType: entity.BookingTypeResource,
		Status:      entity.BookingStatusConfirmed,
		CreatedBy:   f.user.ID,
	}
	f.bookings.bookings[booking.ID] = booking

	err := f.svc.CancelBooking(context.Background(), uuid.NewString(), false, booking.ID.String())
	assert.ErrorIs(t, err, entity.ErrAccessDenied)

	err = f.svc.CancelBooking(context.Background(), uuid.NewString(), true, booking.ID.String())
	assert.NoError(t, err, "admins may cancel any booking")
}

func TestCancelBookingTwice(t *testing.T) {
	f := newBookingFixture(t)

	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		BookingType: entity.BookingTypeResource,
		Status:      entity.BookingStatusConfirmed,
		CreatedBy:   f.user.ID,
	}
	f.bookings.bookings[booking.ID] = booking

	require.NoError(t, f.svc.CancelBooking(context.Background(), f.user.ID.String(), false, booking.ID.String()))

	f.bookings.cancelErr = entity.ErrAlreadyCancelled
	err := f.svc.CancelBooking(context.Background(), f.user.ID.String(), false, booking.ID.String())
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
}

func TestUpdateEventRegistrationSlotRejected(t *testing.T) {
	f := newBookingFixture(t)

	eventID := f.event.ID
	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		BookingType: entity.BookingTypeEvent,
		EventID:     &eventID,
		Status:      entity.BookingStatusConfirmed,
		CreatedBy:   f.user.ID,
	}
	f.bookings.bookings[booking.ID] = booking

	start := "19:00"
	_, err := f.svc.UpdateBooking(context.Background(), f.user.ID.String(), false, booking.ID.String(), &request.UpdateBookingRequest{
		StartTime: &start,
	})
	assert.ErrorContains(t, err, "cannot change")
}
