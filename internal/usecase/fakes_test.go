package usecase

import (
	"context"
	"time"

	"eventhub/internal/data/entity"
	"eventhub/internal/data/repository"

	"github.com/google/uuid"
)

// Test fakes embed the repository interfaces so each test only overrides
// the methods it drives.

type fakeEventRepo struct {
	repository.EventRepository

	events  map[uuid.UUID]*entity.Event
	byDate  []*entity.Event
	created [][]*entity.Event

	createErr error
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventRepo) FindByDate(ctx context.Context, date time.Time) ([]*entity.Event, error) {
	return f.byDate, nil
}

func (f *fakeEventRepo) CreateChecked(ctx context.Context, events []*entity.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, events)
	return nil
}

type fakeBookingRepo struct {
	repository.BookingRepository

	bookings    map[uuid.UUID]*entity.Booking
	byResource  []*entity.Booking
	registerErr error
	cancelErr   error
	cancelled   []uuid.UUID
	registered  []*entity.Booking
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindConfirmedByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	return f.byResource, nil
}

func (f *fakeBookingRepo) RegisterForEvent(ctx context.Context, booking *entity.Booking) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = append(f.registered, booking)
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	booking := f.bookings[id]
	booking.Status = entity.BookingStatusCancelled
	f.cancelled = append(f.cancelled, id)
	return booking, nil
}

type fakeWaitingListRepo struct {
	repository.WaitingListRepository

	entries    []*entity.WaitingListEntry
	promoteErr error
}

func (f *fakeWaitingListRepo) Join(ctx context.Context, entry *entity.WaitingListEntry) error {
	highest := 0
	for _, e := range f.entries {
		if e.EventID == entry.EventID && e.UserID == entry.UserID {
			return entity.ErrAlreadyOnList
		}
		if e.EventID == entry.EventID && e.Position > highest {
			highest = e.Position
		}
	}
	entry.Position = highest + 1
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeWaitingListRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.WaitingListEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeWaitingListRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return entity.ErrWaitlistNotFound
}

func (f *fakeWaitingListRepo) PromoteNext(ctx context.Context, eventID uuid.UUID) (*entity.WaitingListEntry, error) {
	if f.promoteErr != nil {
		return nil, f.promoteErr
	}
	var next *entity.WaitingListEntry
	for _, e := range f.entries {
		if e.EventID != eventID || e.Status != entity.WaitingStatusWaiting {
			continue
		}
		if next == nil || e.Position < next.Position {
			next = e
		}
	}
	if next == nil {
		return nil, nil
	}
	now := time.Now()
	next.Status = entity.WaitingStatusNotified
	next.NotifiedAt = &now
	return next, nil
}

func (f *fakeWaitingListRepo) FindAll(ctx context.Context, filters repository.WaitingListFilters, sort string) ([]*entity.WaitingListEntry, error) {
	var out []*entity.WaitingListEntry
	for _, e := range f.entries {
		if filters.EventID != nil && e.EventID != *filters.EventID {
			continue
		}
		if filters.Status != "" && string(e.Status) != filters.Status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeWaitingListRepo) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.WaitingListEntry, error) {
	for _, e := range f.entries {
		if e.EventID == eventID && e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeWaitingListRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.WaitingStatus) error {
	for _, e := range f.entries {
		if e.ID == id {
			e.Status = status
			return nil
		}
	}
	return entity.ErrWaitlistNotFound
}

type fakeUserRepo struct {
	repository.UserRepository

	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeNotifier struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeNotifier) Send(toEmail, subject, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{To: toEmail, Subject: subject, Body: htmlBody})
	return nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
