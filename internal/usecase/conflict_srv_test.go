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

func TestCheckConflictsOverlappingEvent(t *testing.T) {
	roomID := uuid.New()
	existing := &entity.Event{
		Base:                entity.Base{ID: uuid.New()},
		Title:               "Morning Workshop",
		Category:            entity.CategoryWorkshop,
		Date:                day("2024-06-10"),
		StartTime:           "09:00",
		EndTime:             "10:00",
		Capacity:            20,
		Status:              entity.EventStatusUpcoming,
		AssignedResourceIDs: []uuid.UUID{roomID},
	}

	repo := &repository.Repository{
		Event:   &fakeEventRepo{byDate: []*entity.Event{existing}},
		Booking: &fakeBookingRepo{},
	}
	svc := NewConflictService(repo, zap.NewNop())

	resp, err := svc.CheckConflicts(context.Background(), &request.CheckConflictRequest{
		Date:        "2024-06-10",
		StartTime:   "09:30",
		EndTime:     "10:30",
		ResourceIDs: []string{roomID.String()},
	})
	require.NoError(t, err)
	require.True(t, resp.HasConflict)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, roomID.String(), resp.Conflicts[0].ResourceID)
	require.Len(t, resp.Conflicts[0].ConflictingEvents, 1)
	assert.Equal(t, "Morning Workshop", resp.Conflicts[0].ConflictingEvents[0].Title)
}

func TestCheckConflictsBackToBackSlotsAreClean(t *testing.T) {
	roomID := uuid.New()
	existing := &entity.Event{
		Base:                entity.Base{ID: uuid.New()},
		Date:                day("2024-06-10"),
		StartTime:           "09:00",
		EndTime:             "10:00",
		Status:              entity.EventStatusUpcoming,
		AssignedResourceIDs: []uuid.UUID{roomID},
	}

	repo := &repository.Repository{
		Event:   &fakeEventRepo{byDate: []*entity.Event{existing}},
		Booking: &fakeBookingRepo{},
	}
	svc := NewConflictService(repo, zap.NewNop())

	resp, err := svc.CheckConflicts(context.Background(), &request.CheckConflictRequest{
		Date:        "2024-06-10",
		StartTime:   "10:00",
		EndTime:     "11:00",
		ResourceIDs: []string{roomID.String()},
	})
	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
	assert.Empty(t, resp.Conflicts)
}

func TestCheckConflictsIgnoresOtherResources(t *testing.T) {
	roomID := uuid.New()
	otherRoom := uuid.New()
	existing := &entity.Event{
		Base:                entity.Base{ID: uuid.New()},
		Date:                day("2024-06-10"),
		StartTime:           "09:00",
		EndTime:             "17:00",
		Status:              entity.EventStatusUpcoming,
		AssignedResourceIDs: []uuid.UUID{otherRoom},
	}

	repo := &repository.Repository{
		Event:   &fakeEventRepo{byDate: []*entity.Event{existing}},
		Booking: &fakeBookingRepo{},
	}
	svc := NewConflictService(repo, zap.NewNop())

	resp, err := svc.CheckConflicts(context.Background(), &request.CheckConflictRequest{
		Date:        "2024-06-10",
		StartTime:   "09:00",
		EndTime:     "10:00",
		ResourceIDs: []string{roomID.String()},
	})
	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestCheckConflictsIgnoresCancelledEvents(t *testing.T) {
	roomID := uuid.New()
	cancelled := &entity.Event{
		Base:                entity.Base{ID: uuid.New()},
		Date:                day("2024-06-10"),
		StartTime:           "09:00",
		EndTime:             "10:00",
		Status:              entity.EventStatusCancelled,
		AssignedResourceIDs: []uuid.UUID{roomID},
	}

	repo := &repository.Repository{
		Event:   &fakeEventRepo{byDate: []*entity.Event{cancelled}},
		Booking: &fakeBookingRepo{},
	}
	svc := NewConflictService(repo, zap.NewNop())

	resp, err := svc.CheckConflicts(context.Background(), &request.CheckConflictRequest{
		Date:        "2024-06-10",
		StartTime:   "09:30",
		EndTime:     "10:30",
		ResourceIDs: []string{roomID.String()},
	})
	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestCheckConflictsExcludesOwnEvent(t *testing.T) {
	roomID := uuid.New()
	self := &entity.Event{
		Base:                entity.Base{ID: uuid.New()},
		Date:                day("2024-06-10"),
		StartTime:           "09:00",
		EndTime:             "10:00",
		Status:              entity.EventStatusUpcoming,
		AssignedResourceIDs: []uuid.UUID{roomID},
	}

	repo := &repository.Repository{
		Event:   &fakeEventRepo{byDate: []*entity.Event{self}},
		Booking: &fakeBookingRepo{},
	}
	svc := NewConflictService(repo, zap.NewNop())

	selfID := self.ID.String()
	resp, err := svc.CheckConflicts(context.Background(), &request.CheckConflictRequest{
		Date:           "2024-06-10",
		StartTime:      "09:00",
		EndTime:        "10:00",
		ResourceIDs:    []string{roomID.String()},
		ExcludeEventID: &selfID,
	})
	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestCheckConflictsOverlappingBooking(t *testing.T) {
	roomID := uuid.New()
	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		BookingType: entity.BookingTypeResource,
		ResourceID:  &roomID,
		Date:        day("2024-06-10"),
		StartTime:   "13:00",
		EndTime:     "15:00",
		Status:      entity.BookingStatusConfirmed,
	}

	repo := &repository.Repository{
		Event:   &fakeEventRepo{},
		Booking: &fakeBookingRepo{byResource: []*entity.Booking{booking}},
	}
	svc := NewConflictService(repo, zap.NewNop())

	resp, err := svc.CheckConflicts(context.Background(), &request.CheckConflictRequest{
		Date:        "2024-06-10",
		StartTime:   "14:00",
		EndTime:     "16:00",
		ResourceIDs: []string{roomID.String()},
	})
	require.NoError(t, err)
	require.True(t, resp.HasConflict)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, booking.ID.String(), resp.Bookings[0].ID)
}

func TestCheckConflictsRejectsBadRange(t *testing.T) {
	repo := &repository.Repository{
		Event:   &fakeEventRepo{},
		Booking: &fakeBookingRepo{},
	}
	svc := NewConflictService(repo, zap.NewNop())

	_, err := svc.CheckConflicts(context.Background(), &request.CheckConflictRequest{
		Date:        "2024-06-10",
		StartTime:   "11:00",
		EndTime:     "10:00",
		ResourceIDs: []string{uuid.NewString()},
	})
	assert.Error(t, err)
}
