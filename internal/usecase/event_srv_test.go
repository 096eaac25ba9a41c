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

func createEventRequest() *request.CreateEventRequest {
	return &request.CreateEventRequest{
		Title:     "Intro to Testing",
		Category:  "workshop",
		Date:      "2024-03-04",
		StartTime: "09:00",
		EndTime:   "11:00",
		Location:  "Room A",
		Capacity:  20,
	}
}

func TestCreateEventSingle(t *testing.T) {
	events := &fakeEventRepo{}
	svc := NewEventService(&repository.Repository{Event: events}, zap.NewNop())

	created, err := svc.CreateEvent(context.Background(), uuid.NewString(), createEventRequest())
	require.NoError(t, err)

	require.Len(t, created, 1)
	assert.Equal(t, "Intro to Testing", created[0].Title)
	assert.Equal(t, entity.EventStatusUpcoming, created[0].Status)
	require.Len(t, events.created, 1)
	assert.Len(t, events.created[0], 1)
}

func TestCreateEventWeeklySeries(t *testing.T) {
	events := &fakeEventRepo{}
	svc := NewEventService(&repository.Repository{Event: events}, zap.NewNop())

	req := createEventRequest()
	pattern := "weekly"
	until := "2024-03-25"
	req.IsRecurring = true
	req.RecurrencePattern = &pattern
	req.RecurrenceEndDate = &until

	created, err := svc.CreateEvent(context.Background(), uuid.NewString(), req)
	require.NoError(t, err)

	require.Len(t, created, 4)
	require.Len(t, events.created, 1)
	assert.Len(t, events.created[0], 4, "whole series goes through one insert")

	seriesID := created[0].SeriesID
	require.NotNil(t, seriesID)
	for _, instance := range created {
		assert.Equal(t, seriesID, instance.SeriesID)
	}
}

func TestCreateEventRecurringMissingPattern(t *testing.T) {
	svc := NewEventService(&repository.Repository{Event: &fakeEventRepo{}}, zap.NewNop())

	req := createEventRequest()
	req.IsRecurring = true

	_, err := svc.CreateEvent(context.Background(), uuid.NewString(), req)
	assert.ErrorIs(t, err, entity.ErrInvalidRecurrencePattern)
}

func TestCreateEventEndDateBeforeStart(t *testing.T) {
	svc := NewEventService(&repository.Repository{Event: &fakeEventRepo{}}, zap.NewNop())

	req := createEventRequest()
	pattern := "daily"
	until := "2024-03-01"
	req.IsRecurring = true
	req.RecurrencePattern = &pattern
	req.RecurrenceEndDate = &until

	_, err := svc.CreateEvent(context.Background(), uuid.NewString(), req)
	assert.ErrorContains(t, err, "before event date")
}

func TestCreateEventSeriesConflictRejectsAll(t *testing.T) {
	conflict := &entity.ConflictError{
		Kind: entity.ConflictKindEvent,
		Resources: []entity.ResourceConflict{{
			ResourceID:        uuid.NewString(),
			ConflictingEvents: []*entity.Event{{Title: "Standup"}},
		}},
	}
	events := &fakeEventRepo{createErr: conflict}
	svc := NewEventService(&repository.Repository{Event: events}, zap.NewNop())

	req := createEventRequest()
	pattern := "daily"
	until := "2024-03-06"
	req.IsRecurring = true
	req.RecurrencePattern = &pattern
	req.RecurrenceEndDate = &until

	_, err := svc.CreateEvent(context.Background(), uuid.NewString(), req)

	var ce *entity.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Empty(t, events.created)
}

func TestCreateEventRejectsInvertedSlot(t *testing.T) {
	svc := NewEventService(&repository.Repository{Event: &fakeEventRepo{}}, zap.NewNop())

	req := createEventRequest()
	req.StartTime = "11:00"
	req.EndTime = "09:00"

	_, err := svc.CreateEvent(context.Background(), uuid.NewString(), req)
	assert.Error(t, err)
}
