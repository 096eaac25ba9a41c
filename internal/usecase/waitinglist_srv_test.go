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

func fullEvent() *entity.Event {
	return &entity.Event{
		Base:            entity.Base{ID: uuid.New()},
		Title:           "Sold Out Conference",
		Date:            day("2024-09-01"),
		StartTime:       "09:00",
		EndTime:         "17:00",
		Capacity:        2,
		RegisteredCount: 2,
		Status:          entity.EventStatusUpcoming,
	}
}

func TestJoinWaitingListAssignsSequentialPositions(t *testing.T) {
	event := fullEvent()
	waiting := &fakeWaitingListRepo{}
	repo := &repository.Repository{
		Event:       &fakeEventRepo{events: map[uuid.UUID]*entity.Event{event.ID: event}},
		WaitingList: waiting,
	}
	svc := NewWaitingListService(repo, &fakeNotifier{}, zap.NewNop())

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		entry, err := svc.JoinWaitingList(context.Background(), uuid.NewString(), email, &request.JoinWaitingListRequest{
			EventID: event.ID.String(),
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, entry.Position)
		assert.Equal(t, i+1, entry.Rank)
		assert.Equal(t, entity.WaitingStatusWaiting, entry.Status)
	}
}

func TestJoinWaitingListNeverReusesPositions(t *testing.T) {
	event := fullEvent()
	waiting := &fakeWaitingListRepo{}
	repo := &repository.Repository{
		Event:       &fakeEventRepo{events: map[uuid.UUID]*entity.Event{event.ID: event}},
		WaitingList: waiting,
	}
	svc := NewWaitingListService(repo, &fakeNotifier{}, zap.NewNop())

	firstUser := uuid.NewString()
	req := &request.JoinWaitingListRequest{EventID: event.ID.String()}

	first, err := svc.JoinWaitingList(context.Background(), firstUser, "a@example.com", req)
	require.NoError(t, err)
	second, err := svc.JoinWaitingList(context.Background(), uuid.NewString(), "b@example.com", req)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveEntry(context.Background(), firstUser, false, first.ID))

	third, err := svc.JoinWaitingList(context.Background(), uuid.NewString(), "c@example.com", req)
	require.NoError(t, err)

	assert.Equal(t, 3, third.Position, "a join after a removal takes a fresh position")
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, 2, third.Rank, "rank counts only who is still waiting")
}

func TestJoinWaitingListRejectsDuplicate(t *testing.T) {
	event := fullEvent()
	repo := &repository.Repository{
		Event:       &fakeEventRepo{events: map[uuid.UUID]*entity.Event{event.ID: event}},
		WaitingList: &fakeWaitingListRepo{},
	}
	svc := NewWaitingListService(repo, &fakeNotifier{}, zap.NewNop())

	userID := uuid.NewString()
	req := &request.JoinWaitingListRequest{EventID: event.ID.String()}

	_, err := svc.JoinWaitingList(context.Background(), userID, "a@example.com", req)
	require.NoError(t, err)

	_, err = svc.JoinWaitingList(context.Background(), userID, "a@example.com", req)
	assert.ErrorIs(t, err, entity.ErrAlreadyOnList)
}

func TestJoinWaitingListRejectsOpenEvent(t *testing.T) {
	event := fullEvent()
	event.RegisteredCount = 1

	repo := &repository.Repository{
		Event:       &fakeEventRepo{events: map[uuid.UUID]*entity.Event{event.ID: event}},
		WaitingList: &fakeWaitingListRepo{},
	}
	svc := NewWaitingListService(repo, &fakeNotifier{}, zap.NewNop())

	_, err := svc.JoinWaitingList(context.Background(), uuid.NewString(), "a@example.com", &request.JoinWaitingListRequest{
		EventID: event.ID.String(),
	})
	assert.ErrorContains(t, err, "open spots")
}

func TestPromoteNextNotifiesLongestWaiting(t *testing.T) {
	event := fullEvent()
	waiting := &fakeWaitingListRepo{
		entries: []*entity.WaitingListEntry{
			{Base: entity.Base{ID: uuid.New()}, EventID: event.ID, UserID: uuid.New(), UserEmail: "first@example.com", Position: 1, Status: entity.WaitingStatusWaiting},
			{Base: entity.Base{ID: uuid.New()}, EventID: event.ID, UserID: uuid.New(), UserEmail: "second@example.com", Position: 2, Status: entity.WaitingStatusWaiting},
		},
	}
	notifier := &fakeNotifier{}
	repo := &repository.Repository{
		Event:       &fakeEventRepo{events: map[uuid.UUID]*entity.Event{event.ID: event}},
		WaitingList: waiting,
	}
	svc := NewWaitingListService(repo, notifier, zap.NewNop())

	entry, err := svc.PromoteNext(context.Background(), event.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, 1, entry.Position)
	assert.Equal(t, entity.WaitingStatusNotified, entry.Status)
	assert.NotNil(t, entry.NotifiedAt)
	assert.Equal(t, entity.WaitingStatusWaiting, waiting.entries[1].Status, "second entry untouched")

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "first@example.com", notifier.sent[0].To)
	assert.Equal(t, "Spot Available - EventHub", notifier.sent[0].Subject)
	assert.Contains(t, notifier.sent[0].Body, "Sold Out Conference")
}

func TestPromoteNextEmptyListIsNoOp(t *testing.T) {
	event := fullEvent()
	notifier := &fakeNotifier{}
	repo := &repository.Repository{
		Event:       &fakeEventRepo{events: map[uuid.UUID]*entity.Event{event.ID: event}},
		WaitingList: &fakeWaitingListRepo{},
	}
	svc := NewWaitingListService(repo, notifier, zap.NewNop())

	entry, err := svc.PromoteNext(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Empty(t, notifier.sent)
}

func TestPromoteNextSwallowsNotifierFailure(t *testing.T) {
	event := fullEvent()
	waiting := &fakeWaitingListRepo{
		entries: []*entity.WaitingListEntry{
			{Base: entity.Base{ID: uuid.New()}, EventID: event.ID, UserID: uuid.New(), UserEmail: "first@example.com", Position: 1, Status: entity.WaitingStatusWaiting},
		},
	}
	repo := &repository.Repository{
		Event:       &fakeEventRepo{events: map[uuid.UUID]*entity.Event{event.ID: event}},
		WaitingList: waiting,
	}
	svc := NewWaitingListService(repo, &fakeNotifier{sendErr: assert.AnError}, zap.NewNop())

	entry, err := svc.PromoteNext(context.Background(), event.ID)
	require.NoError(t, err, "mail failure must not fail the promotion")
	require.NotNil(t, entry)
	assert.Equal(t, entity.WaitingStatusNotified, entry.Status)
}
