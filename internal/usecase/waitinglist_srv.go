package usecase

import (
	"context"
	"fmt"
	"time"

	"eventhub/internal/data/entity"
	"eventhub/internal/data/repository"
	"eventhub/internal/dto/request"
	"eventhub/internal/dto/response"
	"eventhub/pkg/mailer"
	"eventhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const spotAvailableSubject = "Spot Available - EventHub"

type WaitingListService interface {
	JoinWaitingList(ctx context.Context, userID, userEmail string, req *request.JoinWaitingListRequest) (*response.WaitingListEntryResponse, error)
	GetEventWaitingList(ctx context.Context, eventID string) ([]response.WaitingListEntryResponse, error)
	GetMyEntries(ctx context.Context, userID string) ([]response.WaitingListEntryResponse, error)
	RemoveEntry(ctx context.Context, userID string, isAdmin bool, entryID string) error

	// PromoteNext notifies the longest-waiting entry that a spot opened
	// up. Called after an event registration is cancelled. Notification
	// failures are logged but never fail the promotion.
	PromoteNext(ctx context.Context, eventID uuid.UUID) (*entity.WaitingListEntry, error)

	// MarkConverted closes the loop when a notified user registers.
	MarkConverted(ctx context.Context, eventID, userID uuid.UUID) error
}

type waitingListService struct {
	repo     *repository.Repository
	notifier mailer.Notifier
	log      *zap.Logger
}

func NewWaitingListService(repo *repository.Repository, notifier mailer.Notifier, log *zap.Logger) WaitingListService {
	return &waitingListService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "waiting_list")),
	}
}

func (s *waitingListService) JoinWaitingList(ctx context.Context, userID, userEmail string, req *request.JoinWaitingListRequest) (*response.WaitingListEntryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Join waiting list validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", req.EventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	if event == nil {
		return nil, entity.ErrEventNotFound
	}

	if !event.IsFull() {
		return nil, fmt.Errorf("event %s still has open spots, register directly", req.EventID)
	}

	now := time.Now()
	entry := &entity.WaitingListEntry{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EventID:   eventID,
		UserID:    userUUID,
		UserEmail: userEmail,
		Status:    entity.WaitingStatusWaiting,
	}

	if err := s.repo.WaitingList.Join(ctx, entry); err != nil {
		s.log.Warn("Failed to join waiting list",
			zap.Error(err),
			zap.String("event_id", req.EventID),
			zap.String("user_id", userID),
		)
		return nil, err
	}

	s.log.Info("Joined waiting list",
		zap.String("entry_id", entry.ID.String()),
		zap.String("event_id", req.EventID),
		zap.Int("position", entry.Position),
	)

	rank, err := s.waitingRank(ctx, entry)
	if err != nil {
		rank = 0
	}

	resp := response.WaitingListEntryToResponse(entry, rank)
	return &resp, nil
}

func (s *waitingListService) GetEventWaitingList(ctx context.Context, eventID string) ([]response.WaitingListEntryResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	entries, err := s.repo.WaitingList.FindAll(ctx, repository.WaitingListFilters{EventID: &id}, "position")
	if err != nil {
		s.log.Error("Failed to list waiting list", zap.Error(err), zap.String("event_id", eventID))
		return nil, fmt.Errorf("list waiting list: %w", err)
	}

	return response.WaitingListToResponse(entries), nil
}

func (s *waitingListService) GetMyEntries(ctx context.Context, userID string) ([]response.WaitingListEntryResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	entries, err := s.repo.WaitingList.FindByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list user waiting list entries", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list waiting list entries: %w", err)
	}

	out := make([]response.WaitingListEntryResponse, 0, len(entries))
	for _, entry := range entries {
		rank := 0
		if entry.Status == entity.WaitingStatusWaiting {
			if r, err := s.waitingRank(ctx, entry); err == nil {
				rank = r
			}
		}
		out = append(out, response.WaitingListEntryToResponse(entry, rank))
	}

	return out, nil
}

func (s *waitingListService) RemoveEntry(ctx context.Context, userID string, isAdmin bool, entryID string) error {
	id, err := uuid.Parse(entryID)
	if err != nil {
		return fmt.Errorf("invalid entry ID format %s: %w", entryID, err)
	}

	entry, err := s.repo.WaitingList.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find waiting list entry: %w", err)
	}
	if entry == nil {
		return entity.ErrWaitlistNotFound
	}

	if !isAdmin && entry.UserID.String() != userID {
		return entity.ErrAccessDenied
	}

	if err := s.repo.WaitingList.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove waiting list entry: %w", err)
	}

	s.log.Info("Waiting list entry removed",
		zap.String("entry_id", entryID),
		zap.String("event_id", entry.EventID.String()),
	)
	return nil
}

func (s *waitingListService) PromoteNext(ctx context.Context, eventID uuid.UUID) (*entity.WaitingListEntry, error) {
	entry, err := s.repo.WaitingList.PromoteNext(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("promote next waiting entry: %w", err)
	}
	if entry == nil {
		return nil, nil
	}

	s.log.Info("Waiting list entry promoted",
		zap.String("entry_id", entry.ID.String()),
		zap.String("event_id", eventID.String()),
		zap.Int("position", entry.Position),
	)

	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil || event == nil {
		s.log.Warn("Promoted entry but could not load event for notification",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return entry, nil
	}

	body := fmt.Sprintf(
		"<p>A spot has opened up for <strong>%s</strong> on %s at %s.</p><p>Register now before the spot is taken.</p>",
		event.Title, event.Date.Format("2006-01-02"), event.StartTime,
	)
	if err := s.notifier.Send(entry.UserEmail, spotAvailableSubject, body); err != nil {
		s.log.Warn("Failed to send spot available notification",
			zap.Error(err),
			zap.String("entry_id", entry.ID.String()),
		)
	}

	return entry, nil
}

func (s *waitingListService) MarkConverted(ctx context.Context, eventID, userID uuid.UUID) error {
	entry, err := s.repo.WaitingList.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("find waiting list entry: %w", err)
	}
	if entry == nil || entry.Status == entity.WaitingStatusConverted {
		return nil
	}

	return s.repo.WaitingList.UpdateStatus(ctx, entry.ID, entity.WaitingStatusConverted)
}

// waitingRank computes the entry's place among still-waiting entries for
// its event.
func (s *waitingListService) waitingRank(ctx context.Context, entry *entity.WaitingListEntry) (int, error) {
	entries, err := s.repo.WaitingList.FindAll(ctx, repository.WaitingListFilters{
		EventID: &entry.EventID,
		Status:  string(entity.WaitingStatusWaiting),
	}, "position")
	if err != nil {
		return 0, err
	}

	for i, e := range entries {
		if e.ID == entry.ID {
			return i + 1, nil
		}
	}
	return 0, nil
}
