package usecase

import (
	"context"
	"fmt"
	"time"

	"eventhub/internal/data/entity"
	"eventhub/internal/data/repository"
	"eventhub/internal/dto/request"
	"eventhub/internal/dto/response"
	"eventhub/pkg/timeslot"
	"eventhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	// CreateEvent creates a single event, or the whole series when the
	// request is recurring. The series is all-or-nothing: one conflict
	// anywhere rejects every instance.
	CreateEvent(ctx context.Context, userID string, req *request.CreateEventRequest) ([]response.EventResponse, error)

	GetEvents(ctx context.Context, filters repository.EventFilters, sort string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.EventResponse], error)
	GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error)
	UpdateEvent(ctx context.Context, eventID string, req *request.UpdateEventRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type eventService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEventService(repo *repository.Repository, log *zap.Logger) EventService {
	return &eventService{
		repo: repo,
		log:  log.With(zap.String("service", "event")),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, userID string, req *request.CreateEventRequest) ([]response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := timeslot.ValidRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	creatorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	resourceIDs, err := parseResourceIDs(req.ResourceIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:               req.Title,
		Description:         req.Description,
		Category:            entity.EventCategory(req.Category),
		Date:                date,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Location:            req.Location,
		Capacity:            req.Capacity,
		Status:              entity.EventStatusUpcoming,
		AssignedResourceIDs: resourceIDs,
		CreatedBy:           creatorID,
	}

	batch := []*entity.Event{event}

	if req.IsRecurring {
		if req.RecurrencePattern == nil || req.RecurrenceEndDate == nil {
			return nil, entity.ErrInvalidRecurrencePattern
		}

		until, err := time.Parse("2006-01-02", *req.RecurrenceEndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid recurrence end date %s: %w", *req.RecurrenceEndDate, err)
		}
		if until.Before(date) {
			return nil, fmt.Errorf("recurrence end date %s is before event date %s", *req.RecurrenceEndDate, req.Date)
		}

		pattern := entity.RecurrencePattern(*req.RecurrencePattern)
		event.IsRecurring = true
		event.RecurrencePattern = &pattern
		event.RecurrenceEndDate = &until

		batch, err = expandRecurrence(event, pattern, until)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Event.CreateChecked(ctx, batch); err != nil {
		s.log.Warn("Failed to create event",
			zap.Error(err),
			zap.String("title", req.Title),
			zap.Int("instances", len(batch)),
		)
		return nil, err
	}

	s.log.Info("Event created",
		zap.String("event_id", batch[0].ID.String()),
		zap.String("title", req.Title),
		zap.Bool("recurring", req.IsRecurring),
		zap.Int("instances", len(batch)),
	)

	return response.EventsToResponse(batch), nil
}

func (s *eventService) GetEvents(ctx context.Context, filters repository.EventFilters, sort string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.EventResponse], error) {
	events, err := s.repo.Event.FindAll(ctx, filters, sort)
	if err != nil {
		s.log.Error("Failed to list events", zap.Error(err))
		return nil, fmt.Errorf("list events: %w", err)
	}

	total := len(events)
	events = pageSlice(events, page.Offset(), page.Limit())

	resp := response.NewPaginatedResponse(response.EventsToResponse(events), page.Page, page.PerPage, total)
	return &resp, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	if event == nil {
		return nil, entity.ErrEventNotFound
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req *request.UpdateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	if event == nil {
		return nil, entity.ErrEventNotFound
	}

	slotChanged := false

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		event.Category = entity.EventCategory(*req.Category)
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %s: %w", *req.Date, err)
		}
		event.Date = date
		slotChanged = true
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
		slotChanged = true
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
		slotChanged = true
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.Status != nil {
		event.Status = entity.EventStatus(*req.Status)
	}
	if req.ResourceIDs != nil {
		resourceIDs, err := parseResourceIDs(req.ResourceIDs)
		if err != nil {
			return nil, err
		}
		event.AssignedResourceIDs = resourceIDs
		slotChanged = true
	}

	if err := timeslot.ValidRange(event.StartTime, event.EndTime); err != nil {
		return nil, err
	}

	event.UpdatedAt = time.Now()

	// Only a slot or resource change can introduce new conflicts; plain
	// metadata edits skip the locking pass.
	if slotChanged && len(event.AssignedResourceIDs) > 0 {
		err = s.repo.Event.UpdateChecked(ctx, event)
	} else {
		err = s.repo.Event.Update(ctx, event)
	}
	if err != nil {
		s.log.Warn("Failed to update event", zap.Error(err), zap.String("event_id", eventID))
		return nil, err
	}

	s.log.Info("Event updated", zap.String("event_id", eventID))

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	if err := s.repo.Event.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.Info("Event deleted", zap.String("event_id", eventID))
	return nil
}

func parseResourceIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("invalid resource ID format %s: %w", r, err)
		}
		ids[i] = id
	}
	return ids, nil
}
