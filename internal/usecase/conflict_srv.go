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

// ConflictService answers advisory availability questions. These checks
// take no locks; the write paths re-verify inside their transactions, so
// a clean answer here is a hint, not a reservation.
type ConflictService interface {
	CheckConflicts(ctx context.Context, req *request.CheckConflictRequest) (*response.ConflictCheckResponse, error)
}

type conflictService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewConflictService(repo *repository.Repository, log *zap.Logger) ConflictService {
	return &conflictService{
		repo: repo,
		log:  log.With(zap.String("service", "conflict")),
	}
}

func (s *conflictService) CheckConflicts(ctx context.Context, req *request.CheckConflictRequest) (*response.ConflictCheckResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Conflict check validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := timeslot.ValidRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	resourceIDs, err := parseResourceIDs(req.ResourceIDs)
	if err != nil {
		return nil, err
	}

	var excludeEventID *uuid.UUID
	if req.ExcludeEventID != nil {
		id, err := uuid.Parse(*req.ExcludeEventID)
		if err != nil {
			return nil, fmt.Errorf("invalid event ID format %s: %w", *req.ExcludeEventID, err)
		}
		excludeEventID = &id
	}

	dayEvents, err := s.repo.Event.FindByDate(ctx, date)
	if err != nil {
		s.log.Error("Failed to load events for conflict check", zap.Error(err))
		return nil, fmt.Errorf("load events for conflict check: %w", err)
	}

	resp := &response.ConflictCheckResponse{}

	for _, resourceID := range resourceIDs {
		var conflicting []*entity.Event
		for _, event := range dayEvents {
			if excludeEventID != nil && event.ID == *excludeEventID {
				continue
			}
			if event.Status == entity.EventStatusCancelled {
				continue
			}
			if !event.UsesResource(resourceID) {
				continue
			}
			if timeslot.Overlaps(req.StartTime, req.EndTime, event.StartTime, event.EndTime) {
				conflicting = append(conflicting, event)
			}
		}

		if len(conflicting) > 0 {
			resp.HasConflict = true
			resp.Conflicts = append(resp.Conflicts, response.ConflictDetail{
				ResourceID:        resourceID.String(),
				ConflictingEvents: response.EventsToResponse(conflicting),
			})
		}

		bookings, err := s.repo.Booking.FindConfirmedByResourceAndDate(ctx, resourceID, date, nil)
		if err != nil {
			s.log.Error("Failed to load bookings for conflict check",
				zap.Error(err),
				zap.String("resource_id", resourceID.String()),
			)
			return nil, fmt.Errorf("load bookings for conflict check: %w", err)
		}

		for _, booking := range bookings {
			if timeslot.Overlaps(req.StartTime, req.EndTime, booking.StartTime, booking.EndTime) {
				resp.HasConflict = true
				resp.Bookings = append(resp.Bookings, response.BookingToResponse(booking))
			}
		}
	}

	return resp, nil
}
