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
	"eventhub/pkg/timeslot"
	"eventhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const bookingConfirmationSubject = "Booking Confirmation - EventHub"

type BookingService interface {
	CreateResourceBooking(ctx context.Context, userID string, req *request.CreateResourceBookingRequest) (*response.BookingResponse, error)
	RegisterForEvent(ctx context.Context, userID string, req *request.RegisterForEventRequest) (*response.BookingResponse, error)

	GetBookings(ctx context.Context, filters repository.BookingFilters, sort string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetMyBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, userID string, isAdmin bool, bookingID string) (*response.BookingDetailResponse, error)
	UpdateBooking(ctx context.Context, userID string, isAdmin bool, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)

	// CancelBooking cancels the booking and, for event registrations,
	// promotes the next waiting list entry on the freed spot.
	CancelBooking(ctx context.Context, userID string, isAdmin bool, bookingID string) error
}

type bookingService struct {
	repo        *repository.Repository
	waitingList WaitingListService
	notifier    mailer.Notifier
	log         *zap.Logger
}

func NewBookingService(repo *repository.Repository, waitingList WaitingListService, notifier mailer.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:        repo,
		waitingList: waitingList,
		notifier:    notifier,
		log:         log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateResourceBooking(ctx context.Context, userID string, req *request.CreateResourceBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := timeslot.ValidRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("invalid resource ID format %s: %w", req.ResourceID, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingType: entity.BookingTypeResource,
		ResourceID:  &resourceID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Purpose:     req.Purpose,
		Notes:       req.Notes,
		Status:      entity.BookingStatusConfirmed,
		CreatedBy:   userUUID,
	}

	if err := s.repo.Booking.CreateResourceChecked(ctx, booking); err != nil {
		s.log.Warn("Failed to create resource booking",
			zap.Error(err),
			zap.String("resource_id", req.ResourceID),
			zap.String("user_id", userID),
		)
		return nil, err
	}

	s.log.Info("Resource booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("resource_id", req.ResourceID),
		zap.String("date", req.Date),
		zap.String("slot", req.StartTime+"-"+req.EndTime),
	)

	s.sendConfirmation(ctx, userUUID, fmt.Sprintf(
		"<p>Your booking on %s from %s to %s is confirmed.</p><p>Purpose: %s</p>",
		req.Date, req.StartTime, req.EndTime, req.Purpose,
	))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) RegisterForEvent(ctx context.Context, userID string, req *request.RegisterForEventRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Event registration validation failed", zap.Any("errors", errs))
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
	if event.Status == entity.EventStatusCancelled || event.Status == entity.EventStatusCompleted {
		return nil, fmt.Errorf("event %s is %s, registration closed", req.EventID, event.Status)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingType: entity.BookingTypeEvent,
		EventID:     &eventID,
		Date:        event.Date,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Notes:       req.Notes,
		Status:      entity.BookingStatusConfirmed,
		CreatedBy:   userUUID,
	}

	if err := s.repo.Booking.RegisterForEvent(ctx, booking); err != nil {
		s.log.Warn("Failed to register for event",
			zap.Error(err),
			zap.String("event_id", req.EventID),
			zap.String("user_id", userID),
		)
		return nil, err
	}

	s.log.Info("Event registration created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("event_id", req.EventID),
		zap.String("user_id", userID),
	)

	// A notified waiting list entry taking the spot is now converted.
	if err := s.waitingList.MarkConverted(ctx, eventID, userUUID); err != nil {
		s.log.Warn("Failed to mark waiting list entry converted",
			zap.Error(err),
			zap.String("event_id", req.EventID),
			zap.String("user_id", userID),
		)
	}

	s.sendConfirmation(ctx, userUUID, fmt.Sprintf(
		"<p>You are registered for <strong>%s</strong> on %s at %s.</p>",
		event.Title, event.Date.Format("2006-01-02"), event.StartTime,
	))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, filters repository.BookingFilters, sort string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, filters, sort)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total := len(bookings)
	bookings = pageSlice(bookings, page.Offset(), page.Limit())

	resp := response.NewPaginatedResponse(response.BookingsToResponse(bookings), page.Page, page.PerPage, total)
	return &resp, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID string, isAdmin bool, bookingID string) (*response.BookingDetailResponse, error) {
	booking, err := s.loadOwnedBooking(ctx, userID, isAdmin, bookingID)
	if err != nil {
		return nil, err
	}

	detail := &response.BookingDetailResponse{
		BookingResponse: response.BookingToResponse(booking),
	}

	if booking.EventID != nil {
		event, err := s.repo.Event.FindByID(ctx, *booking.EventID)
		if err == nil && event != nil {
			eventResp := response.EventToResponse(event)
			detail.Event = &eventResp
		}
	}
	if booking.ResourceID != nil {
		resource, err := s.repo.Resource.FindByID(ctx, *booking.ResourceID)
		if err == nil && resource != nil {
			resourceResp := response.ResourceToResponse(resource)
			detail.Resource = &resourceResp
		}
	}

	return detail, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, userID string, isAdmin bool, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.loadOwnedBooking(ctx, userID, isAdmin, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, entity.ErrAlreadyCancelled
	}

	slotChanged := false

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %s: %w", *req.Date, err)
		}
		booking.Date = date
		slotChanged = true
	}
	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
		slotChanged = true
	}
	if req.EndTime != nil {
		booking.EndTime = *req.EndTime
		slotChanged = true
	}
	if req.Purpose != nil {
		booking.Purpose = *req.Purpose
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	if slotChanged {
		// Event registrations inherit their slot from the event.
		if booking.BookingType != entity.BookingTypeResource {
			return nil, fmt.Errorf("cannot change the time slot of an event registration")
		}
		if err := timeslot.ValidRange(booking.StartTime, booking.EndTime); err != nil {
			return nil, err
		}
	}

	booking.UpdatedAt = time.Now()

	if slotChanged {
		err = s.repo.Booking.UpdateSlotChecked(ctx, booking)
	} else {
		err = s.repo.Booking.Update(ctx, booking)
	}
	if err != nil {
		s.log.Warn("Failed to update booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, err
	}

	s.log.Info("Booking updated", zap.String("booking_id", bookingID))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID string, isAdmin bool, bookingID string) error {
	booking, err := s.loadOwnedBooking(ctx, userID, isAdmin, bookingID)
	if err != nil {
		return err
	}

	cancelled, err := s.repo.Booking.Cancel(ctx, booking.ID)
	if err != nil {
		s.log.Warn("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("booking_type", string(cancelled.BookingType)),
	)

	if cancelled.BookingType == entity.BookingTypeEvent && cancelled.EventID != nil {
		if _, err := s.waitingList.PromoteNext(ctx, *cancelled.EventID); err != nil {
			s.log.Warn("Failed to promote waiting list after cancellation",
				zap.Error(err),
				zap.String("event_id", cancelled.EventID.String()),
			)
		}
	}

	return nil
}

// loadOwnedBooking fetches the booking and enforces owner-or-admin access.
func (s *bookingService) loadOwnedBooking(ctx context.Context, userID string, isAdmin bool, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}

	if !isAdmin && booking.CreatedBy.String() != userID {
		return nil, entity.ErrAccessDenied
	}

	return booking, nil
}

// sendConfirmation mails the user if they opted in. Failures are logged
// and swallowed; mail never fails a booking.
func (s *bookingService) sendConfirmation(ctx context.Context, userID uuid.UUID, body string) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.log.Warn("Could not load user for booking confirmation",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return
	}

	if !user.BookingConfirmationEmails {
		return
	}

	if err := s.notifier.Send(user.Email, bookingConfirmationSubject, body); err != nil {
		s.log.Warn("Failed to send booking confirmation",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
	}
}
