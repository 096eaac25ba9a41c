package entity

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrWaitlistNotFound = errors.New("waiting list entry not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrRatingNotFound   = errors.New("rating not found")
)

var (
	ErrEventFull                = errors.New("event is full")
	ErrAlreadyOnList            = errors.New("already on waiting list")
	ErrAlreadyCancelled         = errors.New("booking is already cancelled")
	ErrResourceUnavailable      = errors.New("resource is not available for booking")
	ErrInvalidRecurrencePattern = errors.New("invalid recurrence pattern")
)

var (
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// ConflictKind distinguishes which commitment type a ConflictError carries.
type ConflictKind string

const (
	ConflictKindEvent   ConflictKind = "event"
	ConflictKindBooking ConflictKind = "booking"
)

// ResourceConflict lists the events colliding with a candidate slot on
// one resource.
type ResourceConflict struct {
	ResourceID        string   `json:"resource_id"`
	ConflictingEvents []*Event `json:"conflicting_events"`
}

// ConflictError is returned when a candidate time range overlaps
// existing commitments. It carries the conflicting set so the API layer
// can show the caller exactly what is in the way.
type ConflictError struct {
	Kind ConflictKind

	// Resources is set for event/resource-assignment conflicts.
	Resources []ResourceConflict

	// Bookings is set for resource booking slot conflicts.
	Bookings []*Booking
}

func (e *ConflictError) Error() string {
	if e.Kind == ConflictKindBooking {
		return fmt.Sprintf("resource is already booked for this time slot (%d conflicts)", len(e.Bookings))
	}
	return fmt.Sprintf("resource conflict detected (%d resources affected)", len(e.Resources))
}
