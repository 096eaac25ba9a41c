package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingType string

const (
	BookingTypeEvent    BookingType = "event"
	BookingTypeResource BookingType = "resource"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a confirmed time-range reservation, either an event
// registration (EventID set) or a resource reservation (ResourceID set).
// Exactly one of the two foreign keys applies, per BookingType.
type Booking struct {
	Base
	BookingType BookingType   `db:"booking_type"`
	EventID     *uuid.UUID    `db:"event_id"`
	ResourceID  *uuid.UUID    `db:"resource_id"`
	Date        time.Time     `db:"date"`
	StartTime   string        `db:"start_time"`
	EndTime     string        `db:"end_time"`
	Purpose     string        `db:"purpose"`
	Notes       string        `db:"notes"`
	Status      BookingStatus `db:"status"`
	CreatedBy   uuid.UUID     `db:"created_by"`
}
