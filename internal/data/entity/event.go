package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventCategory string

const (
	CategoryWorkshop   EventCategory = "workshop"
	CategorySeminar    EventCategory = "seminar"
	CategoryConference EventCategory = "conference"
	CategoryTraining   EventCategory = "training"
	CategoryMeeting    EventCategory = "meeting"
	CategorySocial     EventCategory = "social"
	CategoryOther      EventCategory = "other"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type RecurrencePattern string

const (
	RecurrenceDaily    RecurrencePattern = "daily"
	RecurrenceWeekly   RecurrencePattern = "weekly"
	RecurrenceBiweekly RecurrencePattern = "biweekly"
	RecurrenceMonthly  RecurrencePattern = "monthly"
)

// Event is a scheduled occurrence with fixed capacity. StartTime and
// EndTime are same-day "HH:MM" values; Date carries the calendar day.
type Event struct {
	Base
	Title           string        `db:"title"`
	Description     string        `db:"description"`
	Category        EventCategory `db:"category"`
	Date            time.Time     `db:"date"`
	StartTime       string        `db:"start_time"`
	EndTime         string        `db:"end_time"`
	Location        string        `db:"location"`
	Capacity        int           `db:"capacity"`
	RegisteredCount int           `db:"registered_count"`
	Status          EventStatus   `db:"status"`

	IsRecurring       bool               `db:"is_recurring"`
	RecurrencePattern *RecurrencePattern `db:"recurrence_pattern"`
	RecurrenceEndDate *time.Time         `db:"recurrence_end_date"`
	SeriesID          *uuid.UUID         `db:"series_id"`

	AssignedResourceIDs []uuid.UUID `db:"assigned_resource_ids"`
	CreatedBy           uuid.UUID   `db:"created_by"`
}

// IsFull reports whether no capacity remains.
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.Capacity
}

// UsesResource reports whether id is among the event's assigned resources.
func (e *Event) UsesResource(id uuid.UUID) bool {
	for _, rid := range e.AssignedResourceIDs {
		if rid == id {
			return true
		}
	}
	return false
}
