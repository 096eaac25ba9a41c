package response

import (
	"time"

	"eventhub/internal/data/entity"
)

type EventResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	Category        entity.EventCategory `json:"category"`
	Date            string               `json:"date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	Location        string               `json:"location"`
	Capacity        int                  `json:"capacity"`
	RegisteredCount int                  `json:"registered_count"`
	SpotsLeft       int                  `json:"spots_left"`
	Status          entity.EventStatus   `json:"status"`

	IsRecurring       bool    `json:"is_recurring"`
	RecurrencePattern *string `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *string `json:"recurrence_end_date,omitempty"`
	SeriesID          *string `json:"series_id,omitempty"`

	ResourceIDs []string  `json:"resource_ids,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConflictDetail reports which existing events block a requested slot on
// one resource.
type ConflictDetail struct {
	ResourceID        string          `json:"resource_id"`
	ConflictingEvents []EventResponse `json:"conflicting_events"`
}

type ConflictCheckResponse struct {
	HasConflict bool              `json:"has_conflict"`
	Conflicts   []ConflictDetail  `json:"conflicts,omitempty"`
	Bookings    []BookingResponse `json:"conflicting_bookings,omitempty"`
}

func EventToResponse(event *entity.Event) EventResponse {
	resp := EventResponse{
		ID:              event.ID.String(),
		Title:           event.Title,
		Description:     event.Description,
		Category:        event.Category,
		Date:            event.Date.Format("2006-01-02"),
		StartTime:       event.StartTime,
		EndTime:         event.EndTime,
		Location:        event.Location,
		Capacity:        event.Capacity,
		RegisteredCount: event.RegisteredCount,
		SpotsLeft:       event.Capacity - event.RegisteredCount,
		Status:          event.Status,
		IsRecurring:     event.IsRecurring,
		CreatedBy:       event.CreatedBy.String(),
		CreatedAt:       event.CreatedAt,
	}

	if resp.SpotsLeft < 0 {
		resp.SpotsLeft = 0
	}

	if event.RecurrencePattern != nil {
		pattern := string(*event.RecurrencePattern)
		resp.RecurrencePattern = &pattern
	}
	if event.RecurrenceEndDate != nil {
		end := event.RecurrenceEndDate.Format("2006-01-02")
		resp.RecurrenceEndDate = &end
	}
	if event.SeriesID != nil {
		series := event.SeriesID.String()
		resp.SeriesID = &series
	}

	for _, rid := range event.AssignedResourceIDs {
		resp.ResourceIDs = append(resp.ResourceIDs, rid.String())
	}

	return resp
}

func EventsToResponse(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, EventToResponse(event))
	}
	return out
}

func ConflictErrorToResponse(conflict *entity.ConflictError) ConflictCheckResponse {
	resp := ConflictCheckResponse{HasConflict: true}

	for _, rc := range conflict.Resources {
		resp.Conflicts = append(resp.Conflicts, ConflictDetail{
			ResourceID:        rc.ResourceID,
			ConflictingEvents: EventsToResponse(rc.ConflictingEvents),
		})
	}

	for _, booking := range conflict.Bookings {
		resp.Bookings = append(resp.Bookings, BookingToResponse(booking))
	}

	return resp
}
