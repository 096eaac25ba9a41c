package response

import (
	"time"

	"eventhub/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	BookingType entity.BookingType   `json:"booking_type"`
	EventID     *string              `json:"event_id,omitempty"`
	ResourceID  *string              `json:"resource_id,omitempty"`
	Date        string               `json:"date"`
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	Purpose     string               `json:"purpose,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	Status      entity.BookingStatus `json:"status"`
	CreatedBy   string               `json:"created_by"`
	CreatedAt   time.Time            `json:"created_at"`
}

// BookingDetailResponse embeds the referenced event or resource for
// single-booking reads.
type BookingDetailResponse struct {
	BookingResponse
	Event    *EventResponse    `json:"event,omitempty"`
	Resource *ResourceResponse `json:"resource,omitempty"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          booking.ID.String(),
		BookingType: booking.BookingType,
		Date:        booking.Date.Format("2006-01-02"),
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Purpose:     booking.Purpose,
		Notes:       booking.Notes,
		Status:      booking.Status,
		CreatedBy:   booking.CreatedBy.String(),
		CreatedAt:   booking.CreatedAt,
	}

	if booking.EventID != nil {
		id := booking.EventID.String()
		resp.EventID = &id
	}
	if booking.ResourceID != nil {
		id := booking.ResourceID.String()
		resp.ResourceID = &id
	}

	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, BookingToResponse(booking))
	}
	return out
}
