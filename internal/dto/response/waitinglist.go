package response

import (
	"time"

	"eventhub/internal/data/entity"
)

type WaitingListEntryResponse struct {
	ID         string               `json:"id"`
	EventID    string               `json:"event_id"`
	UserID     string               `json:"user_id"`
	Position   int                  `json:"position"`
	Status     entity.WaitingStatus `json:"status"`
	NotifiedAt *time.Time           `json:"notified_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`

	// Rank is the entry's current place among still-waiting entries,
	// computed on read. Zero for entries no longer waiting.
	Rank int `json:"rank,omitempty"`
}

func WaitingListEntryToResponse(entry *entity.WaitingListEntry, rank int) WaitingListEntryResponse {
	return WaitingListEntryResponse{
		ID:         entry.ID.String(),
		EventID:    entry.EventID.String(),
		UserID:     entry.UserID.String(),
		Position:   entry.Position,
		Status:     entry.Status,
		NotifiedAt: entry.NotifiedAt,
		CreatedAt:  entry.CreatedAt,
		Rank:       rank,
	}
}

// WaitingListToResponse ranks waiting entries by join order; notified and
// converted entries keep rank zero.
func WaitingListToResponse(entries []*entity.WaitingListEntry) []WaitingListEntryResponse {
	out := make([]WaitingListEntryResponse, 0, len(entries))
	rank := 0
	for _, entry := range entries {
		r := 0
		if entry.Status == entity.WaitingStatusWaiting {
			rank++
			r = rank
		}
		out = append(out, WaitingListEntryToResponse(entry, r))
	}
	return out
}
