package entity

import (
	"time"

	"github.com/google/uuid"
)

type WaitingStatus string

const (
	WaitingStatusWaiting   WaitingStatus = "waiting"
	WaitingStatusNotified  WaitingStatus = "notified"
	WaitingStatusConverted WaitingStatus = "converted"
)

// WaitingListEntry queues a user for a full event. Position is the join
// sequence number assigned at insert; it is never renumbered when earlier
// entries leave the list. Current rank among waiting entries is computed
// on read for display.
type WaitingListEntry struct {
	Base
	EventID    uuid.UUID     `db:"event_id"`
	UserID     uuid.UUID     `db:"user_id"`
	UserEmail  string        `db:"user_email"`
	Position   int           `db:"position"`
	Status     WaitingStatus `db:"status"`
	NotifiedAt *time.Time    `db:"notified_at"`
}
