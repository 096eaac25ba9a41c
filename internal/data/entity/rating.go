package entity

import (
	"github.com/google/uuid"
)

type RatingType string

const (
	RatingTypeEvent    RatingType = "event"
	RatingTypeResource RatingType = "resource"
)

type Rating struct {
	Base
	RatingType RatingType `db:"rating_type"`
	EventID    *uuid.UUID `db:"event_id"`
	ResourceID *uuid.UUID `db:"resource_id"`
	Rating     int        `db:"rating"`
	Review     string     `db:"review"`
	CreatedBy  uuid.UUID  `db:"created_by"`
}
