package usecase

import (
	"time"

	"eventhub/internal/data/entity"

	"github.com/google/uuid"
)

// expandRecurrence builds the full series for a recurring event: the base
// occurrence plus one copy per pattern step, up to and including the last
// occurrence at or before until. Every instance gets a fresh id, a shared
// series id and a zero registration count. The recurrence-control fields
// are stripped from each instance; only the series id ties them together.
func expandRecurrence(base *entity.Event, pattern entity.RecurrencePattern, until time.Time) ([]*entity.Event, error) {
	var step func(time.Time) time.Time
	switch pattern {
	case entity.RecurrenceDaily:
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	case entity.RecurrenceWeekly:
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }
	case entity.RecurrenceBiweekly:
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 14) }
	case entity.RecurrenceMonthly:
		step = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	default:
		return nil, entity.ErrInvalidRecurrencePattern
	}

	seriesID := uuid.New()
	now := time.Now()

	var series []*entity.Event
	for date := base.Date; !date.After(until); date = step(date) {
		instance := *base
		instance.ID = uuid.New()
		instance.CreatedAt = now
		instance.UpdatedAt = now
		instance.Date = date
		instance.RegisteredCount = 0
		instance.SeriesID = &seriesID
		instance.IsRecurring = false
		instance.RecurrencePattern = nil
		instance.RecurrenceEndDate = nil

		if base.AssignedResourceIDs != nil {
			instance.AssignedResourceIDs = append([]uuid.UUID(nil), base.AssignedResourceIDs...)
		}

		series = append(series, &instance)
	}

	return series, nil
}
