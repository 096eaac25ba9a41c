package usecase

import (
	"testing"

	"eventhub/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEvent(date string) *entity.Event {
	return &entity.Event{
		Base:            entity.Base{ID: uuid.New()},
		Title:           "Team Sync",
		Category:        entity.CategoryMeeting,
		Date:            day(date),
		StartTime:       "09:00",
		EndTime:         "10:00",
		Capacity:        10,
		RegisteredCount: 5,
		Status:          entity.EventStatusUpcoming,
	}
}

func TestExpandRecurrenceWeekly(t *testing.T) {
	base := baseEvent("2024-01-01")
	base.IsRecurring = true
	pattern := entity.RecurrenceWeekly
	until := day("2024-01-22")
	base.RecurrencePattern = &pattern
	base.RecurrenceEndDate = &until

	series, err := expandRecurrence(base, entity.RecurrenceWeekly, day("2024-01-22"))
	require.NoError(t, err)
	require.Len(t, series, 4)

	wantDates := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}
	seen := map[uuid.UUID]bool{}
	for i, instance := range series {
		assert.Equal(t, wantDates[i], instance.Date.Format("2006-01-02"))
		assert.Equal(t, 0, instance.RegisteredCount, "instances start empty")
		assert.Equal(t, "09:00", instance.StartTime)
		assert.Equal(t, "10:00", instance.EndTime)

		require.NotNil(t, instance.SeriesID)
		assert.Equal(t, *series[0].SeriesID, *instance.SeriesID, "series id is shared")

		assert.False(t, instance.IsRecurring, "control fields live on the request, not the instances")
		assert.Nil(t, instance.RecurrencePattern)
		assert.Nil(t, instance.RecurrenceEndDate)

		assert.False(t, seen[instance.ID], "instance ids are unique")
		seen[instance.ID] = true
	}
}

func TestExpandRecurrenceDaily(t *testing.T) {
	series, err := expandRecurrence(baseEvent("2024-03-01"), entity.RecurrenceDaily, day("2024-03-03"))
	require.NoError(t, err)
	assert.Len(t, series, 3)
}

func TestExpandRecurrenceBiweekly(t *testing.T) {
	series, err := expandRecurrence(baseEvent("2024-01-01"), entity.RecurrenceBiweekly, day("2024-01-29"))
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, "2024-01-15", series[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-29", series[2].Date.Format("2006-01-02"))
}

func TestExpandRecurrenceMonthly(t *testing.T) {
	series, err := expandRecurrence(baseEvent("2024-01-15"), entity.RecurrenceMonthly, day("2024-04-15"))
	require.NoError(t, err)
	require.Len(t, series, 4)
	assert.Equal(t, "2024-04-15", series[3].Date.Format("2006-01-02"))
}

func TestExpandRecurrenceEndBetweenOccurrences(t *testing.T) {
	// End date falls mid-gap: the last occurrence before it is kept, no
	// occurrence past it is generated.
	series, err := expandRecurrence(baseEvent("2024-01-01"), entity.RecurrenceWeekly, day("2024-01-10"))
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-01-08", series[1].Date.Format("2006-01-02"))
}

func TestExpandRecurrenceSingleOccurrence(t *testing.T) {
	series, err := expandRecurrence(baseEvent("2024-01-01"), entity.RecurrenceWeekly, day("2024-01-01"))
	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestExpandRecurrenceUnknownPattern(t *testing.T) {
	_, err := expandRecurrence(baseEvent("2024-01-01"), entity.RecurrencePattern("yearly"), day("2025-01-01"))
	assert.ErrorIs(t, err, entity.ErrInvalidRecurrencePattern)
}
