package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		s1, e1, s2, e2         string
		want                   bool
	}{
		{"identical ranges", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"strict containment", "09:00", "10:00", "09:30", "09:45", true},
		{"superset", "09:30", "09:45", "09:00", "10:00", true},
		{"touching boundary", "09:00", "10:00", "10:00", "11:00", false},
		{"touching boundary reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
		{"one minute overlap", "09:00", "10:01", "10:00", "11:00", true},
		{"zero-length candidate", "09:30", "09:30", "09:00", "10:00", false},
		{"zero-length existing", "09:00", "10:00", "09:30", "09:30", false},
		{"zero-length both", "09:30", "09:30", "09:30", "09:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
		})
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	ranges := [][2]string{
		{"08:00", "09:00"}, {"08:30", "09:30"}, {"09:00", "17:00"},
		{"00:00", "23:59"}, {"12:00", "12:30"}, {"16:59", "17:00"},
	}

	for _, a := range ranges {
		for _, b := range ranges {
			assert.Equal(t,
				Overlaps(a[0], a[1], b[0], b[1]),
				Overlaps(b[0], b[1], a[0], a[1]),
				"overlaps(%v, %v) must equal overlaps(%v, %v)", a, b, b, a,
			)
		}
	}
}

func TestValidTime(t *testing.T) {
	assert.True(t, ValidTime("00:00"))
	assert.True(t, ValidTime("09:30"))
	assert.True(t, ValidTime("23:59"))
	assert.False(t, ValidTime("24:00"))
	assert.False(t, ValidTime("9:30"))
	assert.False(t, ValidTime("09:60"))
	assert.False(t, ValidTime("0930"))
	assert.False(t, ValidTime(""))
}

func TestValidRange(t *testing.T) {
	assert.NoError(t, ValidRange("09:00", "10:00"))
	assert.Error(t, ValidRange("10:00", "09:00"), "inverted range")
	assert.Error(t, ValidRange("09:00", "09:00"), "empty range")
	assert.Error(t, ValidRange("9:00", "10:00"), "malformed start")
	assert.Error(t, ValidRange("09:00", "25:00"), "malformed end")
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, 60, Minutes("09:00", "10:00"))
	assert.Equal(t, 90, Minutes("10:15", "11:45"))
	assert.Equal(t, 0, Minutes("12:00", "12:00"))
}
