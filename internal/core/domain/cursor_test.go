package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDateCursor_ShiftRollsOverBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		days  int
		want  time.Time
	}{
		{
			name:  "forward within month",
			start: time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local),
			days:  1,
			want:  time.Date(2024, 3, 11, 12, 0, 0, 0, time.Local),
		},
		{
			name:  "backward across month boundary",
			start: time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local),
			days:  -1,
			want:  time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local),
		},
		{
			name:  "forward across year boundary",
			start: time.Date(2023, 12, 31, 8, 30, 0, 0, time.Local),
			days:  1,
			want:  time.Date(2024, 1, 1, 8, 30, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := domain.NewDateCursorAt(fixedClock(tt.start), tt.start)
			got := cursor.Shift(tt.days)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDateCursor_ShiftRoundTrip(t *testing.T) {
	starts := []time.Time{
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
		time.Date(2023, 12, 31, 23, 59, 59, 0, time.Local),
		time.Date(2024, 7, 15, 9, 0, 0, 0, time.Local),
	}
	for _, start := range starts {
		cursor := domain.NewDateCursorAt(fixedClock(start), start)
		cursor.Shift(1)
		got := cursor.Shift(-1)
		assert.True(t, got.Equal(start), "round trip from %v yielded %v", start, got)
	}
}

func TestDateCursor_IsToday(t *testing.T) {
	now := time.Date(2024, 5, 20, 14, 0, 0, 0, time.Local)
	cursor := domain.NewDateCursorAt(fixedClock(now), now)

	assert.True(t, cursor.IsToday())

	cursor.Shift(-1)
	assert.False(t, cursor.IsToday())

	cursor.ResetToToday()
	assert.True(t, cursor.IsToday())

	// Time-of-day does not matter, only the calendar day.
	midnight := time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local)
	cursor = domain.NewDateCursorAt(fixedClock(now), midnight)
	assert.True(t, cursor.IsToday())
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same day different times",
			a:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local),
			b:    time.Date(2024, 5, 20, 23, 59, 59, 0, time.Local),
			want: true,
		},
		{
			name: "adjacent days around midnight",
			a:    time.Date(2024, 5, 20, 23, 59, 59, 0, time.Local),
			b:    time.Date(2024, 5, 21, 0, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day-of-month different months",
			a:    time.Date(2024, 4, 20, 12, 0, 0, 0, time.Local),
			b:    time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day-of-month and month different years",
			a:    time.Date(2023, 5, 20, 12, 0, 0, 0, time.Local),
			b:    time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SameDay(tt.a, tt.b))
		})
	}
}
