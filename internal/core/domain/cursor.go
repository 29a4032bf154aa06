package domain

import "time"

// DateCursor holds the currently selected calendar day. Comparisons are
// day-granular in local time; the time-of-day component of the held value
// is irrelevant. Not persisted, lives for the duration of a session.
type DateCursor struct {
	current time.Time
	now     func() time.Time
}

// NewDateCursor returns a cursor positioned on today.
func NewDateCursor() *DateCursor {
	return NewDateCursorAt(time.Now, time.Now())
}

// NewDateCursorAt builds a cursor with an injectable clock, for tests.
func NewDateCursorAt(now func() time.Time, start time.Time) *DateCursor {
	return &DateCursor{current: start, now: now}
}

// Current returns the cursor's date.
func (c *DateCursor) Current() time.Time {
	return c.current
}

// Shift moves the cursor by deltaDays, rolling over month and year
// boundaries via calendar arithmetic.
func (c *DateCursor) Shift(deltaDays int) time.Time {
	c.current = c.current.AddDate(0, 0, deltaDays)
	return c.current
}

// ResetToToday snaps the cursor back to the current day.
func (c *DateCursor) ResetToToday() time.Time {
	c.current = c.now()
	return c.current
}

// IsToday reports whether the cursor's year, month and day-of-month equal
// today's, compared in local time.
func (c *DateCursor) IsToday() bool {
	return SameDay(c.current, c.now())
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
