package meeting

import (
	"errors"
	"time"
)

var ErrDayOutsideEvent = errors.New("day outside event range")

// Fallback window for events whose bounds carry a degenerate time-of-day
// (inverted or zero-width). An arbitrary but long-standing default.
const (
	fallbackWindowStartHour = 10
	fallbackWindowEndHour   = 16
)

// DayWindow is the portion of a UTC calendar day during which slots may be
// offered.
type DayWindow struct {
	start time.Time
	end   time.Time
}

// NewDayWindow derives the permitted window for day by reapplying the
// time-of-day components of the event bounds to that day. Days outside the
// inclusive UTC-day span of the event are rejected. When the derived window
// is inverted or zero-width the fixed fallback window is substituted.
func NewDayWindow(eventStart, eventEnd time.Time, day time.Time) (DayWindow, error) {
	d := midnightUTC(day)
	if d.Before(midnightUTC(eventStart)) || d.After(midnightUTC(eventEnd)) {
		return DayWindow{}, ErrDayOutsideEvent
	}

	start := d.Add(timeOfDay(eventStart))
	end := d.Add(timeOfDay(eventEnd))
	if !end.After(start) {
		start = d.Add(fallbackWindowStartHour * time.Hour)
		end = d.Add(fallbackWindowEndHour * time.Hour)
	}

	return DayWindow{start: start, end: end}, nil
}

func (w DayWindow) Start() time.Time {
	return w.start
}

func (w DayWindow) End() time.Time {
	return w.end
}

// Contains reports whether the slot's start lies in [start, end).
func (w DayWindow) Contains(s Slot) bool {
	t := s.Start()
	return !t.Before(w.start) && t.Before(w.end)
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func timeOfDay(t time.Time) time.Duration {
	u := t.UTC()
	return time.Duration(u.Hour())*time.Hour +
		time.Duration(u.Minute())*time.Minute +
		time.Duration(u.Second())*time.Second
}
