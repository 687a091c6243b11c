package meeting

import (
	"errors"
	"strings"
	"time"
)

const (
	SlotMinutes  = 30
	SlotDuration = SlotMinutes * time.Minute
)

var ErrUnparsableTime = errors.New("unparsable timestamp")

// Slot is a 30-minute bucket on the UTC grid, identified by its floored
// start instant.
type Slot struct {
	start time.Time
}

// NormalizeSlot floors t to the canonical slot grid: UTC, minute < 30 -> :00
// otherwise :30, seconds and sub-seconds zeroed. Idempotent.
func NormalizeSlot(t time.Time) Slot {
	u := t.UTC()
	minute := 0
	if u.Minute() >= 30 {
		minute = 30
	}
	return Slot{start: time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), minute, 0, 0, time.UTC)}
}

var wallClockLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseSlot normalizes a timestamp string to its slot. Inputs carrying an
// explicit offset or Z are converted to UTC; wall-clock inputs without an
// offset are taken as already-UTC wall time, never shifted through the local
// zone.
func ParseSlot(raw string) (Slot, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Slot{}, ErrUnparsableTime
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NormalizeSlot(t), nil
	}
	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return NormalizeSlot(t), nil
		}
	}
	return Slot{}, ErrUnparsableTime
}

func (s Slot) Start() time.Time {
	return s.start
}

func (s Slot) End() time.Time {
	return s.start.Add(SlotDuration)
}

// Day returns midnight UTC of the slot's calendar day.
func (s Slot) Day() time.Time {
	return time.Date(s.start.Year(), s.start.Month(), s.start.Day(), 0, 0, 0, 0, time.UTC)
}

func (s Slot) IsZero() bool {
	return s.start.IsZero()
}

func (s Slot) Equal(o Slot) bool {
	return s.start.Equal(o.start)
}

// String serializes with second precision and a trailing Z.
func (s Slot) String() string {
	return s.start.Format(time.RFC3339)
}
