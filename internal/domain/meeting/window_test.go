//go:build unit

package meeting_test

import (
	"testing"
	"time"

	"meetgrid/internal/domain/meeting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, raw string) meeting.Slot {
	t.Helper()
	s, err := meeting.ParseSlot(raw)
	require.NoError(t, err)
	return s
}

func TestNewDayWindow(t *testing.T) {
	eventStart := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	eventEnd := time.Date(2025, 11, 6, 18, 0, 0, 0, time.UTC)

	t.Run("derives window from event time of day", func(t *testing.T) {
		w, err := meeting.NewDayWindow(eventStart, eventEnd, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 11, 4, 9, 0, 0, 0, time.UTC), w.Start())
		assert.Equal(t, time.Date(2025, 11, 4, 18, 0, 0, 0, time.UTC), w.End())
	})

	t.Run("first and last event days are inside the span", func(t *testing.T) {
		_, err := meeting.NewDayWindow(eventStart, eventEnd, eventStart)
		require.NoError(t, err)
		_, err = meeting.NewDayWindow(eventStart, eventEnd, eventEnd)
		require.NoError(t, err)
	})

	t.Run("day outside event span is rejected", func(t *testing.T) {
		_, err := meeting.NewDayWindow(eventStart, eventEnd, time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, meeting.ErrDayOutsideEvent)

		_, err = meeting.NewDayWindow(eventStart, eventEnd, time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, meeting.ErrDayOutsideEvent)
	})

	t.Run("inverted time of day falls back to the default window", func(t *testing.T) {
		// Bounds like 18:00 on day one to 09:00 on the last day produce an
		// inverted per-day window.
		start := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
		end := time.Date(2025, 11, 6, 9, 0, 0, 0, time.UTC)

		w, err := meeting.NewDayWindow(start, end, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC), w.Start())
		assert.Equal(t, time.Date(2025, 11, 4, 16, 0, 0, 0, time.UTC), w.End())
	})

	t.Run("zero width time of day falls back to the default window", func(t *testing.T) {
		start := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
		end := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)

		w, err := meeting.NewDayWindow(start, end, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Equal(t, 10, w.Start().Hour())
		assert.Equal(t, 16, w.End().Hour())
	})

	t.Run("near full day bounds keep the derived window", func(t *testing.T) {
		// 00:00 to 23:59 is wide but not inverted, so no fallback applies and
		// a morning slot is inside the window.
		start := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 11, 4, 23, 59, 0, 0, time.UTC)

		w, err := meeting.NewDayWindow(start, end, start)
		require.NoError(t, err)

		assert.True(t, w.Contains(mustSlot(t, "2025-11-04T09:00:00Z")))
		assert.True(t, w.Contains(mustSlot(t, "2025-11-04T00:00:00Z")))
		assert.True(t, w.Contains(mustSlot(t, "2025-11-04T23:30:00Z")))
	})
}

func TestDayWindowContains(t *testing.T) {
	eventStart := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	eventEnd := time.Date(2025, 11, 6, 18, 0, 0, 0, time.UTC)

	w, err := meeting.NewDayWindow(eventStart, eventEnd, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	cases := []struct {
		name string
		slot string
		want bool
	}{
		{name: "window start is included", slot: "2025-11-04T09:00:00Z", want: true},
		{name: "mid window", slot: "2025-11-04T13:30:00Z", want: true},
		{name: "last slot before end", slot: "2025-11-04T17:30:00Z", want: true},
		{name: "window end is excluded", slot: "2025-11-04T18:00:00Z", want: false},
		{name: "before window", slot: "2025-11-04T08:30:00Z", want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, w.Contains(mustSlot(t, c.slot)))
		})
	}
}
