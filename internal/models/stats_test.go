package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEventStats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name              string
		capacity          int
		registrations     int
		expectedRemaining int
		expectedPercent   float64
		expectedFull      bool
	}{
		{name: "Empty event", capacity: 100, registrations: 0, expectedRemaining: 100, expectedPercent: 0, expectedFull: false},
		{name: "One third", capacity: 3, registrations: 1, expectedRemaining: 2, expectedPercent: 33.33, expectedFull: false},
		{name: "Two thirds", capacity: 3, registrations: 2, expectedRemaining: 1, expectedPercent: 66.67, expectedFull: false},
		{name: "Full", capacity: 2, registrations: 2, expectedRemaining: 0, expectedPercent: 100, expectedFull: true},
		{name: "One of seven", capacity: 7, registrations: 1, expectedRemaining: 6, expectedPercent: 14.29, expectedFull: false},
		{name: "Single seat taken", capacity: 1, registrations: 1, expectedRemaining: 0, expectedPercent: 100, expectedFull: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			event := &Event{
				ID:            "3f2504e0-4f89-41d3-9a0c-0305e82c3301",
				Title:         "Go Meetup",
				DateTime:      time.Date(2027, 6, 10, 18, 0, 0, 0, time.UTC),
				Location:      "Berlin",
				Capacity:      tc.capacity,
				Registrations: tc.registrations,
			}

			stats := NewEventStats(event)

			assert.Equal(t, event.ID, stats.EventID)
			assert.Equal(t, event.Title, stats.EventTitle)
			assert.Equal(t, tc.capacity, stats.Capacity)
			assert.Equal(t, tc.registrations, stats.TotalRegistrations)
			assert.Equal(t, tc.expectedRemaining, stats.RemainingCapacity)
			assert.InDelta(t, tc.expectedPercent, stats.PercentageUsed, 0.001)
			assert.Equal(t, tc.expectedFull, stats.IsFull)

			assert.GreaterOrEqual(t, stats.PercentageUsed, 0.0)
			assert.LessOrEqual(t, stats.PercentageUsed, 100.0)
		})
	}
}

func TestEventAvailableSpots(t *testing.T) {
	t.Parallel()

	event := &Event{Capacity: 10, Registrations: 4}
	assert.Equal(t, 6, event.AvailableSpots())
}

func TestEventIsPast(t *testing.T) {
	t.Parallel()

	now := time.Date(2027, 6, 10, 18, 0, 0, 0, time.UTC)

	past := &Event{DateTime: now.Add(-time.Hour)}
	future := &Event{DateTime: now.Add(time.Hour)}

	assert.True(t, past.IsPast(now))
	assert.False(t, future.IsPast(now))
}
