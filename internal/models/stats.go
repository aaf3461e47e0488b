package models

import "math"

type EventStats struct {
	EventID            string  `json:"eventId"`
	EventTitle         string  `json:"eventTitle"`
	Capacity           int     `json:"capacity"`
	TotalRegistrations int     `json:"totalRegistrations"`
	RemainingCapacity  int     `json:"remainingCapacity"`
	PercentageUsed     float64 `json:"percentageUsed"`
	IsFull             bool    `json:"isFull"`
}

func NewEventStats(event *Event) *EventStats {
	remaining := event.Capacity - event.Registrations

	return &EventStats{
		EventID:            event.ID,
		EventTitle:         event.Title,
		Capacity:           event.Capacity,
		TotalRegistrations: event.Registrations,
		RemainingCapacity:  remaining,
		PercentageUsed:     roundPercent(event.Registrations, event.Capacity),
		IsFull:             remaining == 0,
	}
}

// roundPercent returns used/total as a percentage rounded to 2 decimal places.
func roundPercent(used, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(used)/float64(total)*10000) / 100
}
