package models

import "time"

type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	DateTime      time.Time `json:"dateTime"`
	Location      string    `json:"location"`
	Capacity      int       `json:"capacity"`
	Registrations int       `json:"registrations"`
}

func (e *Event) AvailableSpots() int {
	return e.Capacity - e.Registrations
}

func (e *Event) IsPast(now time.Time) bool {
	return e.DateTime.Before(now)
}
