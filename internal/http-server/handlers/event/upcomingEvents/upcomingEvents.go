package upcomingEvents

import (
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type EventListItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	DateTime       time.Time `json:"dateTime"`
	Location       string    `json:"location"`
	Capacity       int       `json:"capacity"`
	Registrations  int       `json:"registrations"`
	AvailableSpots int       `json:"availableSpots"`
}

type EventsResponse struct {
	response.Response
	Count  int             `json:"count"`
	Events []EventListItem `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	UpcomingEvents() ([]models.Event, error)
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.upcomingEvents.New"

		log = log.With(slog.String("op", op))

		events, err := eventsGetter.UpcomingEvents()
		if err != nil {
			log.Error("failed to get upcoming events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get upcoming events"))
			return
		}

		log.Info("upcoming events retrieved", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	items := make([]EventListItem, 0, len(events))
	for _, event := range events {
		items = append(items, EventListItem{
			ID:             event.ID,
			Title:          event.Title,
			DateTime:       event.DateTime,
			Location:       event.Location,
			Capacity:       event.Capacity,
			Registrations:  event.Registrations,
			AvailableSpots: event.AvailableSpots(),
		})
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Count:    len(items),
		Events:   items,
	})
}
