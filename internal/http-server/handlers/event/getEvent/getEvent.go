package getEvent

import (
	"errors"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type EventInfoResponse struct {
	response.Response
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	DateTime           time.Time     `json:"dateTime"`
	Location           string        `json:"location"`
	Capacity           int           `json:"capacity"`
	RegisteredUsers    []models.User `json:"registeredUsers"`
	TotalRegistrations int           `json:"totalRegistrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEventWithUsers(id string) (*models.Event, []models.User, error)
}

func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if err := uuid.Validate(eventID); err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, users, err := getter.GetEventWithUsers(eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		log.Info("event retrieved", slog.Int("registrations", len(users)))

		responseOK(w, r, event, users)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, users []models.User) {
	if users == nil {
		users = []models.User{}
	}

	render.JSON(w, r, EventInfoResponse{
		Response:           response.OK(),
		ID:                 event.ID,
		Title:              event.Title,
		DateTime:           event.DateTime,
		Location:           event.Location,
		Capacity:           event.Capacity,
		RegisteredUsers:    users,
		TotalRegistrations: len(users),
	})
}
