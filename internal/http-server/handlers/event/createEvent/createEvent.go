package createEvent

import (
	"errors"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title    string    `json:"title" validate:"required,min=3,max=200"`
	DateTime time.Time `json:"dateTime" validate:"required"`
	Location string    `json:"location" validate:"required,min=3,max=200"`
	Capacity int       `json:"capacity" validate:"required,min=1,max=1000"`
}

type EventResponse struct {
	response.Response
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(title string, dateTime time.Time, location string, capacity int) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event, err := creator.CreateEvent(req.Title, req.DateTime, req.Location, req.Capacity)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))

			if errors.Is(err, storage.ErrInvalidCapacity) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("capacity must be between 1 and 1000"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.String("id", event.ID))

		responseCreated(w, r, event)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Message:  "event created successfully",
		Event:    event,
	})
}
