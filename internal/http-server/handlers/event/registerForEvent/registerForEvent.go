package registerForEvent

import (
	"errors"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Either UserID alone, or UserName and UserEmail together. The mode check is
// done by the handler; the per-field constraints by the validator.
type RegisterRequest struct {
	UserID    string `json:"userId,omitempty" validate:"omitempty,uuid"`
	UserName  string `json:"userName,omitempty" validate:"omitempty,min=2,max=100"`
	UserEmail string `json:"userEmail,omitempty" validate:"omitempty,email"`
}

type RegisterResponse struct {
	response.Response
	Message      string               `json:"message"`
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRegistrar
type EventRegistrar interface {
	RegisterForEvent(eventID string, ident models.UserIdentity) (*models.Registration, error)
}

func New(log *slog.Logger, registrar EventRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registerForEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if err := uuid.Validate(eventID); err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req RegisterRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		req.UserEmail = normalizeEmail(req.UserEmail)

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if req.UserID == "" && (req.UserName == "" || req.UserEmail == "") {
			log.Error("no user identification supplied")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("either userId or both userName and userEmail are required"))
			return
		}

		ident := models.UserIdentity{
			UserID: req.UserID,
			Name:   req.UserName,
			Email:  req.UserEmail,
		}

		registration, err := registrar.RegisterForEvent(eventID, ident)
		if err != nil {
			log.Error("failed to register for event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, storage.ErrEventInPast):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("cannot register for past events"))
			case errors.Is(err, storage.ErrAlreadyRegistered):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("user is already registered for this event"))
			case errors.Is(err, storage.ErrEventFull):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event is at full capacity"))
			case errors.Is(err, storage.ErrEmailTaken):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email is already taken"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register for event"))
			}

			return
		}

		log.Info("user registered", slog.String("user_id", registration.UserID))

		responseCreated(w, r, registration)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func responseCreated(w http.ResponseWriter, r *http.Request, registration *models.Registration) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RegisterResponse{
		Response:     response.OK(),
		Message:      "successfully registered for event",
		Registration: registration,
	})
}
