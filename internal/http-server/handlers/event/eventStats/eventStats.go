package eventStats

import (
	"errors"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type StatsResponse struct {
	response.Response
	*models.EventStats
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	EventStats(id string) (*models.EventStats, error)
}

func New(log *slog.Logger, getter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventStats.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if err := uuid.Validate(eventID); err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		stats, err := getter.EventStats(eventID)
		if err != nil {
			log.Error("failed to get event stats", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event stats"))
			return
		}

		log.Info("event stats retrieved",
			slog.Int("total", stats.TotalRegistrations),
			slog.Bool("is_full", stats.IsFull),
		)

		responseOK(w, r, stats)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, stats *models.EventStats) {
	render.JSON(w, r, StatsResponse{
		Response:   response.OK(),
		EventStats: stats,
	})
}
