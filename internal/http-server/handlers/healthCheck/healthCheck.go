package healthCheck

import (
	"eventRegistry/internal/lib/logger/sl"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Error     string    `json:"error,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Pinger
type Pinger interface {
	Ping() error
}

func New(log *slog.Logger, pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.healthCheck.New"

		log = log.With(slog.String("op", op))

		if err := pinger.Ping(); err != nil {
			log.Error("database unreachable", sl.Err(err))

			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, HealthResponse{
				Status:   "unhealthy",
				Database: "disconnected",
				Error:    err.Error(),
			})
			return
		}

		render.JSON(w, r, HealthResponse{
			Status:    "healthy",
			Database:  "connected",
			Timestamp: time.Now().UTC(),
		})
	}
}
