package main

import (
	"context"
	"errors"
	"eventRegistry/internal/config"
	"eventRegistry/internal/http-server/handlers/event/cancelRegistration"
	"eventRegistry/internal/http-server/handlers/event/createEvent"
	"eventRegistry/internal/http-server/handlers/event/eventStats"
	"eventRegistry/internal/http-server/handlers/event/getEvent"
	"eventRegistry/internal/http-server/handlers/event/registerForEvent"
	"eventRegistry/internal/http-server/handlers/event/upcomingEvents"
	"eventRegistry/internal/http-server/handlers/healthCheck"
	"eventRegistry/internal/http-server/middleware/mwlogger"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/handlers/slogpretty"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/storage/postgres"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event registry", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	if cfg.Database.MigrationsPath != "" {
		if err := postgres.MigrateUp(&cfg.Database); err != nil {
			log.Error("failed to run migrations", sl.Err(err))
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", apiIndex)
	router.Get("/health", healthCheck.New(log, storage))

	router.Route("/api", func(r chi.Router) {
		r.Post("/events", createEvent.New(log, storage))
		r.Get("/events/upcoming", upcomingEvents.New(log, storage))
		r.Get("/events/{id}", getEvent.New(log, storage))
		r.Get("/events/{id}/stats", eventStats.New(log, storage))
		r.Post("/events/{id}/register", registerForEvent.New(log, storage))
		r.Delete("/events/{id}/register/{userId}", cancelRegistration.New(log, storage))
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("route not found"))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func apiIndex(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"message": "Event Registry API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":             "GET /health",
			"createEvent":        "POST /api/events",
			"getEvent":           "GET /api/events/{id}",
			"upcomingEvents":     "GET /api/events/upcoming",
			"eventStats":         "GET /api/events/{id}/stats",
			"registerForEvent":   "POST /api/events/{id}/register",
			"cancelRegistration": "DELETE /api/events/{id}/register/{userId}",
		},
	})
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
