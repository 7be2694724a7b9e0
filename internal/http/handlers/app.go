package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"studio/internal/domain"
	"studio/internal/imagegen"
	"studio/internal/infra"
	"studio/internal/providers/samples"
	"studio/internal/session"
)

// App carries the wired dependencies every handler needs.
type App struct {
	Config   *infra.Config
	Logger   infra.Logger
	Composer *imagegen.Composer
	Sessions *session.Store
	Samples  *samples.Fetcher
}

func NewApp(cfg *infra.Config, logger infra.Logger, composer *imagegen.Composer, sessions *session.Store, fetcher *samples.Fetcher) *App {
	return &App{
		Config:   cfg,
		Logger:   logger,
		Composer: composer,
		Sessions: sessions,
		Samples:  fetcher,
	}
}

// session resolves the caller's session from the X-Session-ID header, minting
// one when absent, and echoes the ID so the browser can hold on to it.
func (a *App) session(w http.ResponseWriter, r *http.Request) *session.Session {
	sess := a.Sessions.Get(strings.TrimSpace(r.Header.Get("X-Session-ID")))
	w.Header().Set("X-Session-ID", sess.ID)
	return sess
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}

// generationError maps the failure taxonomy onto HTTP statuses. The message
// always carries err.Error() verbatim; the front end shows it as-is.
func (a *App) generationError(w http.ResponseWriter, err error) {
	var blocked *domain.SafetyBlockedError
	var noImage *domain.NoImageError
	switch {
	case errors.Is(err, domain.ErrMissingGarment),
		errors.Is(err, domain.ErrMissingModel),
		errors.Is(err, domain.ErrBackgroundConflict):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.As(err, &blocked):
		a.error(w, http.StatusUnprocessableEntity, "safety_blocked", err.Error())
	case errors.As(err, &noImage):
		a.error(w, http.StatusBadGateway, "no_image", err.Error())
	default:
		message := err.Error()
		if message == "" {
			message = "unknown error"
		}
		a.error(w, http.StatusInternalServerError, "internal", message)
	}
}
