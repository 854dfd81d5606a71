package gymcost

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/pkg"

	log "github.com/sirupsen/logrus"
)

type statsService interface {
	Settings(ctx context.Context, userID string) (*Settings, error)
	UpdateSettings(ctx context.Context, settings Settings) (*Settings, error)
	Stats(ctx context.Context, userID string) (*Stats, error)
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcost.getSettings")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	settings, err := handler.service.Settings(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			http.Error(w, "gym cost settings not set", http.StatusNotFound)
			return
		}
		log.Errorf("get gym cost settings for [%s]: %s", userID, err)
		http.Error(w, "failed to get settings", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, settings, http.StatusOK)
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcost.updateSettings")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "content type application/json expected", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	var settings Settings
	if err := json.Unmarshal(body, &settings); err != nil {
		http.Error(w, "invalid settings json", http.StatusBadRequest)
		return
	}
	settings.UserID = userID

	saved, err := handler.service.UpdateSettings(ctx, settings)
	if err != nil {
		if errors.Is(err, ErrInvalidSettings) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("update gym cost settings for [%s]: %s", userID, err)
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, saved, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcost.stats")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	stats, err := handler.service.Stats(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			http.Error(w, "gym cost settings not set", http.StatusNotFound)
			return
		}
		log.Errorf("gym cost stats for [%s]: %s", userID, err)
		http.Error(w, "failed to calculate stats", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, stats, http.StatusOK)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal gym cost response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
