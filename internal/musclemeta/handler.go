package musclemeta

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/extraction"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type metadataGetter interface {
	Get(ctx context.Context, exerciseName string) (*ExerciseMetadata, error)
}

type Handler struct {
	service metadataGetter
}

func NewHandler(service metadataGetter) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGetMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.musclemeta.get")
	defer span.End()

	if _, ok := auth.RequireUserID(w, r); !ok {
		return
	}

	name := mux.Vars(r)["name"]
	md, err := handler.service.Get(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyName):
			http.Error(w, "exercise name empty", http.StatusBadRequest)
		case errors.Is(err, extraction.ErrNotConfigured):
			http.Error(w, extraction.MsgNotConfigured, http.StatusInternalServerError)
		case errors.Is(err, extraction.ErrRateLimited):
			http.Error(w, extraction.MsgRateLimited, http.StatusTooManyRequests)
		case errors.Is(err, ErrMissingPrimaryMuscles), errors.Is(err, ErrInvalidAnswer):
			log.Errorf("muscle info for [%s]: %s", name, err)
			http.Error(w, "failed to get muscle info", http.StatusBadGateway)
		default:
			log.Errorf("muscle info for [%s]: %s", name, err)
			http.Error(w, "failed to get muscle info", http.StatusInternalServerError)
		}
		return
	}

	respJson, err := json.Marshal(md)
	if err != nil {
		log.Errorf("marshal muscle info error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
