package screenshots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/internal/workouts"
	"github.com/2beens/coachshot/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=screenshots_mocks_test.go -package=screenshots_test

type workoutGetter interface {
	Get(ctx context.Context, userID, id string) (*workouts.Workout, error)
}

type urlResolver interface {
	URL(ctx context.Context, ref string) (string, error)
}

type URLsResponse struct {
	WorkoutID string   `json:"workoutId"`
	URLs      []string `json:"urls"`
}

type Handler struct {
	workouts workoutGetter
	resolver urlResolver
}

func NewHandler(workouts workoutGetter, resolver urlResolver) *Handler {
	return &Handler{
		workouts: workouts,
		resolver: resolver,
	}
}

// HandleURLs resolves the stored screenshot refs of a workout into links the
// browser can load.
func (handler *Handler) HandleURLs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.screenshots.urls")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, workout id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.workouts.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %s for screenshots: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	urls := make([]string, 0, len(workout.SourceScreenshots))
	for _, ref := range workout.SourceScreenshots {
		url, err := handler.resolver.URL(ctx, ref)
		if err != nil {
			// old rows may point at a store that is no longer configured
			log.Warnf("resolve screenshot ref for workout %s: %s", id, err)
			continue
		}
		urls = append(urls, url)
	}

	respJson, err := json.Marshal(URLsResponse{
		WorkoutID: id,
		URLs:      urls,
	})
	if err != nil {
		log.Errorf("marshal screenshot urls error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
