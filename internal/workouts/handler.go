package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxImportSize = 20 << 20

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, w Workout) (*Workout, error)
	AddMany(ctx context.Context, workouts []Workout) error
	Get(ctx context.Context, userID, id string) (*Workout, error)
	Update(ctx context.Context, w *Workout) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string, params ListParams) (_ []Workout, total int, err error)
	ListAll(ctx context.Context, userID string) ([]Workout, error)
	ListDates(ctx context.Context, userID string) ([]string, error)
	CountBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
}

type weeklyGoalSource interface {
	WeeklyGoal(ctx context.Context, userID string) (int, error)
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type DeleteWorkoutResponse struct {
	DeletedID string `json:"deletedId"`
}

type CleanupResponse struct {
	Removed int `json:"removed"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

type Handler struct {
	repo     workoutsRepo
	service  *Service
	analyzer *Analyzer
	goals    weeklyGoalSource
	now      func() time.Time
}

func NewHandler(repo workoutsRepo, goals weeklyGoalSource) *Handler {
	return &Handler{
		repo:     repo,
		service:  NewService(repo),
		analyzer: NewAnalyzer(repo),
		goals:    goals,
		now:      time.Now,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	params := ListParams{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Page:   1,
		Size:   20,
	}
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			http.Error(w, "invalid page (has to be a positive number)", http.StatusBadRequest)
			return
		}
		params.Page = page
	}
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > 200 {
			http.Error(w, "invalid size (has to be between 1 and 200)", http.StatusBadRequest)
			return
		}
		params.Size = size
	}

	list, total, err := handler.repo.List(ctx, userID, params)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Workout{}
	}

	respJson, err := json.Marshal(ListResponse{
		Workouts: list,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, userID, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get workout %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}
	if id := mux.Vars(r)["id"]; id != "" {
		workout.ID = id
	}
	if workout.ID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	updated, err := handler.service.Update(ctx, userID, workout)
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrInvalidWorkout):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("failed to update workout [%s]: %s", workout.ID, err)
		http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("failed to marshal updated workout: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout updated: [%s]", updated.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to delete workout %s: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleCleanupDuplicates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.cleanup")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	removed, err := handler.service.CleanupDuplicates(ctx, userID)
	if err != nil {
		log.Errorf("cleanup duplicates for user [%s]: %s", userID, err)
		http.Error(w, "failed to clean up duplicates", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(CleanupResponse{Removed: removed})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.export")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	all, err := handler.service.Export(ctx, userID)
	if err != nil {
		log.Errorf("export workouts for user [%s]: %s", userID, err)
		http.Error(w, "failed to export workouts", http.StatusInternalServerError)
		return
	}

	exportJson, err := json.Marshal(all)
	if err != nil {
		log.Errorf("marshal export: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="workouts-`+handler.now().Format(DateLayout)+`.json"`)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exportJson, http.StatusOK)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.import")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, "failed to read import data", http.StatusBadRequest)
		return
	}

	imported, err := handler.service.Import(ctx, userID, data)
	switch {
	case errors.Is(err, ErrInvalidImport), errors.Is(err, ErrInvalidWorkout):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("import workouts for user [%s]: %s", userID, err)
		http.Error(w, "failed to import workouts", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ImportResponse{Imported: imported})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.overview")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	weeklyGoal := DefaultWeeklyGoal
	if handler.goals != nil {
		goal, err := handler.goals.WeeklyGoal(ctx, userID)
		if err != nil {
			// the overview is still useful with the default goal
			log.Errorf("get weekly goal for user [%s]: %s", userID, err)
		} else {
			weeklyGoal = goal
		}
	}

	overview, err := handler.analyzer.Overview(ctx, userID, weeklyGoal, handler.now())
	if err != nil {
		log.Errorf("overview for user [%s]: %s", userID, err)
		http.Error(w, "failed to get overview", http.StatusInternalServerError)
		return
	}

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, overviewJson, http.StatusOK)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exerciseHistory")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	name := strings.TrimSpace(mux.Vars(r)["name"])
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	history, err := handler.analyzer.ExerciseHistory(ctx, userID, name)
	if err != nil {
		log.Errorf("failed to get exercise history [%s]: %s", name, err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("failed to marshal exercise history: %s", err)
		http.Error(w, "failed to marshal exercise history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}
