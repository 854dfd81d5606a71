package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/coachshot/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidImport = errors.New("import data must be a JSON array of workouts")

// Service holds the workout operations that go beyond a single repo call.
type Service struct {
	repo workoutsRepo
	now  func() time.Time
}

func NewService(repo workoutsRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Update replaces the editable parts of a stored workout (title, date, groups)
// and marks it as user edited.
func (s *Service) Update(ctx context.Context, userID string, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", w.ID))

	existing, err := s.repo.Get(ctx, userID, w.ID)
	if err != nil {
		return nil, err
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = w.Title
	updated.Date = w.Date
	updated.ExerciseGroups = w.ExerciseGroups
	if updated.ExerciseGroups == nil {
		updated.ExerciseGroups = []ExerciseGroup{}
	}
	updated.UpdatedAt = s.now()
	metadata := Metadata{}
	if existing.Metadata != nil {
		metadata = *existing.Metadata
	}
	metadata.UserEdited = true
	updated.Metadata = &metadata

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}

	return &updated, nil
}

// CleanupDuplicates removes repeated exercises from every workout of the user
// and returns the number of removed exercises.
func (s *Service) CleanupDuplicates(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.cleanupDuplicates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list workouts: %w", err)
	}

	total := 0
	for i := range all {
		w := &all[i]
		removed := DedupeGroups(w)
		if removed == 0 {
			continue
		}
		w.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, w); err != nil {
			return total, fmt.Errorf("update workout %s: %w", w.ID, err)
		}
		log.Debugf("cleanup: removed %d duplicate exercises from workout [%s]", removed, w.ID)
		total += removed
	}

	span.SetAttributes(attribute.Int("removed", total))
	return total, nil
}

func (s *Service) Export(ctx context.Context, userID string) ([]Workout, error) {
	all, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if all == nil {
		all = []Workout{}
	}
	return all, nil
}

// Import stores workouts from a previous export. Records keep their ids, so
// importing the same export twice adds nothing new.
func (s *Service) Import(ctx context.Context, userID string, data []byte) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.import")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var incoming []Workout
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidImport, err)
	}

	now := s.now()
	prepared := make([]Workout, 0, len(incoming))
	for i, w := range incoming {
		if _, err := uuid.Parse(w.ID); err != nil {
			w.ID = uuid.NewString()
		}
		w.UserID = userID
		if strings.TrimSpace(w.Title) == "" {
			w.Title = DefaultTitle
		}
		if _, err := w.ParsedDate(); err != nil {
			return 0, fmt.Errorf("%w: workout %d has invalid date [%s]", ErrInvalidWorkout, i, w.Date)
		}
		if w.ExerciseGroups == nil {
			w.ExerciseGroups = []ExerciseGroup{}
		}
		if w.CreatedAt.IsZero() {
			w.CreatedAt = now
		}
		if w.UpdatedAt.IsZero() {
			w.UpdatedAt = w.CreatedAt
		}
		prepared = append(prepared, w)
	}

	if len(prepared) == 0 {
		return 0, nil
	}
	if err := s.repo.AddMany(ctx, prepared); err != nil {
		return 0, fmt.Errorf("add workouts: %w", err)
	}

	span.SetAttributes(attribute.Int("imported", len(prepared)))
	return len(prepared), nil
}
