package gymcost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/coachshot/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=gymcost_mocks_test.go -package=gymcost_test

type settingsRepo interface {
	Get(ctx context.Context, userID string) (*Settings, error)
	Upsert(ctx context.Context, s *Settings) error
}

type workoutCounter interface {
	CountBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
}

type Service struct {
	repo    settingsRepo
	counter workoutCounter
	now     func() time.Time
}

func NewService(repo settingsRepo, counter workoutCounter) *Service {
	return &Service{
		repo:    repo,
		counter: counter,
		now:     time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Settings(ctx context.Context, userID string) (*Settings, error) {
	return s.repo.Get(ctx, userID)
}

func (s *Service) UpdateSettings(ctx context.Context, settings Settings) (*Settings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.UpdatedAt = s.now()
	if err := s.repo.Upsert(ctx, &settings); err != nil {
		return nil, fmt.Errorf("save gym cost settings: %w", err)
	}
	return &settings, nil
}

// WeeklyGoal falls back to the default goal for users without settings.
func (s *Service) WeeklyGoal(ctx context.Context, userID string) (int, error) {
	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return DefaultWeeklyGoal, nil
		}
		return DefaultWeeklyGoal, err
	}
	return settings.WeeklyGoal, nil
}

func (s *Service) Stats(ctx context.Context, userID string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymcost.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start, end := CurrentCycle(settings.BillingDay, now)
	// workout dates carry no zone, compare on the calendar day
	count, err := s.counter.CountBetween(ctx, userID, asUTCDate(start), asUTCDate(end))
	if err != nil {
		return nil, fmt.Errorf("count workouts in cycle: %w", err)
	}
	span.SetAttributes(attribute.Int("cycle.workouts", count))

	stats := Calculate(*settings, count, now)
	log.Tracef("gym cost stats for [%s]: %d workouts, %.2f per workout", userID, count, stats.CostPerWorkout)

	return &stats, nil
}

func asUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
