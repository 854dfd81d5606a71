package main

import (
	"context"
	"fmt"

	"github.com/2beens/coachshot/internal/imaging"
	"github.com/2beens/coachshot/internal/workouts"
)

// localScreenshots keeps nothing; the files stay where they are on disk.
type localScreenshots struct {
	count int
}

func (s *localScreenshots) Put(_ context.Context, _ string, _ *imaging.Image) (string, error) {
	s.count++
	return fmt.Sprintf("local:%d", s.count), nil
}

func (s *localScreenshots) Delete(_ context.Context, _ string) error {
	return nil
}

type memoryWorkouts struct {
	saved []workouts.Workout
}

func (m *memoryWorkouts) Add(_ context.Context, w workouts.Workout) (*workouts.Workout, error) {
	m.saved = append(m.saved, w)
	return &w, nil
}

func (m *memoryWorkouts) AddMany(_ context.Context, ws []workouts.Workout) error {
	m.saved = append(m.saved, ws...)
	return nil
}
