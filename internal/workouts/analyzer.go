package workouts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/coachshot/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const DefaultWeeklyGoal = 3

type HistoryEntry struct {
	Date      string   `json:"date"`
	WorkoutID string   `json:"workoutId"`
	Weight    *float64 `json:"weight"`
	Sets      *int     `json:"sets"`
	Reps      *string  `json:"reps"`
	Notes     *string  `json:"notes"`
	Tempo     *string  `json:"tempo"`
	Rest      *int     `json:"rest"`
}

type ExerciseHistory struct {
	ExerciseName   string         `json:"exerciseName"`
	Entries        []HistoryEntry `json:"entries"`
	PersonalRecord *float64       `json:"personalRecord"`
}

type Overview struct {
	TotalWorkouts   int    `json:"totalWorkouts"`
	Streak          int    `json:"streak"`
	WeeklyProgress  int    `json:"weeklyProgress"`
	WeeklyGoal      int    `json:"weeklyGoal"`
	LastWorkoutDate string `json:"lastWorkoutDate,omitempty"`
}

type Analyzer struct {
	repo workoutsRepo
}

func NewAnalyzer(repo workoutsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// NormalizeExerciseName is the matching key for exercise names across workouts.
func NormalizeExerciseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ExerciseHistory collects every logged occurrence of the named exercise for the
// user, newest first.
func (a *Analyzer) ExerciseHistory(ctx context.Context, userID, exerciseName string) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.exerciseHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.name", exerciseName))

	all, err := a.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list all workouts: %w", err)
	}

	searchName := NormalizeExerciseName(exerciseName)
	history := &ExerciseHistory{
		ExerciseName: exerciseName,
		Entries:      []HistoryEntry{},
	}

	for _, w := range all {
		for _, g := range w.ExerciseGroups {
			for _, e := range g.Exercises {
				if NormalizeExerciseName(e.Name) != searchName {
					continue
				}
				entry := HistoryEntry{
					Date:      w.Date,
					WorkoutID: w.ID,
					Weight:    ExtractWeight(e.Notes),
					Sets:      e.Sets,
					Reps:      e.RepRange,
					Notes:     e.Notes,
					Tempo:     e.Tempo,
					Rest:      e.RestSeconds,
				}
				history.Entries = append(history.Entries, entry)

				if entry.Weight != nil && (history.PersonalRecord == nil || *entry.Weight > *history.PersonalRecord) {
					pr := *entry.Weight
					history.PersonalRecord = &pr
				}
			}
		}
	}

	// YYYY-MM-DD sorts lexicographically
	sort.SliceStable(history.Entries, func(i, j int) bool {
		return history.Entries[i].Date > history.Entries[j].Date
	})

	span.SetAttributes(attribute.Int("history.entries", len(history.Entries)))
	return history, nil
}

func (a *Analyzer) Overview(ctx context.Context, userID string, weeklyGoal int, now time.Time) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dates, err := a.repo.ListDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout dates: %w", err)
	}

	if weeklyGoal <= 0 {
		weeklyGoal = DefaultWeeklyGoal
	}

	o := &Overview{
		TotalWorkouts:  len(dates),
		Streak:         Streak(dates, now),
		WeeklyProgress: WeeklyProgress(dates, now),
		WeeklyGoal:     weeklyGoal,
	}
	for _, d := range dates {
		if d > o.LastWorkoutDate {
			o.LastWorkoutDate = d
		}
	}

	return o, nil
}

// Streak counts consecutive workout days ending today, or ending yesterday
// when there is no workout yet today. Same-day entries count once.
func Streak(dates []string, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	days := make(map[string]bool, len(dates))
	for _, d := range dates {
		days[d] = true
	}

	cursor := dateOnly(now)
	if !days[cursor.Format(DateLayout)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !days[cursor.Format(DateLayout)] {
			return 0
		}
	}

	streak := 0
	for days[cursor.Format(DateLayout)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}

// WeeklyProgress counts workouts in the current Monday-based week.
func WeeklyProgress(dates []string, now time.Time) int {
	weekStart, weekEnd := WeekBounds(now)
	count := 0
	for _, d := range dates {
		t, err := time.ParseInLocation(DateLayout, d, now.Location())
		if err != nil {
			continue
		}
		if !t.Before(weekStart) && t.Before(weekEnd) {
			count++
		}
	}
	return count
}

// WeekBounds returns [monday, next monday) around now, at midnight.
func WeekBounds(now time.Time) (time.Time, time.Time) {
	today := dateOnly(now)
	offset := (int(today.Weekday()) + 6) % 7
	start := today.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
