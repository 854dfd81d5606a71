package workouts

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	DateLayout   = "2006-01-02"
	DefaultTitle = "Untitled Workout"
)

var (
	exerciseNumberRegex = regexp.MustCompile(`^[A-D][1-9]$`)
	groupIDRegex        = regexp.MustCompile(`^[A-Za-z]$`)

	ErrWorkoutNotFound = errors.New("workout not found")
	ErrInvalidWorkout  = errors.New("invalid workout")
)

type Exercise struct {
	ExerciseNumber string            `json:"exercise_number"`
	Name           string            `json:"name"`
	Tempo          *string           `json:"tempo"`
	RepRange       *string           `json:"rep_range"`
	Sets           *int              `json:"sets"`
	RestSeconds    *int              `json:"rest_seconds"`
	Notes          *string           `json:"notes"`
	Progress       *ExerciseProgress `json:"metadata,omitempty"`
}

// ExerciseProgress is user-maintained progression info, never filled by extraction.
type ExerciseProgress struct {
	PreviousWeight string `json:"previousWeight,omitempty"`
	TargetWeight   string `json:"targetWeight,omitempty"`
	Difficulty     string `json:"difficulty,omitempty"` // easy | medium | hard
}

type ExerciseGroup struct {
	GroupID   string     `json:"group_id"`
	Exercises []Exercise `json:"exercises"`
}

type Metadata struct {
	ExtractionAccuracy *float64 `json:"extractionAccuracy,omitempty"`
	ProcessingTimeMs   int64    `json:"processingTimeMs"`
	ModelVersion       string   `json:"geminiModelVersion,omitempty"`
	UserEdited         bool     `json:"userEdited"`
}

type Workout struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId,omitempty"`
	Title             string          `json:"title"`
	Date              string          `json:"date"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	ExerciseGroups    []ExerciseGroup `json:"exercise_groups"`
	SourceScreenshots []string        `json:"sourceScreenshots"`
	Metadata          *Metadata       `json:"metadata,omitempty"`
}

func ValidExerciseNumber(n string) bool {
	return exerciseNumberRegex.MatchString(n)
}

func ValidGroupID(id string) bool {
	return groupIDRegex.MatchString(id)
}

// Validate checks the record invariants. Used on manual edits; extracted
// records are stored as the model emitted them.
func (w *Workout) Validate() error {
	if w.Title == "" {
		return fmt.Errorf("%w: title empty", ErrInvalidWorkout)
	}
	if _, err := time.Parse(DateLayout, w.Date); err != nil {
		return fmt.Errorf("%w: date [%s] not in YYYY-MM-DD format", ErrInvalidWorkout, w.Date)
	}
	for _, g := range w.ExerciseGroups {
		if !ValidGroupID(g.GroupID) {
			return fmt.Errorf("%w: group id [%s] must be a single letter", ErrInvalidWorkout, g.GroupID)
		}
		for _, e := range g.Exercises {
			if !ValidExerciseNumber(e.ExerciseNumber) {
				return fmt.Errorf("%w: exercise number [%s] must match [A-D][1-9]", ErrInvalidWorkout, e.ExerciseNumber)
			}
			if e.Name == "" {
				return fmt.Errorf("%w: exercise [%s] has no name", ErrInvalidWorkout, e.ExerciseNumber)
			}
		}
	}
	return nil
}

// InvariantViolations lists exercise numbers and group ids that break the
// naming rules, without failing.
func (w *Workout) InvariantViolations() []string {
	var issues []string
	for _, g := range w.ExerciseGroups {
		if !ValidGroupID(g.GroupID) {
			issues = append(issues, "group:"+g.GroupID)
		}
		for _, e := range g.Exercises {
			if !ValidExerciseNumber(e.ExerciseNumber) {
				issues = append(issues, "exercise:"+e.ExerciseNumber)
			}
		}
	}
	return issues
}

func (w *Workout) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, w.Date)
}

func (e Exercise) clone() Exercise {
	c := e
	c.Tempo = clonePtr(e.Tempo)
	c.RepRange = clonePtr(e.RepRange)
	c.Sets = clonePtr(e.Sets)
	c.RestSeconds = clonePtr(e.RestSeconds)
	c.Notes = clonePtr(e.Notes)
	if e.Progress != nil {
		p := *e.Progress
		c.Progress = &p
	}
	return c
}

func (g ExerciseGroup) clone() ExerciseGroup {
	c := ExerciseGroup{
		GroupID:   g.GroupID,
		Exercises: make([]Exercise, 0, len(g.Exercises)),
	}
	for _, e := range g.Exercises {
		c.Exercises = append(c.Exercises, e.clone())
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
