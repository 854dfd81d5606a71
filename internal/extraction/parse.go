package extraction

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/2beens/coachshot/internal/workouts"
)

var (
	ErrParse = errors.New("failed to parse workout data from image")

	// only a fence wrapping the whole answer, never backticks inside values
	codeFenceRegex = regexp.MustCompile("^\\s*```(?:json|JSON)?[ \\t]*\\n?|\\n?[ \\t]*```\\s*$")
)

// Result is the workout as the model described it. Title and date stay nil
// when the model could not read them.
type Result struct {
	Title          *string                  `json:"title"`
	Date           *string                  `json:"date"`
	ExerciseGroups []workouts.ExerciseGroup `json:"exercise_groups"`
}

// StripCodeFence removes markdown code fences the model sometimes wraps its JSON in.
func StripCodeFence(text string) string {
	return strings.TrimSpace(codeFenceRegex.ReplaceAllString(text, ""))
}

// ParseWorkout decodes the model answer into a Result. The answer must be a
// single JSON object carrying an exercise_groups array.
func ParseWorkout(text string) (*Result, error) {
	cleaned := StripCodeFence(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrParse)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	groups, ok := raw["exercise_groups"]
	if !ok {
		return nil, fmt.Errorf("%w: exercise_groups missing", ErrParse)
	}
	if trimmed := bytes.TrimSpace(groups); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: exercise_groups is not an array", ErrParse)
	}

	var ans answer
	if err := json.Unmarshal([]byte(cleaned), &ans); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	result := &Result{
		Title:          ans.Title,
		Date:           ans.Date,
		ExerciseGroups: make([]workouts.ExerciseGroup, 0, len(ans.ExerciseGroups)),
	}
	if result.Title != nil && strings.TrimSpace(*result.Title) == "" {
		result.Title = nil
	}
	if result.Date != nil && strings.TrimSpace(*result.Date) == "" {
		result.Date = nil
	}
	for _, g := range ans.ExerciseGroups {
		group := workouts.ExerciseGroup{
			GroupID:   g.GroupID,
			Exercises: make([]workouts.Exercise, 0, len(g.Exercises)),
		}
		for _, e := range g.Exercises {
			group.Exercises = append(group.Exercises, workouts.Exercise{
				ExerciseNumber: e.ExerciseNumber,
				Name:           e.Name,
				Tempo:          e.Tempo,
				RepRange:       e.RepRange,
				Sets:           e.Sets.value,
				RestSeconds:    e.RestSeconds.value,
				Notes:          e.Notes,
			})
		}
		result.ExerciseGroups = append(result.ExerciseGroups, group)
	}

	return result, nil
}

type answer struct {
	Title          *string       `json:"title"`
	Date           *string       `json:"date"`
	ExerciseGroups []answerGroup `json:"exercise_groups"`
}

type answerGroup struct {
	GroupID   string           `json:"group_id"`
	Exercises []answerExercise `json:"exercises"`
}

type answerExercise struct {
	ExerciseNumber string     `json:"exercise_number"`
	Name           string     `json:"name"`
	Tempo          *string    `json:"tempo"`
	RepRange       *string    `json:"rep_range"`
	Sets           lenientInt `json:"sets"`
	RestSeconds    lenientInt `json:"rest_seconds"`
	Notes          *string    `json:"notes"`
}

// lenientInt reads counts the model sometimes writes as 60.0 or "3".
// Anything that is not a whole number ends up nil.
type lenientInt struct {
	value *int
}

func (li *lenientInt) UnmarshalJSON(data []byte) error {
	li.value = nil

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	n := int(f)
	li.value = &n
	return nil
}
