package musclemeta

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/coachshot/internal/extraction"

	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyName             = errors.New("exercise name empty")
	ErrMissingPrimaryMuscles = errors.New("model answer has no primary_muscles array")
	ErrMetadataNotFound      = errors.New("exercise metadata not found")
	ErrInvalidAnswer         = errors.New("muscle info answer is not a JSON object")
)

type ExerciseMetadata struct {
	ExerciseName     string    `json:"exercise_name"`
	Description      string    `json:"description,omitempty"`
	PrimaryMuscles   []string  `json:"primary_muscles"`
	SecondaryMuscles []string  `json:"secondary_muscles"`
	ExerciseType     string    `json:"exercise_type,omitempty"`
	Benefits         []string  `json:"benefits"`
	CreatedAt        time.Time `json:"created_at"`
}

// NormalizeName is the cache key for an exercise: lowercased and trimmed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseMuscleInfo reads the model answer for an exercise. primary_muscles has
// to be there and be an array, everything else is optional.
func ParseMuscleInfo(text, exerciseName string) (*ExerciseMetadata, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extraction.StripCodeFence(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAnswer, err)
	}

	primary, ok := raw["primary_muscles"]
	if !ok {
		return nil, ErrMissingPrimaryMuscles
	}
	md := &ExerciseMetadata{
		ExerciseName: exerciseName,
	}
	if err := json.Unmarshal(primary, &md.PrimaryMuscles); err != nil || md.PrimaryMuscles == nil {
		return nil, ErrMissingPrimaryMuscles
	}

	// lenient with the rest, a wrong type just leaves the field empty
	optional := map[string]any{
		"description":       &md.Description,
		"secondary_muscles": &md.SecondaryMuscles,
		"exercise_type":     &md.ExerciseType,
		"benefits":          &md.Benefits,
	}
	for key, dst := range optional {
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				log.Debugf("muscle info for [%s]: ignoring field %s: %s", exerciseName, key, err)
			}
		}
	}

	if md.SecondaryMuscles == nil {
		md.SecondaryMuscles = []string{}
	}
	if md.Benefits == nil {
		md.Benefits = []string{}
	}

	return md, nil
}
