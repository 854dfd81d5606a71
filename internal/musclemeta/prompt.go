package musclemeta

import "fmt"

const muscleInfoPromptTemplate = `You are a strength and conditioning coach. Describe the exercise "%s".

Return ONLY a JSON object with this exact structure, no other text:
{
  "description": "one or two sentences on how the exercise is performed",
  "primary_muscles": ["muscles doing most of the work"],
  "secondary_muscles": ["assisting or stabilizing muscles"],
  "exercise_type": "compound" or "isolation" or "cardio" or "mobility",
  "benefits": ["short benefit", "another short benefit"]
}

Rules:
- primary_muscles must always be an array with at least one entry
- use common anatomical names (e.g. "Quadriceps", "Gluteus Maximus", "Latissimus Dorsi")
- keep benefits to at most 4 items
- if the exercise name is ambiguous, describe its most common variation`

func MuscleInfoPrompt(exerciseName string) string {
	return fmt.Sprintf(muscleInfoPromptTemplate, exerciseName)
}
