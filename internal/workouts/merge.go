package workouts

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type exerciseKey struct {
	number string
	name   string
}

// Merge folds per-screenshot results into one workout. The first result is the
// base (id, title, date, metadata); groups are matched by group id, exercises
// deduplicated by (number, name) with the first occurrence winning, and the
// screenshots of all results concatenated. Inputs are never mutated.
func Merge(results []Workout) *Workout {
	if len(results) == 0 {
		return nil
	}

	merged := results[0]
	merged.ExerciseGroups = nil
	merged.SourceScreenshots = nil
	if results[0].Metadata != nil {
		md := *results[0].Metadata
		merged.Metadata = &md
	}

	var groups []*ExerciseGroup
	seen := map[string]map[exerciseKey]bool{}

	for _, w := range results {
		merged.SourceScreenshots = append(merged.SourceScreenshots, w.SourceScreenshots...)

		for _, group := range w.ExerciseGroups {
			existing := findGroup(groups, group.GroupID)
			if existing == nil {
				c := group.clone()
				groups = append(groups, &c)
				keys := map[exerciseKey]bool{}
				for _, e := range c.Exercises {
					keys[exerciseKey{e.ExerciseNumber, e.Name}] = true
				}
				seen[group.GroupID] = keys
				continue
			}

			keys := seen[group.GroupID]
			for _, e := range group.Exercises {
				k := exerciseKey{e.ExerciseNumber, e.Name}
				if keys[k] {
					continue
				}
				keys[k] = true
				existing.Exercises = append(existing.Exercises, e.clone())
			}
		}
	}

	merged.ExerciseGroups = make([]ExerciseGroup, 0, len(groups))
	for _, g := range groups {
		merged.ExerciseGroups = append(merged.ExerciseGroups, *g)
	}
	SortGroups(merged.ExerciseGroups)

	return &merged
}

func findGroup(groups []*ExerciseGroup, id string) *ExerciseGroup {
	for _, g := range groups {
		if g.GroupID == id {
			return g
		}
	}
	return nil
}

// SortGroups orders groups by group id using locale-aware string comparison.
func SortGroups(groups []ExerciseGroup) {
	c := collate.New(language.Und)
	sort.SliceStable(groups, func(i, j int) bool {
		return c.CompareString(groups[i].GroupID, groups[j].GroupID) < 0
	})
}

// DedupeGroups drops repeated (number, name) exercises inside each group of w
// and returns how many were removed.
func DedupeGroups(w *Workout) int {
	removed := 0
	for gi := range w.ExerciseGroups {
		group := &w.ExerciseGroups[gi]
		keys := map[exerciseKey]bool{}
		unique := group.Exercises[:0]
		for _, e := range group.Exercises {
			k := exerciseKey{e.ExerciseNumber, e.Name}
			if keys[k] {
				removed++
				continue
			}
			keys[k] = true
			unique = append(unique, e)
		}
		group.Exercises = unique
	}
	return removed
}
