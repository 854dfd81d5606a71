package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/coachshot/internal/workouts"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderWorkout(w workouts.Workout) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("%s (%s)", w.Title, w.Date))
	tw.AppendHeader(table.Row{"Group", "#", "Exercise", "Sets", "Reps", "Tempo", "Rest", "Notes"})

	exercises := 0
	for _, g := range w.ExerciseGroups {
		for _, e := range g.Exercises {
			tw.AppendRow(table.Row{
				g.GroupID,
				e.ExerciseNumber,
				e.Name,
				intOrDash(e.Sets),
				strOrDash(e.RepRange),
				strOrDash(e.Tempo),
				restOrDash(e.RestSeconds),
				strOrDash(e.Notes),
			})
			exercises++
		}
		tw.AppendSeparator()
	}
	tw.AppendFooter(table.Row{"", "", fmt.Sprintf("%d exercises", exercises)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, WidthMax: 40},
	})

	return tw.Render()
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func restOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v) + "s"
}

func strOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}
