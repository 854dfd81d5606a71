package gymcost

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	DefaultBillingDay = 1
	DefaultWeeklyGoal = 3
	maxWeeklyGoal     = 14
)

var (
	ErrSettingsNotFound = errors.New("gym cost settings not found")
	ErrInvalidSettings  = errors.New("invalid gym cost settings")
)

type Settings struct {
	UserID     string    `json:"user_id"`
	GymCost    float64   `json:"gym_cost"`
	BillingDay int       `json:"billing_day"`
	WeeklyGoal int       `json:"weekly_goal"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s *Settings) Validate() error {
	if s.GymCost < 0 || math.IsNaN(s.GymCost) || math.IsInf(s.GymCost, 0) {
		return fmt.Errorf("%w: gym cost must be a non-negative amount", ErrInvalidSettings)
	}
	if s.BillingDay < 1 || s.BillingDay > 31 {
		return fmt.Errorf("%w: billing day must be between 1 and 31", ErrInvalidSettings)
	}
	if s.WeeklyGoal < 0 || s.WeeklyGoal > maxWeeklyGoal {
		return fmt.Errorf("%w: weekly goal must be between 0 and %d", ErrInvalidSettings, maxWeeklyGoal)
	}
	return nil
}

type Stats struct {
	CostPerWorkout     float64   `json:"costPerWorkout"`
	TotalWorkouts      int       `json:"totalWorkouts"`
	PotentialCostDrop  float64   `json:"potentialCostDrop"`
	BillingCycleStart  time.Time `json:"billingCycleStart"`
	BillingCycleEnd    time.Time `json:"billingCycleEnd"`
	DaysRemaining      int       `json:"daysRemaining"`
	IsOnTrack          bool      `json:"isOnTrack"`
	ProjectedWorkouts  int       `json:"projectedWorkouts"`
	GoalCostPerWorkout float64   `json:"goalCostPerWorkout"`
}

// CurrentCycle returns the billing window [start, end) that contains now.
// The cycle starts on the billing day of this month, or of the previous month
// when that day is still ahead. Billing days past the end of a short month
// fall on its last day.
func CurrentCycle(billingDay int, now time.Time) (start, end time.Time) {
	if billingDay < 1 || billingDay > 31 {
		billingDay = DefaultBillingDay
	}
	start = billingDate(now.Year(), now.Month(), billingDay, now.Location())
	if start.After(now) {
		start = billingDate(now.Year(), now.Month()-1, billingDay, now.Location())
	}
	end = billingDate(start.Year(), start.Month()+1, billingDay, now.Location())
	return start, end
}

// Calculate derives the cost figures for a cycle in which the user logged
// count workouts.
func Calculate(settings Settings, count int, now time.Time) Stats {
	start, end := CurrentCycle(settings.BillingDay, now)
	today := midnight(now)

	costPerWorkout := settings.GymCost
	if count > 0 {
		costPerWorkout = settings.GymCost / float64(count)
	}
	nextCostPerWorkout := settings.GymCost / float64(count+1)

	daysInCycle := calendarDays(start, end)
	projected := int(math.Round(float64(settings.WeeklyGoal) / 7 * float64(daysInCycle)))
	goalCostPerWorkout := settings.GymCost
	if projected > 0 {
		goalCostPerWorkout = settings.GymCost / float64(projected)
	}

	expectedSoFar := float64(settings.WeeklyGoal) / 7 * float64(calendarDays(start, today))

	return Stats{
		CostPerWorkout:     costPerWorkout,
		TotalWorkouts:      count,
		PotentialCostDrop:  costPerWorkout - nextCostPerWorkout,
		BillingCycleStart:  start,
		BillingCycleEnd:    end,
		DaysRemaining:      calendarDays(today, end),
		IsOnTrack:          float64(count) >= expectedSoFar,
		ProjectedWorkouts:  projected,
		GoalCostPerWorkout: goalCostPerWorkout,
	}
}

func billingDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	// normalize month overflow first, e.g. month 0 -> december of the year before
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc)
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDays counts day boundaries between two dates, ignoring DST length changes.
func calendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
