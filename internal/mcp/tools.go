package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/2beens/coachshot/internal/gymcost"
	"github.com/2beens/coachshot/internal/workouts"

	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"
)

const maxListSize = 50

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List the user's workouts, newest first. Each workout has a title, date and exercise groups (supersets A-D) with sets, reps, tempo, rest and notes."),
	mcp.WithString("search", mcp.Description("Optional filter on title or date (e.g. 'push' or '2025-03')")),
	mcp.WithNumber("page", mcp.Description("Page number, starting at 1. Defaults to 1.")),
	mcp.WithNumber("size", mcp.Description("Page size, at most 50. Defaults to 10.")),
)

var toolGetExerciseHistory = mcp.NewTool("get_exercise_history",
	mcp.WithDescription("Every logged occurrence of an exercise with the weight parsed from its notes, newest first, plus the personal record."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name, matched case-insensitively (e.g. 'back squat')")),
)

var toolGetStreak = mcp.NewTool("get_streak",
	mcp.WithDescription("Current training streak in consecutive days, workouts this week (Monday start), the weekly goal and the total workout count."),
)

var toolGetGymCostStats = mcp.NewTool("get_gym_cost_stats",
	mcp.WithDescription("Cost per workout in the current billing cycle, the drop from one more workout, and whether the user is on track for their weekly goal."),
)

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, errResult := userFromContext(ctx)
	if errResult != nil {
		return errResult, nil
	}

	params := workouts.ListParams{
		Search: strings.TrimSpace(req.GetString("search", "")),
		Page:   req.GetInt("page", 1),
		Size:   req.GetInt("size", 10),
	}
	if params.Page < 1 {
		return mcp.NewToolResultError("page has to be a positive number"), nil
	}
	if params.Size < 1 || params.Size > maxListSize {
		return mcp.NewToolResultError("size has to be between 1 and 50"), nil
	}

	list, total, err := h.workouts.List(ctx, userID, params)
	if err != nil {
		log.Errorf("mcp list_workouts for [%s]: %s", userID, err)
		return mcp.NewToolResultError("query failed"), nil
	}
	if list == nil {
		list = []workouts.Workout{}
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"workouts": list,
		"total":    total,
		"page":     params.Page,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, errResult := userFromContext(ctx)
	if errResult != nil {
		return errResult, nil
	}

	name, err := req.RequireString("name")
	if err != nil || strings.TrimSpace(name) == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	history, err := h.analyzer.ExerciseHistory(ctx, userID, name)
	if err != nil {
		log.Errorf("mcp get_exercise_history for [%s]: %s", userID, err)
		return mcp.NewToolResultError("query failed"), nil
	}

	result, err := mcp.NewToolResultJSON(history)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getStreak(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, errResult := userFromContext(ctx)
	if errResult != nil {
		return errResult, nil
	}

	goal, err := h.gymCost.WeeklyGoal(ctx, userID)
	if err != nil {
		log.Errorf("mcp get_streak weekly goal for [%s]: %s", userID, err)
	}

	overview, err := h.analyzer.Overview(ctx, userID, goal, h.now())
	if err != nil {
		log.Errorf("mcp get_streak for [%s]: %s", userID, err)
		return mcp.NewToolResultError("query failed"), nil
	}

	result, err := mcp.NewToolResultJSON(overview)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getGymCostStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, errResult := userFromContext(ctx)
	if errResult != nil {
		return errResult, nil
	}

	stats, err := h.gymCost.Stats(ctx, userID)
	if err != nil {
		if errors.Is(err, gymcost.ErrSettingsNotFound) {
			return mcp.NewToolResultError("gym cost settings are not set up yet"), nil
		}
		log.Errorf("mcp get_gym_cost_stats for [%s]: %s", userID, err)
		return mcp.NewToolResultError("query failed"), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
