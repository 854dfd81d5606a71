package mcp

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/gymcost"
	"github.com/2beens/coachshot/internal/workouts"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type workoutLister interface {
	List(ctx context.Context, userID string, params workouts.ListParams) ([]workouts.Workout, int, error)
}

type workoutAnalyzer interface {
	ExerciseHistory(ctx context.Context, userID, exerciseName string) (*workouts.ExerciseHistory, error)
	Overview(ctx context.Context, userID string, weeklyGoal int, now time.Time) (*workouts.Overview, error)
}

type costStats interface {
	Stats(ctx context.Context, userID string) (*gymcost.Stats, error)
	WeeklyGoal(ctx context.Context, userID string) (int, error)
}

type Deps struct {
	Workouts workoutLister
	Analyzer workoutAnalyzer
	GymCost  costStats
}

// New creates the MCP server with the read-only workout tools registered.
func New(deps Deps, version string) *server.MCPServer {
	s := server.NewMCPServer("coachshot", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("coachshot workout log. Query the authenticated user's extracted workouts, exercise history, training streak and gym cost stats."),
	)

	h := &handlers{
		workouts: deps.Workouts,
		analyzer: deps.Analyzer,
		gymCost:  deps.GymCost,
		now:      time.Now,
	}

	s.AddTools(
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetExerciseHistory, Handler: h.getExerciseHistory},
		server.ServerTool{Tool: toolGetStreak, Handler: h.getStreak},
		server.ServerTool{Tool: toolGetGymCostStats, Handler: h.getGymCostStats},
	)

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP. It expects the
// auth middleware in front of it, the user id travels in the request context.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s,
		server.WithStateLess(true),
		server.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			if userID, ok := auth.UserIDFromContext(r.Context()); ok {
				return auth.WithUserID(ctx, userID)
			}
			return ctx
		}),
	)
}

type handlers struct {
	workouts workoutLister
	analyzer workoutAnalyzer
	gymCost  costStats
	now      func() time.Time
}

func userFromContext(ctx context.Context) (string, *mcp.CallToolResult) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", mcp.NewToolResultError("authentication required")
	}
	return userID, nil
}
