package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/coachshot/internal/screenshots"
	"github.com/2beens/coachshot/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

func ptr[T any](v T) *T {
	return &v
}

func testWorkout(date string, exercises ...workouts.Exercise) workouts.Workout {
	return workouts.Workout{
		ID:    uuid.NewString(),
		Title: gofakeit.Sentence(3),
		Date:  date,
		ExerciseGroups: []workouts.ExerciseGroup{
			{GroupID: "A", Exercises: exercises},
		},
		SourceScreenshots: []string{},
	}
}

func (s *IntegrationTestSuite) importWorkouts(ctx context.Context, token string, ws ...workouts.Workout) int {
	body, err := json.Marshal(ws)
	s.Require().NoError(err)

	resp := doRequest(ctx, s.T(), http.MethodPost, s.endpoint+"/workouts/import", token, "application/json", body)
	s.Require().Equal(http.StatusCreated, resp.status, string(resp.body))

	var importResp workouts.ImportResponse
	s.Require().NoError(json.Unmarshal(resp.body, &importResp))
	return importResp.Imported
}

func (s *IntegrationTestSuite) TestWorkouts_ImportListGetUpdateDelete() {
	ctx := context.Background()
	token := newToken(s.T(), "user-crud", "")

	squat := testWorkout("2026-01-05", workouts.Exercise{ExerciseNumber: "A1", Name: "Back Squat", Sets: ptr(4), Notes: ptr("100kg")})
	squat.Title = "Leg Day"
	bench := testWorkout("2026-01-07", workouts.Exercise{ExerciseNumber: "A1", Name: "Bench Press", Sets: ptr(3)})
	bench.Title = "Push Day"
	s.Equal(2, s.importWorkouts(ctx, token, squat, bench))

	// list, newest first
	resp := doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts", token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status)
	var list workouts.ListResponse
	s.Require().NoError(json.Unmarshal(resp.body, &list))
	s.Equal(2, list.Total)
	s.Require().Len(list.Workouts, 2)
	s.Equal(bench.ID, list.Workouts[0].ID)

	// search matches title
	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts?search=leg", token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status)
	s.Require().NoError(json.Unmarshal(resp.body, &list))
	s.Equal(1, list.Total)

	// get
	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts/"+squat.ID, token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status)
	var got workouts.Workout
	s.Require().NoError(json.Unmarshal(resp.body, &got))
	s.Equal("Leg Day", got.Title)
	s.Equal("2026-01-05", got.Date)

	// update
	got.Title = "Heavy Leg Day"
	updateBody, err := json.Marshal(got)
	s.Require().NoError(err)
	resp = doRequest(ctx, s.T(), http.MethodPut, s.endpoint+"/workouts/"+squat.ID, token, "application/json", updateBody)
	s.Require().Equal(http.StatusOK, resp.status, string(resp.body))
	var updated workouts.Workout
	s.Require().NoError(json.Unmarshal(resp.body, &updated))
	s.Equal("Heavy Leg Day", updated.Title)
	s.Require().NotNil(updated.Metadata)
	s.True(updated.Metadata.UserEdited)

	// invalid manual edit is rejected
	got.Date = "05/01/2026"
	badBody, err := json.Marshal(got)
	s.Require().NoError(err)
	resp = doRequest(ctx, s.T(), http.MethodPut, s.endpoint+"/workouts/"+squat.ID, token, "application/json", badBody)
	s.Equal(http.StatusBadRequest, resp.status)

	// screenshots of an imported workout: nothing to resolve
	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts/"+squat.ID+"/screenshots", token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status)
	var urls screenshots.URLsResponse
	s.Require().NoError(json.Unmarshal(resp.body, &urls))
	s.Equal(squat.ID, urls.WorkoutID)
	s.Empty(urls.URLs)

	// delete
	resp = doRequest(ctx, s.T(), http.MethodDelete, s.endpoint+"/workouts/"+squat.ID, token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status)
	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts/"+squat.ID, token, "", nil)
	s.Equal(http.StatusNotFound, resp.status)
}

func (s *IntegrationTestSuite) TestWorkouts_UsersAreIsolated() {
	ctx := context.Background()
	owner := newToken(s.T(), "user-owner", "")
	other := newToken(s.T(), "user-other", "")

	w := testWorkout("2026-02-01", workouts.Exercise{ExerciseNumber: "A1", Name: "Deadlift"})
	s.Equal(1, s.importWorkouts(ctx, owner, w))

	resp := doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts/"+w.ID, other, "", nil)
	s.Equal(http.StatusNotFound, resp.status)

	resp = doRequest(ctx, s.T(), http.MethodDelete, s.endpoint+"/workouts/"+w.ID, other, "", nil)
	s.Equal(http.StatusNotFound, resp.status)

	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts", other, "", nil)
	s.Require().Equal(http.StatusOK, resp.status)
	var list workouts.ListResponse
	s.Require().NoError(json.Unmarshal(resp.body, &list))
	s.Equal(0, list.Total)
}

func (s *IntegrationTestSuite) TestWorkouts_ExportImportRoundTrip() {
	ctx := context.Background()
	token := newToken(s.T(), "user-export", "")

	var ws []workouts.Workout
	for i := 1; i <= 3; i++ {
		ws = append(ws, testWorkout(fmt.Sprintf("2026-03-0%d", i), workouts.Exercise{ExerciseNumber: "A1", Name: "Row"}))
	}
	s.Equal(3, s.importWorkouts(ctx, token, ws...))

	resp := doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts/export", token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status)
	s.Contains(resp.header.Get("Content-Disposition"), "attachment")
	var exported []workouts.Workout
	s.Require().NoError(json.Unmarshal(resp.body, &exported))
	s.Len(exported, 3)

	// same ids again, nothing new is stored
	s.importWorkouts(ctx, token, exported...)
	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts", token, "", nil)
	var list workouts.ListResponse
	s.Require().NoError(json.Unmarshal(resp.body, &list))
	s.Equal(3, list.Total)

	resp = doRequest(ctx, s.T(), http.MethodPost, s.endpoint+"/workouts/import", token, "application/json", []byte(`{"not":"an array"}`))
	s.Equal(http.StatusBadRequest, resp.status)
}

func (s *IntegrationTestSuite) TestStats_OverviewAndExerciseHistory() {
	ctx := context.Background()
	token := newToken(s.T(), "user-stats", "")

	today := time.Now().Format(workouts.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(workouts.DateLayout)
	s.importWorkouts(ctx, token,
		testWorkout(yesterday, workouts.Exercise{ExerciseNumber: "A1", Name: "Back Squat", Notes: ptr("100kg")}),
		testWorkout(today, workouts.Exercise{ExerciseNumber: "A1", Name: "back squat", Notes: ptr("Work up to 110 kg")}),
	)

	resp := doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/stats/overview", token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status, string(resp.body))
	var overview workouts.Overview
	s.Require().NoError(json.Unmarshal(resp.body, &overview))
	s.Equal(2, overview.TotalWorkouts)
	s.Equal(2, overview.Streak)
	s.Equal(workouts.DefaultWeeklyGoal, overview.WeeklyGoal)
	s.Equal(today, overview.LastWorkoutDate)

	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/exercises/Back%20Squat/history", token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status, string(resp.body))
	var history workouts.ExerciseHistory
	s.Require().NoError(json.Unmarshal(resp.body, &history))
	s.Require().Len(history.Entries, 2)
	s.Equal(today, history.Entries[0].Date)
	s.Require().NotNil(history.PersonalRecord)
	s.Equal(110.0, *history.PersonalRecord)
}
