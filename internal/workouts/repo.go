package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/coachshot/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const selectWorkoutColumns = `id::text, user_id, title, to_char(date, 'YYYY-MM-DD'), exercise_groups, source_screenshots, metadata, created_at, updated_at`

type ListParams struct {
	Search string
	Page   int
	Size   int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", w.ID))

	args, err := workoutArgs(w)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workouts
				(id, user_id, title, date, exercise_groups, source_screenshots, metadata, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	return &w, nil
}

// AddMany stores all workouts in one transaction.
func (r *Repo) AddMany(ctx context.Context, workouts []Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addMany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))

	batch := &pgx.Batch{}
	for _, w := range workouts {
		args, err := workoutArgs(w)
		if err != nil {
			return err
		}
		batch.Queue(
			`INSERT INTO workouts
				(id, user_id, title, date, exercise_groups, source_screenshots, metadata, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING;`,
			args...,
		)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectWorkoutColumns+` FROM workouts WHERE user_id = $1 AND id = $2;`,
		userID, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrWorkoutNotFound
	}

	return scanWorkout(rows)
}

func (r *Repo) Update(ctx context.Context, w *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", w.ID))

	groupsJson, err := json.Marshal(w.ExerciseGroups)
	if err != nil {
		return fmt.Errorf("marshal exercise groups: %w", err)
	}
	metadataJson, err := json.Marshal(w.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	date, err := w.ParsedDate()
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workouts SET title = $1, date = $2, exercise_groups = $3, metadata = $4, updated_at = $5
			WHERE user_id = $6 AND id = $7;`,
		w.Title, date, groupsJson, metadataJson, w.UpdatedAt, w.UserID, w.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE user_id = $1 AND id = $2;`,
		userID, id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

// List returns a page of the user's workouts, newest first, optionally filtered
// by a title or date substring.
func (r *Repo) List(ctx context.Context, userID string, params ListParams) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Size <= 0 {
		params.Size = 20
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	where := `WHERE user_id = $1 AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR to_char(date, 'YYYY-MM-DD') LIKE '%' || $2 || '%')`

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workouts `+where+`;`,
		userID, params.Search,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count workouts: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectWorkoutColumns+` FROM workouts `+where+`
			ORDER BY date DESC, created_at DESC
			LIMIT $3 OFFSET $4;`,
		userID, params.Search, params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := scanWorkouts(rows)
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *Repo) ListAll(ctx context.Context, userID string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectWorkoutColumns+` FROM workouts WHERE user_id = $1 ORDER BY date DESC, created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

func (r *Repo) ListDates(ctx context.Context, userID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT to_char(date, 'YYYY-MM-DD') FROM workouts WHERE user_id = $1 ORDER BY date DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	dates, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect dates: %w", err)
	}

	return dates, nil
}

// CountBetween counts the user's workouts dated in [from, to).
func (r *Repo) CountBetween(ctx context.Context, userID string, from, to time.Time) (count int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.countBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workouts WHERE user_id = $1 AND date >= $2 AND date < $3;`,
		userID, from, to,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int("count", count))
	return count, nil
}

func workoutArgs(w Workout) ([]any, error) {
	groupsJson, err := json.Marshal(w.ExerciseGroups)
	if err != nil {
		return nil, fmt.Errorf("marshal exercise groups: %w", err)
	}
	screenshots := w.SourceScreenshots
	if screenshots == nil {
		screenshots = []string{}
	}
	screenshotsJson, err := json.Marshal(screenshots)
	if err != nil {
		return nil, fmt.Errorf("marshal screenshots: %w", err)
	}
	metadataJson, err := json.Marshal(w.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	date, err := w.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	return []any{
		w.ID, w.UserID, w.Title, date, groupsJson, screenshotsJson, metadataJson, w.CreatedAt, w.UpdatedAt,
	}, nil
}

func scanWorkouts(rows pgx.Rows) ([]Workout, error) {
	var list []Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func scanWorkout(rows pgx.Rows) (*Workout, error) {
	var w Workout
	var groupsJson, screenshotsJson, metadataJson []byte
	if err := rows.Scan(
		&w.ID, &w.UserID, &w.Title, &w.Date,
		&groupsJson, &screenshotsJson, &metadataJson,
		&w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	if err := json.Unmarshal(groupsJson, &w.ExerciseGroups); err != nil {
		return nil, fmt.Errorf("unmarshal exercise groups: %w", err)
	}
	if err := json.Unmarshal(screenshotsJson, &w.SourceScreenshots); err != nil {
		return nil, fmt.Errorf("unmarshal screenshots: %w", err)
	}
	if len(metadataJson) > 0 && string(metadataJson) != "null" {
		w.Metadata = &Metadata{}
		if err := json.Unmarshal(metadataJson, w.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}

	return &w, nil
}
