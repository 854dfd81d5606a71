package musclemeta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/coachshot/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, name string) (_ *ExerciseMetadata, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclemeta.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", name))

	var md ExerciseMetadata
	var description, exerciseType *string
	var primaryJson, secondaryJson, benefitsJson []byte
	err = r.db.QueryRow(
		ctx,
		`SELECT exercise_name, description, primary_muscles, secondary_muscles, exercise_type, benefits, created_at
			FROM exercise_metadata WHERE exercise_name = $1;`,
		name,
	).Scan(
		&md.ExerciseName, &description, &primaryJson, &secondaryJson, &exerciseType, &benefitsJson, &md.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMetadataNotFound
		}
		return nil, err
	}

	if description != nil {
		md.Description = *description
	}
	if exerciseType != nil {
		md.ExerciseType = *exerciseType
	}
	if err := json.Unmarshal(primaryJson, &md.PrimaryMuscles); err != nil {
		return nil, fmt.Errorf("unmarshal primary muscles: %w", err)
	}
	if err := json.Unmarshal(secondaryJson, &md.SecondaryMuscles); err != nil {
		return nil, fmt.Errorf("unmarshal secondary muscles: %w", err)
	}
	if err := json.Unmarshal(benefitsJson, &md.Benefits); err != nil {
		return nil, fmt.Errorf("unmarshal benefits: %w", err)
	}

	return &md, nil
}

// Add stores a freshly generated entry. A concurrent insert of the same name
// surfaces as a unique violation.
func (r *Repo) Add(ctx context.Context, md *ExerciseMetadata) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.musclemeta.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", md.ExerciseName))

	primaryJson, err := json.Marshal(md.PrimaryMuscles)
	if err != nil {
		return fmt.Errorf("marshal primary muscles: %w", err)
	}
	secondaryJson, err := json.Marshal(md.SecondaryMuscles)
	if err != nil {
		return fmt.Errorf("marshal secondary muscles: %w", err)
	}
	benefitsJson, err := json.Marshal(md.Benefits)
	if err != nil {
		return fmt.Errorf("marshal benefits: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise_metadata
			(exercise_name, description, primary_muscles, secondary_muscles, exercise_type, benefits, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		md.ExerciseName, md.Description, primaryJson, secondaryJson, md.ExerciseType, benefitsJson, md.CreatedAt,
	)
	return err
}
