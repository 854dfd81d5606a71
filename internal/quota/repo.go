package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/coachshot/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Count returns the number of extractions the user made on the given day.
func (r *Repo) Count(ctx context.Context, userID string, day time.Time) (count int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.quota.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`SELECT count FROM api_usage WHERE user_id = $1 AND usage_date = $2;`,
		userID, dateOnly(day),
	).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("select api usage: %w", err)
	}

	return count, nil
}

// Increment bumps the user's counter for the day, creating the row if needed.
func (r *Repo) Increment(ctx context.Context, userID string, day time.Time) (count int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.quota.increment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO api_usage (user_id, usage_date, count)
			VALUES ($1, $2, 1)
		ON CONFLICT (user_id, usage_date)
			DO UPDATE SET count = api_usage.count + 1
		RETURNING count;`,
		userID, dateOnly(day),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("upsert api usage: %w", err)
	}

	return count, nil
}

// dateOnly uses the UTC calendar day, so the quota resets at midnight UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
