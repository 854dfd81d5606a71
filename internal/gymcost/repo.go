package gymcost

import (
	"context"
	"errors"

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

func (r *Repo) Get(ctx context.Context, userID string) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymcost.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s := Settings{UserID: userID}
	err = r.db.QueryRow(
		ctx,
		`SELECT gym_cost::float8, billing_day, weekly_goal, updated_at FROM user_settings WHERE user_id = $1;`,
		userID,
	).Scan(&s.GymCost, &s.BillingDay, &s.WeeklyGoal, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *Repo) Upsert(ctx context.Context, s *Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymcost.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_settings (user_id, gym_cost, billing_day, weekly_goal, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id) DO UPDATE
			SET gym_cost = EXCLUDED.gym_cost,
				billing_day = EXCLUDED.billing_day,
				weekly_goal = EXCLUDED.weekly_goal,
				updated_at = EXCLUDED.updated_at;`,
		s.UserID, s.GymCost, s.BillingDay, s.WeeklyGoal, s.UpdatedAt,
	)
	return err
}
