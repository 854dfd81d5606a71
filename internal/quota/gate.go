package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/coachshot/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const DefaultDailyLimit = 20

var ErrQuotaExceeded = errors.New("daily extraction quota exceeded")

//go:generate mockgen -source=$GOFILE -destination=quota_mocks_test.go -package=quota_test

type usageRepo interface {
	Count(ctx context.Context, userID string, day time.Time) (int, error)
	Increment(ctx context.Context, userID string, day time.Time) (int, error)
}

// Gate enforces the per-user daily extraction limit. Check and Record are two
// separate statements, so concurrent uploads of one user may overshoot the
// limit by a few calls.
type Gate struct {
	repo    usageRepo
	limit   int
	metrics *metrics.Manager
	now     func() time.Time
}

func NewGate(repo usageRepo, limit int, metricsManager *metrics.Manager) *Gate {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &Gate{
		repo:    repo,
		limit:   limit,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (g *Gate) Limit() int {
	return g.limit
}

// Check fails with ErrQuotaExceeded once the user reached the daily limit.
func (g *Gate) Check(ctx context.Context, userID string) error {
	count, err := g.repo.Count(ctx, userID, g.now())
	if err != nil {
		return fmt.Errorf("check quota: %w", err)
	}
	if count >= g.limit {
		log.Debugf("quota: user [%s] reached daily limit [%d/%d]", userID, count, g.limit)
		if g.metrics != nil {
			g.metrics.CounterQuotaRejections.Inc()
		}
		return ErrQuotaExceeded
	}
	return nil
}

// Record counts one successful extraction for the user.
func (g *Gate) Record(ctx context.Context, userID string) error {
	count, err := g.repo.Increment(ctx, userID, g.now())
	if err != nil {
		return fmt.Errorf("record quota usage: %w", err)
	}
	log.Tracef("quota: user [%s] usage today: %d/%d", userID, count, g.limit)
	return nil
}

func (g *Gate) Remaining(ctx context.Context, userID string) (int, error) {
	count, err := g.repo.Count(ctx, userID, g.now())
	if err != nil {
		return 0, fmt.Errorf("get quota usage: %w", err)
	}
	return max(g.limit-count, 0), nil
}
