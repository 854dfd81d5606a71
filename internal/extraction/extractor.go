package extraction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/coachshot/internal/imaging"
	"github.com/2beens/coachshot/internal/quota"
	"github.com/2beens/coachshot/internal/telemetry/metrics"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/internal/vision"
	"github.com/2beens/coachshot/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultRetryAttempts  = 5
	DefaultRetryBaseDelay = 2500 * time.Millisecond
)

var (
	ErrNotConfigured   = vision.ErrNotConfigured
	ErrRateLimited     = vision.ErrRateLimited
	ErrUnauthenticated = errors.New("authentication required")
)

//go:generate mockgen -source=$GOFILE -destination=extraction_mocks_test.go -package=extraction_test

type modelClient interface {
	Configured() bool
	Model() string
	Generate(ctx context.Context, prompt string, img *imaging.Image) (string, error)
}

type quotaGate interface {
	Check(ctx context.Context, userID string) error
	Record(ctx context.Context, userID string) error
}

type NewExtractorParams struct {
	Model modelClient
	// Quota may be nil, which disables the daily limit (offline CLI usage).
	Quota          quotaGate
	Metrics        *metrics.Manager
	RetryAttempts  int
	RetryBaseDelay time.Duration
}

// Extractor turns a screenshot into a structured workout through the model.
type Extractor struct {
	model          modelClient
	quota          quotaGate
	metrics        *metrics.Manager
	retryAttempts  int
	retryBaseDelay time.Duration
	sleep          func(ctx context.Context, d time.Duration) error
}

func NewExtractor(params NewExtractorParams) *Extractor {
	e := &Extractor{
		model:          params.Model,
		quota:          params.Quota,
		metrics:        params.Metrics,
		retryAttempts:  params.RetryAttempts,
		retryBaseDelay: params.RetryBaseDelay,
		sleep:          pkg.SleepContext,
	}
	if e.retryAttempts <= 0 {
		e.retryAttempts = DefaultRetryAttempts
	}
	if e.retryBaseDelay <= 0 {
		e.retryBaseDelay = DefaultRetryBaseDelay
	}
	return e
}

// WithSleeper replaces the wait used between rate-limited attempts.
func (e *Extractor) WithSleeper(sleep func(ctx context.Context, d time.Duration) error) *Extractor {
	e.sleep = sleep
	return e
}

func (e *Extractor) ModelName() string {
	return e.model.Model()
}

// RetryDelay is the wait before retry number n (1-based): base * 2^n.
func (e *Extractor) RetryDelay(n int) time.Duration {
	return time.Duration(float64(e.retryBaseDelay) * math.Pow(2, float64(n)))
}

// Extract runs one screenshot through the model. The quota is checked before
// the call and counted only after a successful parse.
func (e *Extractor) Extract(ctx context.Context, userID string, img *imaging.Image) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "extraction.extract")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		e.countOutcome(err)
	}()

	if userID == "" && e.quota != nil {
		return nil, ErrUnauthenticated
	}
	if !e.model.Configured() {
		return nil, ErrNotConfigured
	}

	if e.quota != nil {
		if err := e.quota.Check(ctx, userID); err != nil {
			return nil, err
		}
	}

	text, err := e.generateWithRetry(ctx, img)
	if err != nil {
		return nil, err
	}

	result, err := ParseWorkout(text)
	if err != nil {
		log.Debugf("extraction: unparsable model answer for user [%s]: %q", userID, text)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.groups", len(result.ExerciseGroups)))

	if e.quota != nil {
		if err := e.quota.Record(ctx, userID); err != nil {
			log.Errorf("extraction: failed to record quota usage for user [%s]: %s", userID, err)
		}
	}

	return result, nil
}

func (e *Extractor) generateWithRetry(ctx context.Context, img *imaging.Image) (string, error) {
	retries := 0
	for {
		text, err := e.model.Generate(ctx, WorkoutExtractionPrompt, img)
		if err == nil {
			return text, nil
		}
		if !vision.IsRateLimited(err) || retries >= e.retryAttempts {
			return "", err
		}

		retries++
		delay := e.RetryDelay(retries)
		log.Warnf("extraction: rate limited, retrying in %s (attempt %d/%d)", delay, retries, e.retryAttempts)
		if e.metrics != nil {
			e.metrics.CounterModelRetries.Inc()
		}
		if err := e.sleep(ctx, delay); err != nil {
			return "", fmt.Errorf("wait for retry: %w", err)
		}
	}
}

func (e *Extractor) countOutcome(err error) {
	if e.metrics == nil {
		return
	}
	e.metrics.CounterExtractions.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, quota.ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrParse):
		return "parse_error"
	default:
		return "error"
	}
}
