package uploads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/coachshot/internal/extraction"
	"github.com/2beens/coachshot/internal/imaging"
	"github.com/2beens/coachshot/internal/quota"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/internal/workouts"
	"github.com/2beens/coachshot/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

const DefaultInterFileDelay = 2 * time.Second

var (
	ErrNoFiles     = errors.New("no files uploaded")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

//go:generate mockgen -source=$GOFILE -destination=uploads_mocks_test.go -package=uploads_test

type workoutExtractor interface {
	Extract(ctx context.Context, userID string, img *imaging.Image) (*extraction.Result, error)
	ModelName() string
}

type screenshotStore interface {
	Put(ctx context.Context, userID string, img *imaging.Image) (string, error)
	Delete(ctx context.Context, ref string) error
}

type quotaReporter interface {
	Remaining(ctx context.Context, userID string) (int, error)
	Limit() int
}

type workoutsStore interface {
	Add(ctx context.Context, w workouts.Workout) (*workouts.Workout, error)
	AddMany(ctx context.Context, workouts []workouts.Workout) error
}

type File struct {
	Name string
	Data []byte
}

type Request struct {
	Files []File
	// Date overrides whatever date the model reads from the screenshot.
	Date  string
	Merge bool
}

type FileFailure struct {
	File    string `json:"file"`
	Message string `json:"error"`
	err     error
}

func (f FileFailure) Err() error {
	return f.err
}

// QuotaStatus is the user's daily extraction allowance after the batch.
type QuotaStatus struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

type Result struct {
	Workouts []workouts.Workout `json:"workouts"`
	Failures []FileFailure      `json:"failures"`
	Quota    *QuotaStatus       `json:"quota,omitempty"`
}

// Err combines all per-file failures, nil when every file went through.
func (r *Result) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, fmt.Errorf("%s: %w", f.File, f.err))
	}
	return err
}

type NewServiceParams struct {
	Extractor      workoutExtractor
	Screenshots    screenshotStore
	Workouts       workoutsStore
	// Quota is optional, without it results carry no quota status.
	Quota          quotaReporter
	InterFileDelay time.Duration
}

// Service runs a batch of uploaded screenshots through the extraction pipeline
// and stores the resulting workouts.
type Service struct {
	extractor      workoutExtractor
	screenshots    screenshotStore
	workouts       workoutsStore
	quota          quotaReporter
	interFileDelay time.Duration
	sleep          func(ctx context.Context, d time.Duration) error
	now            func() time.Time
	newID          func() string
}

func NewService(params NewServiceParams) *Service {
	s := &Service{
		extractor:      params.Extractor,
		screenshots:    params.Screenshots,
		workouts:       params.Workouts,
		quota:          params.Quota,
		interFileDelay: params.InterFileDelay,
		sleep:          pkg.SleepContext,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	if s.interFileDelay <= 0 {
		s.interFileDelay = DefaultInterFileDelay
	}
	return s
}

// WithTestHooks swaps the clock, the sleeper and the id source.
func (s *Service) WithTestHooks(sleep func(ctx context.Context, d time.Duration) error, now func() time.Time, newID func() string) *Service {
	s.sleep = sleep
	s.now = now
	s.newID = newID
	return s
}

// Upload processes the files one at a time, waiting between them to stay under
// the provider rate limit. Failed files are reported in the result and do not
// stop the batch, except for the daily quota, after which no further model
// calls are made. A canceled ctx stops the batch and saves what is done.
func (s *Service) Upload(ctx context.Context, userID string, req Request) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.uploads.upload")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("files", len(req.Files)))
	span.SetAttributes(attribute.Bool("merge", req.Merge))

	if len(req.Files) == 0 {
		return nil, ErrNoFiles
	}
	if req.Date != "" {
		if _, err := time.Parse(workouts.DateLayout, req.Date); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDate, req.Date)
		}
	}

	batchStart := s.now()
	result := &Result{
		Workouts: []workouts.Workout{},
		Failures: []FileFailure{},
	}

	var built []workouts.Workout
	quotaExhausted := false
	canceled := false
	for i, file := range req.Files {
		if i > 0 && !quotaExhausted {
			if err := s.sleep(ctx, s.interFileDelay); err != nil {
				log.Warnf("upload batch for user [%s] canceled after %d files: %s", userID, i, err)
				canceled = true
			}
		}
		if canceled {
			result.Failures = append(result.Failures, NewFileFailure(file.Name, ctx.Err()))
			continue
		}
		if quotaExhausted {
			result.Failures = append(result.Failures, NewFileFailure(file.Name, quota.ErrQuotaExceeded))
			continue
		}

		w, err := s.processFile(ctx, userID, file, req.Date)
		if err != nil {
			log.Errorf("upload: file [%s] of user [%s] failed: %s", file.Name, userID, err)
			result.Failures = append(result.Failures, NewFileFailure(file.Name, err))
			if errors.Is(err, quota.ErrQuotaExceeded) {
				quotaExhausted = true
			}
			continue
		}
		built = append(built, *w)
	}

	// store even if the caller went away in the meantime
	storeCtx := context.WithoutCancel(ctx)
	if len(built) == 0 {
		s.attachQuota(storeCtx, userID, result)
		return result, nil
	}

	if req.Merge {
		merged := workouts.Merge(built)
		merged.Metadata.ProcessingTimeMs = s.now().Sub(batchStart).Milliseconds()
		saved, err := s.workouts.Add(storeCtx, *merged)
		if err != nil {
			return nil, fmt.Errorf("save merged workout: %w", err)
		}
		result.Workouts = append(result.Workouts, *saved)
	} else {
		if err := s.workouts.AddMany(storeCtx, built); err != nil {
			return nil, fmt.Errorf("save workouts: %w", err)
		}
		result.Workouts = append(result.Workouts, built...)
	}

	log.Debugf("upload: user [%s] saved %d workouts from %d files, %d failed",
		userID, len(result.Workouts), len(req.Files), len(result.Failures))

	s.attachQuota(storeCtx, userID, result)
	return result, nil
}

func (s *Service) attachQuota(ctx context.Context, userID string, result *Result) {
	if s.quota == nil || userID == "" {
		return
	}
	remaining, err := s.quota.Remaining(ctx, userID)
	if err != nil {
		log.Warnf("upload: get remaining quota of user [%s]: %s", userID, err)
		return
	}
	result.Quota = &QuotaStatus{
		Limit:     s.quota.Limit(),
		Remaining: remaining,
	}
}

func (s *Service) processFile(ctx context.Context, userID string, file File, chosenDate string) (*workouts.Workout, error) {
	start := s.now()

	img, err := imaging.Downscale(file.Data)
	if err != nil {
		return nil, err
	}

	ref, err := s.screenshots.Put(ctx, userID, img)
	if err != nil {
		return nil, fmt.Errorf("store screenshot: %w", err)
	}

	extracted, err := s.extractor.Extract(ctx, userID, img)
	if err != nil {
		if delErr := s.screenshots.Delete(context.WithoutCancel(ctx), ref); delErr != nil {
			log.Warnf("upload: failed to remove screenshot of failed file [%s]: %s", file.Name, delErr)
		}
		return nil, err
	}

	now := s.now()
	w := &workouts.Workout{
		ID:                s.newID(),
		UserID:            userID,
		Title:             workouts.DefaultTitle,
		Date:              s.resolveDate(chosenDate, extracted.Date, now),
		ExerciseGroups:    extracted.ExerciseGroups,
		SourceScreenshots: []string{ref},
		Metadata: &workouts.Metadata{
			ProcessingTimeMs: now.Sub(start).Milliseconds(),
			ModelVersion:     s.extractor.ModelName(),
			UserEdited:       false,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if extracted.Title != nil && *extracted.Title != "" {
		w.Title = *extracted.Title
	}
	if w.ExerciseGroups == nil {
		w.ExerciseGroups = []workouts.ExerciseGroup{}
	}

	if issues := w.InvariantViolations(); len(issues) > 0 {
		log.Warnf("upload: file [%s] extracted with odd identifiers: %v", file.Name, issues)
	}

	return w, nil
}

func (s *Service) resolveDate(chosen string, extracted *string, now time.Time) string {
	if chosen != "" {
		return chosen
	}
	if extracted != nil {
		if _, err := time.Parse(workouts.DateLayout, *extracted); err == nil {
			return *extracted
		}
		log.Debugf("upload: ignoring unparsable extracted date [%s]", *extracted)
	}
	return now.Format(workouts.DateLayout)
}

// NewFileFailure pairs a file with its error and the message shown for it.
func NewFileFailure(file string, err error) FileFailure {
	msg := extraction.UserMessage(err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		msg = "Upload canceled."
	}
	return FileFailure{
		File:    file,
		Message: msg,
		err:     err,
	}
}
