package musclemeta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/coachshot/internal/telemetry/metrics"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/internal/vision"
	"github.com/2beens/coachshot/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oneHour     = 60 * 60
	cacheExpire = oneHour * 24
	megabyte    = 1024 * 1024
)

//go:generate mockgen -source=$GOFILE -destination=musclemeta_mocks_test.go -package=musclemeta_test

type metadataRepo interface {
	Get(ctx context.Context, name string) (*ExerciseMetadata, error)
	Add(ctx context.Context, md *ExerciseMetadata) error
}

type textModel interface {
	Configured() bool
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service looks up muscle info for an exercise: process cache first, then the
// shared table, and only then the model.
type Service struct {
	repo    metadataRepo
	model   textModel
	cache   *freecache.Cache
	metrics *metrics.Manager
	now     func() time.Time
}

func NewService(repo metadataRepo, model textModel, cacheSizeMB int, metricsManager *metrics.Manager) *Service {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 10
	}
	return &Service{
		repo:    repo,
		model:   model,
		cache:   freecache.NewCache(cacheSizeMB * megabyte),
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (s *Service) Get(ctx context.Context, exerciseName string) (_ *ExerciseMetadata, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclemeta.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		if err != nil {
			s.countLookup("error")
		}
	}()

	name := NormalizeName(exerciseName)
	if name == "" {
		return nil, ErrEmptyName
	}
	span.SetAttributes(attribute.String("exercise", name))

	cacheKey := []byte("muscles::" + name)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		md := &ExerciseMetadata{}
		if err := json.Unmarshal(cached, md); err == nil {
			log.Tracef("found muscle info for %s in cache", name)
			s.countLookup("cache")
			return md, nil
		} else {
			log.Errorf("failed to unmarshal muscle info from cache for %s: %s", name, err)
		}
	}

	md, err := s.repo.Get(ctx, name)
	if err == nil {
		s.setCache(cacheKey, md)
		s.countLookup("db")
		return md, nil
	}
	if !errors.Is(err, ErrMetadataNotFound) {
		return nil, fmt.Errorf("get stored muscle info: %w", err)
	}

	if !s.model.Configured() {
		return nil, vision.ErrNotConfigured
	}

	answer, err := s.model.GenerateText(ctx, MuscleInfoPrompt(name))
	if err != nil {
		return nil, err
	}

	md, err = ParseMuscleInfo(answer, name)
	if err != nil {
		log.Debugf("musclemeta: unusable model answer for %s: %q", name, answer)
		return nil, err
	}
	md.CreatedAt = s.now()

	// the fresh answer goes back to the caller even if it could not be stored
	if err := s.repo.Add(context.WithoutCancel(ctx), md); err != nil {
		if pkg.IsUniqueViolationError(err) {
			log.Debugf("musclemeta: %s stored concurrently by another request", name)
		} else {
			log.Errorf("musclemeta: failed to store muscle info for %s: %s", name, err)
		}
	}
	s.setCache(cacheKey, md)
	s.countLookup("model")

	return md, nil
}

func (s *Service) setCache(key []byte, md *ExerciseMetadata) {
	mdBytes, err := json.Marshal(md)
	if err != nil {
		log.Errorf("marshal muscle info for cache: %s", err)
		return
	}
	if err := s.cache.Set(key, mdBytes, cacheExpire); err != nil {
		log.Errorf("failed to write muscle info cache for %s: %s", key, err)
	}
}

func (s *Service) countLookup(source string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterMetadataLookups.WithLabelValues(source).Inc()
}
