package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/actuallystonmai/program-finder/internal/catalog"
	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/actuallystonmai/program-finder/internal/engine"
	"github.com/actuallystonmai/program-finder/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 8

// CatalogLoader reads the questions and programs from durable storage.
type CatalogLoader interface {
	Load(ctx context.Context) ([]domain.Question, []domain.Program, error)
}

// ResultCache stores ranked recommendations per catalog version and answer set.
type ResultCache interface {
	Get(ctx context.Context, version string, answers domain.AnswerSet) (*domain.Recommendations, bool, error)
	Set(ctx context.Context, version string, answers domain.AnswerSet, recs domain.Recommendations) error
	Clear(ctx context.Context, version string) error
}

type Service struct {
	store            *catalog.Store
	loader           CatalogLoader
	cache            ResultCache
	log              *zap.Logger
	batchConcurrency int
}

type Option func(*Service)

// WithLoader enables ReloadCatalog. Without it the catalog is static.
func WithLoader(l CatalogLoader) Option {
	return func(s *Service) { s.loader = l }
}

// WithCache enables result caching.
func WithCache(c ResultCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

func NewService(store *catalog.Store, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store:            store,
		log:              log,
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) snapshot() (*catalog.Snapshot, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return snap, nil
}

// Recommend scores every catalog program against the answers and splits them
// at the recommendation threshold.
func (s *Service) Recommend(ctx context.Context, answers domain.AnswerSet) (*domain.RecommendationResult, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.recommend(ctx, snap, answers)
}

func (s *Service) recommend(ctx context.Context, snap *catalog.Snapshot, answers domain.AnswerSet) (*domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	version := snap.Version()
	result := &domain.RecommendationResult{
		Issues:         snap.CheckAnswers(answers),
		CatalogVersion: version,
	}

	// Check cache
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, version, answers)
		if err != nil {
			metrics.CacheErrors.WithLabelValues("get").Inc()
			s.log.Warn("cache get failed", zap.String("catalog_version", version), zap.Error(err))
		}
		if found {
			metrics.RecommendationsServed.WithLabelValues(metrics.CacheHit).Inc()
			result.Recommendations = *cached
			result.CacheHit = true
			return result, nil
		}
	}

	// Cache miss -> rank the catalog
	recs := engine.Recommend(answers, snap.Programs())
	for _, list := range [][]domain.ScoredProgram{recs.Recommended, recs.NotRecommended} {
		for _, sp := range list {
			metrics.ProgramScores.Observe(sp.Score)
		}
	}
	result.Recommendations = recs

	if s.cache == nil {
		metrics.RecommendationsServed.WithLabelValues(metrics.CacheDisabled).Inc()
		return result, nil
	}

	if err := s.cache.Set(ctx, version, answers, recs); err != nil {
		metrics.CacheErrors.WithLabelValues("set").Inc()
		s.log.Warn("cache set failed", zap.String("catalog_version", version), zap.Error(err))
	}
	metrics.RecommendationsServed.WithLabelValues(metrics.CacheMiss).Inc()
	return result, nil
}

// RecommendBatch ranks each answer set independently against one catalog
// snapshot. Results keep the input order; a failed item never fails the batch.
func (s *Service) RecommendBatch(ctx context.Context, batch []domain.AnswerSet) (*domain.BatchResponse, error) {
	start := time.Now()

	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	metrics.BatchSize.Observe(float64(len(batch)))

	results := make([]domain.BatchItemResult, len(batch))
	var g errgroup.Group
	g.SetLimit(s.batchConcurrency)
	for i, answers := range batch {
		g.Go(func() error {
			results[i] = s.processBatchItem(ctx, snap, i, answers)
			return nil
		})
	}
	_ = g.Wait()

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Results: results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.BatchMeta{
			CatalogVersion: snap.Version(),
			GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func (s *Service) processBatchItem(ctx context.Context, snap *catalog.Snapshot, index int, answers domain.AnswerSet) domain.BatchItemResult {
	result, err := s.recommend(ctx, snap, answers)
	if err != nil {
		s.log.Warn("batch item failed", zap.Int("index", index), zap.Error(err))
		code, msg := categorizeError(err)
		return domain.BatchItemResult{
			Index:   index,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchItemResult{
		Index:           index,
		Recommendations: &result.Recommendations,
		CacheHit:        result.CacheHit,
		Status:          domain.StatusSuccess,
	}
}

func (s *Service) Questions() ([]domain.Question, string, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, "", err
	}
	return snap.Questions(), snap.Version(), nil
}

func (s *Service) Programs() ([]domain.Program, string, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, "", err
	}
	return snap.Programs(), snap.Version(), nil
}

func (s *Service) Program(id string) (domain.Program, error) {
	snap, err := s.snapshot()
	if err != nil {
		return domain.Program{}, err
	}
	p, ok := snap.Program(id)
	if !ok {
		return domain.Program{}, fmt.Errorf("%w: %s", domain.ErrProgramNotFound, id)
	}
	return p, nil
}

// ReloadCatalog loads the catalog from storage, validates it and swaps it in.
// Cached results of the replaced version are dropped.
func (s *Service) ReloadCatalog(ctx context.Context) (*catalog.Snapshot, error) {
	if s.loader == nil {
		return nil, domain.ErrStaticCatalog
	}

	questions, programs, err := s.loader.Load(ctx)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.ReloadFailure).Inc()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	snap, err := catalog.New(questions, programs)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.ReloadFailure).Inc()
		return nil, err
	}

	prev := s.store.Replace(snap)
	metrics.CatalogReloads.WithLabelValues(metrics.ReloadSuccess).Inc()
	s.log.Info("catalog reloaded",
		zap.String("catalog_version", snap.Version()),
		zap.Int("questions", len(questions)),
		zap.Int("programs", len(programs)),
	)

	if s.cache != nil && prev != nil && prev.Version() != snap.Version() {
		if err := s.cache.Clear(ctx, prev.Version()); err != nil {
			metrics.CacheErrors.WithLabelValues("clear").Inc()
			s.log.Warn("cache clear failed", zap.String("catalog_version", prev.Version()), zap.Error(err))
		}
	}
	return snap, nil
}

// Handle batch item error
func categorizeError(err error) (string, string) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "request_timeout", "request timed out before this item was processed"
	}
	return "internal_error", "an unexpected error occurred"
}
