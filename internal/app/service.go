// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/jobmatch/internal/adapters/pool"
	"github.com/okian/jobmatch/internal/adapters/repository"
	"github.com/okian/jobmatch/internal/domain/model"
	"github.com/okian/jobmatch/internal/domain/scoring"
	"github.com/okian/jobmatch/internal/domain/types"
	"github.com/okian/jobmatch/internal/index"
	"github.com/okian/jobmatch/pkg/logger"
	"github.com/okian/jobmatch/pkg/metrics"
)

// state bundles one index snapshot with the user directory loaded alongside
// it. The pair is swapped atomically so a request never mixes generations.
type state struct {
	snap  *index.Snapshot
	users *repository.UserDirectory
}

// Service implements the recommendation API on top of a corpus, an index
// snapshot and a bounded scoring pool.
type Service struct {
	corpus repository.Corpus
	scorer *scoring.Scorer
	pool   *pool.Pool

	indexOpts []index.Option

	current   atomic.Pointer[state]
	rebuildMu sync.Mutex

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScorer replaces the relevance scorer.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithPool replaces the scoring executor.
func WithPool(p *pool.Pool) Option {
	return func(s *Service) {
		if p != nil {
			s.pool = p
		}
	}
}

// WithIndexOptions sets the options passed to every index build.
func WithIndexOptions(opts ...index.Option) Option {
	return func(s *Service) {
		s.indexOpts = opts
	}
}

// New constructs a Service over the given corpus with default components.
func New(corpus repository.Corpus, opts ...Option) *Service {
	s := &Service{
		corpus: corpus,
		scorer: scoring.New(),
		pool:   pool.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start performs the initial corpus load and index build. The service serves
// nothing until this succeeds.
func (s *Service) Start(ctx context.Context) error {
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.logger.Info(ctx, "starting recommendation service",
		logger.Int("scoringPermits", s.pool.Permits()),
	)
	return s.Rebuild(ctx)
}

// Rebuild reloads the corpus and swaps in a freshly built snapshot plus user
// directory. Rebuilds are serialized; readers keep the previous generation
// until the swap. The new snapshot's memo cache starts empty, which drops all
// inferences derived from the old corpus.
func (s *Service) Rebuild(ctx context.Context) error {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	started := time.Now()

	jobs, err := s.corpus.LoadJobs(ctx)
	if err != nil {
		return err
	}
	users, err := s.corpus.LoadUsers(ctx)
	if err != nil {
		return err
	}

	snap := index.Build(jobs, s.indexOpts...)
	s.current.Store(&state{snap: snap, users: users})

	elapsed := time.Since(started)
	metrics.RecordIndexRebuild(float64(elapsed.Milliseconds()))
	metrics.UpdateCorpusSize(snap.Size())
	metrics.UpdateUserCount(users.Count())

	s.logger.Info(ctx, "index rebuilt",
		logger.Int("jobs", snap.Size()),
		logger.Int("users", users.Count()),
		logger.Duration("elapsed", elapsed),
	)
	return nil
}

// Recommend returns jobs for the user, retrieved through the inverted skill
// index and ranked by blended relevance. topK <= 0 returns everything that
// passes minRelevance; a nil minRelevance keeps all scores.
func (s *Service) Recommend(ctx context.Context, userID string, topK int, minRelevance *int) (types.Recommendation, error) {
	st := s.current.Load()
	if st == nil {
		return types.Recommendation{}, index.ErrNotBuilt
	}
	user, err := st.users.User(ctx, userID)
	if err != nil {
		return types.Recommendation{}, err
	}

	candidates := st.snap.CandidatesBySkills(user.Skills)
	results, err := s.scoreCandidates(ctx, st.snap, user, candidates, topK, minRelevance)
	if err != nil {
		return types.Recommendation{}, err
	}

	return types.Recommendation{
		UserID:  userID,
		Count:   len(results),
		Results: results,
	}, nil
}

// SearchByTitles returns jobs whose titles fuzzily match any of the query
// titles, ranked the same way as Recommend. An empty titles list yields an
// empty result set.
func (s *Service) SearchByTitles(ctx context.Context, userID string, titles []string, topK int, minRelevance *int) (types.Recommendation, error) {
	st := s.current.Load()
	if st == nil {
		return types.Recommendation{}, index.ErrNotBuilt
	}
	user, err := st.users.User(ctx, userID)
	if err != nil {
		return types.Recommendation{}, err
	}

	candidates := st.snap.CandidatesByTitles(titles)
	results, err := s.scoreCandidates(ctx, st.snap, user, candidates, topK, minRelevance)
	if err != nil {
		return types.Recommendation{}, err
	}

	return types.Recommendation{
		UserID:      userID,
		QueryTitles: titles,
		Count:       len(results),
		Results:     results,
	}, nil
}

// scoreCandidates scores every candidate position concurrently under the pool
// budget, then sorts, filters and truncates. Sorting is stable on descending
// relevance, so equal scores keep candidate (corpus) order.
func (s *Service) scoreCandidates(ctx context.Context, snap *index.Snapshot, user model.UserProfile, candidates []int, topK int, minRelevance *int) ([]types.RecommendedJob, error) {
	metrics.RecordCandidateSetSize(len(candidates))
	started := time.Now()

	scored := make([]types.RecommendedJob, len(candidates))
	err := s.pool.ForEach(ctx, len(candidates), func(i int) {
		job := snap.Job(candidates[i])
		scored[i] = toRecommended(job, s.scorer.Relevance(job, snap, user.Personality, user.Skills))
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordScoringBatch(float64(time.Since(started).Milliseconds()))

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Relevance > scored[b].Relevance
	})

	if minRelevance != nil {
		kept := scored[:0]
		for _, r := range scored {
			if r.Relevance >= *minRelevance {
				kept = append(kept, r)
			}
		}
		scored = kept
	}
	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}

	metrics.RecordResultsReturned(len(scored))
	hits, misses, entries := snap.CacheStats()
	metrics.UpdateCacheStats(hits, misses, entries)
	return scored, nil
}

func toRecommended(job model.JobRecord, relevance int) types.RecommendedJob {
	return types.RecommendedJob{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		ApplyLink:   job.ApplyLink,
		Description: job.Description,
		PublishDate: job.PublishDate,
		Locations:   job.Locations,
		Skills:      job.Skills,
		Education:   job.Education,
		Relevance:   relevance,
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"built":          false,
		"scoringPermits": s.pool.Permits(),
	}

	st := s.current.Load()
	if st == nil {
		return stats
	}

	hits, misses, entries := st.snap.CacheStats()
	stats["built"] = true
	stats["corpusJobs"] = st.snap.Size()
	stats["userProfiles"] = st.users.Count()
	stats["indexBuiltAt"] = st.snap.BuiltAt().UTC().Format(time.RFC3339)
	stats["cacheHits"] = hits
	stats["cacheMisses"] = misses
	stats["cacheEntries"] = entries

	metrics.UpdateCacheStats(hits, misses, entries)
	return stats
}
