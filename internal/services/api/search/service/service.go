// Package service contains the search workflows
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"joblens/internal/modkit/repokit"
	"joblens/internal/platform/logger"
	"joblens/internal/platform/store"
	"joblens/internal/services/api/search/domain"
	"joblens/internal/services/api/search/predicate"
	"joblens/internal/services/api/search/repo"
)

// Service defines the search service contract
type Service interface {
	domain.ServicePort
}

// Defaults for tunables left at zero in Options
const (
	DefaultSlowThreshold = 300 * time.Millisecond
	DefaultFacetLimit    = 30
	DefaultCacheTTL      = 60 * time.Second
)

// Options carries the optional backends and tunables
// Events and Cache may be nil, the service degrades gracefully without them
type Options struct {
	Events store.Clickhouse
	Cache  store.Cache

	SlowThreshold time.Duration
	FacetLimit    int
	CacheTTL      time.Duration
}

// Svc implements the search service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	events store.Clickhouse
	cache  store.Cache

	slow       time.Duration
	facetLimit int
	cacheTTL   time.Duration
}

// New constructs a search service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts Options) *Svc {
	if db == nil {
		panic("search.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("search.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:       binder.Bind(db),
		binder:     binder,
		db:         db,
		events:     opts.Events,
		cache:      opts.Cache,
		slow:       opts.SlowThreshold,
		facetLimit: opts.FacetLimit,
		cacheTTL:   opts.CacheTTL,
	}
	if s.slow <= 0 {
		s.slow = DefaultSlowThreshold
	}
	if s.facetLimit <= 0 {
		s.facetLimit = DefaultFacetLimit
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = DefaultCacheTTL
	}
	return s
}

// Search runs the count and page queries, plus facet aggregation when
// requested, all against the same compiled predicate set
func (s *Svc) Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResponse, error) {
	start := time.Now()
	set := predicate.Compile(q)

	var (
		total  int64
		page   []domain.JobPosting
		facets domain.FacetResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.Repo.Count(gctx, set)
		if err == nil {
			total = t
		}
		return err
	})
	g.Go(func() error {
		items, err := s.Repo.Page(gctx, set, q.Size, q.Offset())
		if err == nil {
			page = items
		}
		return err
	})
	if q.IncludeFacets {
		// facet failures degrade per dimension and never fail the request
		g.Go(func() error {
			facets = s.aggregateFacets(gctx, set)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.SearchResponse{}, err
	}

	resp := assemble(q, total, page, facets)
	s.observe(ctx, "search", q, total, time.Since(start))
	return resp, nil
}

// assemble merges the page, total, pagination metadata, and facet output
func assemble(q domain.SearchQuery, total int64, page []domain.JobPosting, facets domain.FacetResult) domain.SearchResponse {
	jobs := make([]domain.Job, 0, len(page))
	for _, p := range page {
		jobs = append(jobs, domain.NewJob(p))
	}
	return domain.SearchResponse{
		Jobs: jobs,
		Pagination: domain.Pagination{
			Total:      total,
			Page:       q.Page,
			Size:       q.Size,
			TotalPages: domain.TotalPages(total, q.Size),
		},
		Facets: facets,
	}
}

// observe implements the latency monitor and the async event sink
// it never fails the request
func (s *Svc) observe(ctx context.Context, endpoint string, q domain.SearchQuery, total int64, elapsed time.Duration) {
	slow := elapsed >= s.slow
	if slow {
		logger.C(ctx).Warn().
			Str("endpoint", endpoint).
			Dur("elapsed", elapsed).
			Int64("total", total).
			Interface("query", q.Applied()).
			Msg("slow search")
	}
	s.emitEvent(endpoint, q, total, elapsed, slow)
}
