package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"joblens/internal/platform/logger"
	"joblens/internal/services/api/search/domain"
	"joblens/internal/services/api/search/predicate"
)

// Facets computes the sidebar payload: every facet dimension plus the total
// match count, with a short lived cache in front when one is configured
func (s *Svc) Facets(ctx context.Context, q domain.SearchQuery) (domain.FacetsResponse, error) {
	start := time.Now()

	// cached entries carry counts only: queries that canonicalize to the
	// same key (remote_only=true vs work_mode=remote) share counts but not
	// their filter echo, which is rebuilt from the live query below
	key := q.CacheKey()
	if hit, ok := s.cacheGet(ctx, key); ok {
		return domain.FacetsResponse{
			Facets:         hit.Facets,
			Total:          hit.Total,
			AppliedFilters: q.Applied(),
		}, nil
	}

	set := predicate.Compile(q)

	var (
		total  int64
		facets domain.FacetResult
		wg     sync.WaitGroup
		cntErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		total, cntErr = s.Repo.Count(ctx, set)
	}()
	facets = s.aggregateFacets(ctx, set)
	wg.Wait()
	if cntErr != nil {
		return domain.FacetsResponse{}, cntErr
	}

	s.cacheSet(ctx, key, cachedCounts{Facets: facets, Total: total})
	s.observe(ctx, "facets", q, total, time.Since(start))
	return domain.FacetsResponse{
		Facets:         facets,
		Total:          total,
		AppliedFilters: q.Applied(),
	}, nil
}

// cachedCounts is the cache payload, the query independent slice of the response
type cachedCounts struct {
	Facets domain.FacetResult `json:"facets"`
	Total  int64              `json:"total"`
}

// aggregateFacets runs every dimension concurrently against the predicate
// set with that dimension's own filter removed. A failed dimension is logged
// and omitted, the rest of the response is unaffected
func (s *Svc) aggregateFacets(ctx context.Context, set predicate.Set) domain.FacetResult {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(domain.FacetResult, len(domain.FacetDimensions))
	)
	for _, dim := range domain.FacetDimensions {
		wg.Add(1)
		go func(dim domain.Dimension) {
			defer wg.Done()
			vals, err := s.Repo.FacetCounts(ctx, set.Without(dim), dim, s.facetLimit)
			if err != nil {
				logger.C(ctx).Warn().
					Str("dimension", string(dim)).
					Err(err).
					Msg("facet aggregation degraded")
				return
			}
			if vals == nil {
				vals = []domain.FacetValue{}
			}
			mu.Lock()
			out[dim] = vals
			mu.Unlock()
		}(dim)
	}
	wg.Wait()
	return out
}

func (s *Svc) cacheGet(ctx context.Context, key string) (cachedCounts, bool) {
	if s.cache == nil {
		return cachedCounts{}, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("facet cache read failed")
		return cachedCounts{}, false
	}
	if !ok {
		return cachedCounts{}, false
	}
	var hit cachedCounts
	if err := json.Unmarshal([]byte(raw), &hit); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("facet cache entry corrupt")
		return cachedCounts{}, false
	}
	return hit, true
}

func (s *Svc) cacheSet(ctx context.Context, key string, counts cachedCounts) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}
	if err := s.cache.SetEX(ctx, key, string(raw), s.cacheTTL); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("facet cache write failed")
	}
}
