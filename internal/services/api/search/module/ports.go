package module

import (
	"context"

	"joblens/internal/services/api/search/domain"
	searchsvc "joblens/internal/services/api/search/service"
)

// Ports exposes the search service to other modules
type Ports struct {
	Search domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSearchPort struct{ svc searchsvc.Service }

// Search runs a search query and returns one page of results
func (a adaptSearchPort) Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResponse, error) {
	return a.svc.Search(ctx, q)
}

// Facets computes facet counts for the given filter set
func (a adaptSearchPort) Facets(ctx context.Context, q domain.SearchQuery) (domain.FacetsResponse, error) {
	return a.svc.Facets(ctx, q)
}
