package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Search(ctx context.Context, q SearchQuery) (SearchResponse, error)
	Facets(ctx context.Context, q SearchQuery) (FacetsResponse, error)
}
