// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	"joblens/internal/modkit/httpkit"
	"joblens/internal/services/api/search/domain"
	svc "joblens/internal/services/api/search/service"
)

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one page of results, optionally with facets
	httpkit.GetQuery[domain.SearchParams](r, "/", h.search)

	// facet sidebar without a result page
	httpkit.GetQuery[domain.FilterParams](r, "/facets", h.facets)
}

type handlers struct{ svc svc.Service }

// @Summary Search job postings
// @Description Multi-dimensional filtering with free-text relevance ranking and optional facet counts
// @Tags Search
// @Produce json
// @Param q query string false "free text term"
// @Param country query string false "ISO 3166-1 alpha-2 country code"
// @Param city query string false "city substring"
// @Param category query string false "category"
// @Param subcategory query string false "subcategory"
// @Param job_type query []string false "full-time part-time contract internship temporary" collectionFormat(multi)
// @Param work_mode query []string false "remote hybrid onsite" collectionFormat(multi)
// @Param experience_level query []string false "entry mid senior executive internship" collectionFormat(multi)
// @Param salary_min query integer false "minimum salary bound"
// @Param salary_max query integer false "maximum salary bound"
// @Param currency query string false "ISO 4217 currency code"
// @Param company query string false "company substring"
// @Param source_platform query string false "source platform"
// @Param date_posted query integer false "posted within the last N days (1..365)"
// @Param remote_only query boolean false "force work mode to remote"
// @Param sort query string false "relevance, date, or salary" default(date)
// @Param page query integer false "page number" default(1)
// @Param size query integer false "page size (1..100)" default(20)
// @Param include_facets query boolean false "compute facet counts alongside the page"
// @Success 200 {object} domain.SearchResponse "ok"
// @Router /search [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchParams) (any, error) {
	return h.svc.Search(r.Context(), in.Query())
}

// @Summary Facet counts for the current filter set
// @Description Grouped counts per dimension with that dimension's own filter removed
// @Tags Search
// @Produce json
// @Param q query string false "free text term"
// @Param country query string false "ISO 3166-1 alpha-2 country code"
// @Param city query string false "city substring"
// @Param category query string false "category"
// @Param subcategory query string false "subcategory"
// @Param job_type query []string false "full-time part-time contract internship temporary" collectionFormat(multi)
// @Param work_mode query []string false "remote hybrid onsite" collectionFormat(multi)
// @Param experience_level query []string false "entry mid senior executive internship" collectionFormat(multi)
// @Param salary_min query integer false "minimum salary bound"
// @Param salary_max query integer false "maximum salary bound"
// @Param currency query string false "ISO 4217 currency code"
// @Param company query string false "company substring"
// @Param source_platform query string false "source platform"
// @Param date_posted query integer false "posted within the last N days (1..365)"
// @Param remote_only query boolean false "force work mode to remote"
// @Success 200 {object} domain.FacetsResponse "ok"
// @Router /search/facets [get]
func (h *handlers) facets(r *stdhttp.Request, in domain.FilterParams) (any, error) {
	return h.svc.Facets(r.Context(), in.Query())
}
