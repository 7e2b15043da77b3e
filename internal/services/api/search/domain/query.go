package domain

import (
	"fmt"
	"sort"
	"strings"

	"joblens/internal/core/textnorm"
)

// Pagination bounds and defaults
const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 100
)

// FilterParams is the filter vocabulary shared by both search endpoints
// decoded from the query string by bind.ParseQuery
type FilterParams struct {
	Q                string   `query:"q" validate:"omitempty,max=200"`
	Country          string   `query:"country" validate:"omitempty,alpha,len=2"`
	City             string   `query:"city" validate:"omitempty,max=100"`
	Radius           *int     `query:"radius" validate:"omitempty,min=1,max=500"`
	Category         string   `query:"category" validate:"omitempty,max=100"`
	Subcategory      string   `query:"subcategory" validate:"omitempty,max=100"`
	JobTypes         []string `query:"job_type" validate:"omitempty,dive,oneof=full-time part-time contract internship temporary"`
	WorkModes        []string `query:"work_mode" validate:"omitempty,dive,oneof=remote hybrid onsite"`
	ExperienceLevels []string `query:"experience_level" validate:"omitempty,dive,oneof=entry mid senior executive internship"`
	SalaryMin        *int64   `query:"salary_min" validate:"omitempty,min=0"`
	SalaryMax        *int64   `query:"salary_max" validate:"omitempty,min=0"`
	Currency         string   `query:"currency" validate:"omitempty,alpha,len=3"`
	Company          string   `query:"company" validate:"omitempty,max=100"`
	SourcePlatform   string   `query:"source_platform" validate:"omitempty,max=50"`
	DatePosted       *int     `query:"date_posted" validate:"omitempty,min=1,max=365"`
	RemoteOnly       bool     `query:"remote_only"`
}

// SearchParams adds pagination, sort, and the facet toggle for GET /search
type SearchParams struct {
	FilterParams
	Sort          string `query:"sort" validate:"omitempty,oneof=relevance date salary"`
	Page          *int   `query:"page" validate:"omitempty,min=1"`
	Size          *int   `query:"size" validate:"omitempty,min=1,max=100"`
	IncludeFacets bool   `query:"include_facets"`
}

// SearchQuery is the normalized, typed filter set the compiler consumes
// zero values mean "no constraint" for every filter field
type SearchQuery struct {
	Term string

	Country        string
	City           string
	RadiusKM       int // validated but unused: the store has no spatial index
	Category       string
	Subcategory    string
	Company        string
	SourcePlatform string

	JobTypes         []JobType
	WorkModes        []WorkMode
	ExperienceLevels []ExperienceLevel

	SalaryMin *int64
	SalaryMax *int64
	Currency  string

	DatePostedDays int
	RemoteOnly     bool

	Sort          SortMode
	Page          int
	Size          int
	IncludeFacets bool
}

// Query normalizes filter params into a SearchQuery with default paging
// used directly by the facets endpoint, which carries no paging of its own
func (p FilterParams) Query() SearchQuery {
	q := SearchQuery{
		Term:           textnorm.Collapse(textnorm.Fold(p.Q)),
		Country:        strings.ToUpper(strings.TrimSpace(p.Country)),
		City:           textnorm.Fold(p.City),
		Category:       textnorm.Fold(p.Category),
		Subcategory:    textnorm.Fold(p.Subcategory),
		Company:        textnorm.Fold(p.Company),
		SourcePlatform: textnorm.Fold(p.SourcePlatform),
		Currency:       strings.ToUpper(strings.TrimSpace(p.Currency)),
		SalaryMin:      p.SalaryMin,
		SalaryMax:      p.SalaryMax,
		RemoteOnly:     p.RemoteOnly,
		Sort:           SortDate,
		Page:           DefaultPage,
		Size:           DefaultSize,
	}
	if p.Radius != nil {
		q.RadiusKM = *p.Radius
	}
	if p.DatePosted != nil {
		q.DatePostedDays = *p.DatePosted
	}

	for _, v := range dedupe(p.JobTypes) {
		q.JobTypes = append(q.JobTypes, JobType(v))
	}
	for _, v := range dedupe(p.ExperienceLevels) {
		q.ExperienceLevels = append(q.ExperienceLevels, ExperienceLevel(v))
	}

	// remote_only wins over any explicitly requested work mode set
	if p.RemoteOnly {
		q.WorkModes = []WorkMode{WorkModeRemote}
	} else {
		for _, v := range dedupe(p.WorkModes) {
			q.WorkModes = append(q.WorkModes, WorkMode(v))
		}
	}

	return q
}

// Query normalizes search params into a SearchQuery
func (p SearchParams) Query() SearchQuery {
	q := p.FilterParams.Query()
	if p.Sort != "" {
		q.Sort = SortMode(p.Sort)
	}
	// relevance ordering needs a term to rank against
	if q.Sort == SortRelevance && q.Term == "" {
		q.Sort = SortDate
	}
	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.Size != nil {
		q.Size = *p.Size
	}
	q.IncludeFacets = p.IncludeFacets
	return q
}

// Offset returns the page offset in rows
func (q SearchQuery) Offset() int { return (q.Page - 1) * q.Size }

// HasTerm reports whether a free text term is present
func (q SearchQuery) HasTerm() bool { return q.Term != "" }

// CacheKey returns a stable key over the filter fields only
// paging, sort, and the facet toggle do not change facet output
func (q SearchQuery) CacheKey() string {
	var b strings.Builder
	b.WriteString("facets:v1")
	add := func(k, v string) {
		if v != "" {
			b.WriteString("|")
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(v)
		}
	}
	add("q", q.Term)
	add("country", q.Country)
	add("city", q.City)
	add("category", q.Category)
	add("subcategory", q.Subcategory)
	add("company", q.Company)
	add("source_platform", q.SourcePlatform)
	add("currency", q.Currency)
	add("job_type", joinSorted(q.JobTypes))
	add("work_mode", joinSorted(q.WorkModes))
	add("experience_level", joinSorted(q.ExperienceLevels))
	if q.SalaryMin != nil {
		add("salary_min", fmt.Sprint(*q.SalaryMin))
	}
	if q.SalaryMax != nil {
		add("salary_max", fmt.Sprint(*q.SalaryMax))
	}
	if q.DatePostedDays > 0 {
		add("date_posted", fmt.Sprint(q.DatePostedDays))
	}
	return b.String()
}

// Applied echoes the active filters for the facets endpoint
func (q SearchQuery) Applied() AppliedFilters {
	return AppliedFilters{
		Q:                q.Term,
		Country:          q.Country,
		City:             q.City,
		Category:         q.Category,
		Subcategory:      q.Subcategory,
		Company:          q.Company,
		SourcePlatform:   q.SourcePlatform,
		Currency:         q.Currency,
		JobTypes:         toStrings(q.JobTypes),
		WorkModes:        toStrings(q.WorkModes),
		ExperienceLevels: toStrings(q.ExperienceLevels),
		SalaryMin:        q.SalaryMin,
		SalaryMax:        q.SalaryMax,
		DatePosted:       q.DatePostedDays,
		RemoteOnly:       q.RemoteOnly,
	}
}

// dedupe trims, drops empties, and removes duplicates preserving order
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func joinSorted[T ~string](in []T) string {
	if len(in) == 0 {
		return ""
	}
	ss := toStrings(in)
	sort.Strings(ss)
	return strings.Join(ss, ",")
}

func toStrings[T ~string](in []T) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
