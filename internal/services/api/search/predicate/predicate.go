// Package predicate compiles a normalized search query into named,
// individually removable SQL predicates.
//
// Each predicate is keyed by the dimension it constrains so the facet
// aggregator can rebuild "everything except dimension X" without inspecting
// SQL text. The same compiled set drives the count query, the page query,
// and every facet aggregation, so there is exactly one source of truth for
// what a query means.
//
// Text-valued dimensions compare through the fold_text SQL function
// (lower + unaccent, defined in the schema migration), the stored-side twin
// of textnorm.Fold. Displayed facet values like "Engineering" or "Zürich"
// therefore match when fed back as filters.
package predicate

import (
	"fmt"
	"regexp"
	"strings"

	"joblens/internal/services/api/search/domain"
)

// Predicate is one conjunct of the WHERE clause
// clause placeholders are local ($1..$n over args) and renumbered on render
type Predicate struct {
	Dim    domain.Dimension
	clause string
	args   []any
}

// Set is an ordered predicate list plus the derived sort mode
// base predicates carry an empty Dim and are never removable
type Set struct {
	preds []Predicate
	Sort  domain.SortMode
}

// Clause is a rendered WHERE conjunction with flattened args
// TermArg is the 1-based arg position of the text term, 0 when absent
type Clause struct {
	Where   string
	Args    []any
	TermArg int
}

// Compile builds the predicate set for q
// the is_active and expiry gates are unconditional and unnamed
func Compile(q domain.SearchQuery) Set {
	s := Set{Sort: q.Sort}

	s.add("", "p.is_active")
	s.add("", "(p.expires_at is null or p.expires_at > now())")

	if q.HasTerm() {
		s.add(domain.DimText, "p.search_tsv @@ websearch_to_tsquery('simple', $1)", q.Term)
	}
	if q.Country != "" {
		s.add(domain.DimCountry, "p.country_code = $1", q.Country)
	}
	if q.City != "" {
		s.add(domain.DimCity, "fold_text(p.city) like $1", likePattern(q.City))
	}
	if q.Category != "" {
		s.add(domain.DimCategory, "fold_text(p.category) = $1", q.Category)
	}
	if q.Subcategory != "" {
		s.add(domain.DimSubcategory, "fold_text(p.subcategory) = $1", q.Subcategory)
	}
	if len(q.JobTypes) > 0 {
		s.add(domain.DimJobType, "p.job_type = any($1)", toTextArray(q.JobTypes))
	}
	if len(q.WorkModes) > 0 {
		s.add(domain.DimWorkMode, "p.work_mode = any($1)", toTextArray(q.WorkModes))
	}
	if len(q.ExperienceLevels) > 0 {
		s.add(domain.DimExperienceLevel, "p.experience_level = any($1)", toTextArray(q.ExperienceLevels))
	}
	if q.Company != "" {
		s.add(domain.DimCompany, "fold_text(p.company) like $1", likePattern(q.Company))
	}
	if q.SourcePlatform != "" {
		s.add(domain.DimSourcePlatform, "fold_text(p.source_platform) = $1", q.SourcePlatform)
	}
	if q.Currency != "" {
		s.add(domain.DimCurrency, "p.currency = $1", q.Currency)
	}

	// bounds filtering: each query bound constrains the posting's matching
	// bound independently, ranges are not converted across currencies
	if q.SalaryMin != nil {
		s.add(domain.DimSalary, "p.salary_min >= $1", *q.SalaryMin)
	}
	if q.SalaryMax != nil {
		s.add(domain.DimSalary, "p.salary_max <= $1", *q.SalaryMax)
	}

	if q.DatePostedDays > 0 {
		s.add(domain.DimDatePosted, "p.posted_at >= now() - ($1 * interval '1 day')", q.DatePostedDays)
	}

	return s
}

func (s *Set) add(dim domain.Dimension, clause string, args ...any) {
	s.preds = append(s.preds, Predicate{Dim: dim, clause: clause, args: args})
}

// Len returns the number of predicates including the base gates
func (s Set) Len() int { return len(s.preds) }

// Has reports whether the set constrains dim
func (s Set) Has(dim domain.Dimension) bool {
	for _, p := range s.preds {
		if p.Dim != "" && p.Dim == dim {
			return true
		}
	}
	return false
}

// Without returns a copy of the set with every predicate for dims removed
// base predicates are always retained
func (s Set) Without(dims ...domain.Dimension) Set {
	out := Set{Sort: s.Sort, preds: make([]Predicate, 0, len(s.preds))}
	for _, p := range s.preds {
		if p.Dim != "" && contains(dims, p.Dim) {
			continue
		}
		out.preds = append(out.preds, p)
	}
	return out
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// SQL renders the conjunction with globally renumbered placeholders
func (s Set) SQL() Clause {
	var (
		parts   = make([]string, 0, len(s.preds))
		args    = make([]any, 0, len(s.preds))
		termArg int
	)
	for _, p := range s.preds {
		offset := len(args)
		clause := p.clause
		if len(p.args) > 0 {
			clause = placeholderRe.ReplaceAllStringFunc(p.clause, func(m string) string {
				var local int
				fmt.Sscanf(m, "$%d", &local)
				return fmt.Sprintf("$%d", offset+local)
			})
			args = append(args, p.args...)
		}
		if p.Dim == domain.DimText {
			termArg = offset + 1
		}
		parts = append(parts, clause)
	}
	return Clause{
		Where:   strings.Join(parts, "\nand "),
		Args:    args,
		TermArg: termArg,
	}
}

// OrderBy renders the ORDER BY expression for the rendered clause
// posted_at desc nulls last with an id tie break keeps pagination stable
// under every mode
func (s Set) OrderBy(c Clause) string {
	switch s.Sort {
	case domain.SortRelevance:
		if c.TermArg > 0 {
			return fmt.Sprintf(
				"ts_rank(p.search_tsv, websearch_to_tsquery('simple', $%d)) desc, p.posted_at desc nulls last, p.id desc",
				c.TermArg,
			)
		}
		return "p.posted_at desc nulls last, p.id desc"
	case domain.SortSalary:
		return "p.salary_max desc nulls last, p.posted_at desc nulls last, p.id desc"
	default:
		return "p.posted_at desc nulls last, p.id desc"
	}
}

// likePattern escapes LIKE metacharacters and wraps s for substring match
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func toTextArray[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func contains(dims []domain.Dimension, d domain.Dimension) bool {
	for _, x := range dims {
		if x == d {
			return true
		}
	}
	return false
}
