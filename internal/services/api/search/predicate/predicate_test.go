package predicate_test

import (
	"strings"
	"testing"

	"joblens/internal/services/api/search/domain"
	"joblens/internal/services/api/search/predicate"
)

func baseQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Sort: domain.SortDate,
		Page: 1,
		Size: 20,
	}
}

func TestCompile_BaseGatesAlwaysPresent(t *testing.T) {
	set := predicate.Compile(baseQuery())

	if set.Len() != 2 {
		t.Fatalf("expected 2 base predicates got %d", set.Len())
	}
	c := set.SQL()
	if !strings.Contains(c.Where, "p.is_active") {
		t.Fatalf("expected is_active gate in %q", c.Where)
	}
	if !strings.Contains(c.Where, "p.expires_at is null or p.expires_at > now()") {
		t.Fatalf("expected expiry gate in %q", c.Where)
	}
	if len(c.Args) != 0 {
		t.Fatalf("expected no args for base gates got %v", c.Args)
	}
}

func TestCompile_AddsOnePredicatePerDimension(t *testing.T) {
	min := int64(50000)
	q := baseQuery()
	q.Term = "backend"
	q.Country = "CH"
	q.City = "zurich"
	q.Category = "engineering"
	q.JobTypes = []domain.JobType{domain.JobTypeFullTime}
	q.WorkModes = []domain.WorkMode{domain.WorkModeRemote, domain.WorkModeHybrid}
	q.SalaryMin = &min
	q.DatePostedDays = 30

	set := predicate.Compile(q)

	for _, dim := range []domain.Dimension{
		domain.DimText,
		domain.DimCountry,
		domain.DimCity,
		domain.DimCategory,
		domain.DimJobType,
		domain.DimWorkMode,
		domain.DimSalary,
		domain.DimDatePosted,
	} {
		if !set.Has(dim) {
			t.Fatalf("expected set to constrain %s", dim)
		}
	}
	if set.Has(domain.DimCompany) {
		t.Fatalf("did not expect a company predicate")
	}
}

func TestCompile_SalaryBoundsAreTwoPredicatesOneDimension(t *testing.T) {
	min, max := int64(50000), int64(90000)
	q := baseQuery()
	q.SalaryMin = &min
	q.SalaryMax = &max

	set := predicate.Compile(q)
	c := set.SQL()

	if !strings.Contains(c.Where, "p.salary_min >= $1") {
		t.Fatalf("expected lower bound in %q", c.Where)
	}
	if !strings.Contains(c.Where, "p.salary_max <= $2") {
		t.Fatalf("expected upper bound in %q", c.Where)
	}

	// removing the salary dimension drops both bounds at once
	cw := set.Without(domain.DimSalary).SQL()
	if strings.Contains(cw.Where, "salary") {
		t.Fatalf("expected no salary predicate after Without got %q", cw.Where)
	}
}

func TestSQL_RenumbersPlaceholdersGlobally(t *testing.T) {
	q := baseQuery()
	q.Term = "backend engineer"
	q.Country = "US"
	q.City = "austin"

	c := predicate.Compile(q).SQL()

	if !strings.Contains(c.Where, "websearch_to_tsquery('simple', $1)") {
		t.Fatalf("expected term at $1 in %q", c.Where)
	}
	if !strings.Contains(c.Where, "p.country_code = $2") {
		t.Fatalf("expected country at $2 in %q", c.Where)
	}
	if !strings.Contains(c.Where, "fold_text(p.city) like $3") {
		t.Fatalf("expected city at $3 in %q", c.Where)
	}
	if len(c.Args) != 3 {
		t.Fatalf("expected 3 args got %v", c.Args)
	}
	if c.TermArg != 1 {
		t.Fatalf("expected term arg 1 got %d", c.TermArg)
	}
	if c.Args[0] != "backend engineer" || c.Args[1] != "US" {
		t.Fatalf("args out of order: %v", c.Args)
	}
}

func TestSQL_TermArgZeroWithoutTerm(t *testing.T) {
	q := baseQuery()
	q.Country = "DE"
	c := predicate.Compile(q).SQL()
	if c.TermArg != 0 {
		t.Fatalf("expected no term arg got %d", c.TermArg)
	}
}

func TestWithout_KeepsBaseGates(t *testing.T) {
	q := baseQuery()
	q.WorkModes = []domain.WorkMode{domain.WorkModeRemote}
	q.Country = "CH"

	set := predicate.Compile(q)
	sub := set.Without(domain.DimWorkMode)

	if sub.Has(domain.DimWorkMode) {
		t.Fatalf("expected work_mode removed")
	}
	if !sub.Has(domain.DimCountry) {
		t.Fatalf("expected country retained")
	}
	c := sub.SQL()
	if !strings.Contains(c.Where, "p.is_active") {
		t.Fatalf("expected base gates retained in %q", c.Where)
	}

	// the original set is unchanged
	if !set.Has(domain.DimWorkMode) {
		t.Fatalf("Without must not mutate the receiver")
	}
}

func TestCompile_FoldsBothSidesOfTextDimensions(t *testing.T) {
	// filter values arrive in display form, as the facet endpoint returns
	// them, and must still match the raw stored columns
	params := domain.FilterParams{Category: "Engineering", City: "Zürich"}
	c := predicate.Compile(params.Query()).SQL()

	if !strings.Contains(c.Where, "fold_text(p.city) like $1") {
		t.Fatalf("expected folded city comparison in %q", c.Where)
	}
	if !strings.Contains(c.Where, "fold_text(p.category) = $2") {
		t.Fatalf("expected folded category comparison in %q", c.Where)
	}
	if c.Args[0] != "%zurich%" || c.Args[1] != "engineering" {
		t.Fatalf("expected folded args got %v", c.Args)
	}
}

func TestLikePattern_EscapesMetacharacters(t *testing.T) {
	q := baseQuery()
	q.City = "100%_special"
	c := predicate.Compile(q).SQL()

	got, ok := c.Args[0].(string)
	if !ok {
		t.Fatalf("expected string arg got %T", c.Args[0])
	}
	if got != `%100\%\_special%` {
		t.Fatalf("unexpected like pattern %q", got)
	}
}

func TestOrderBy_Modes(t *testing.T) {
	q := baseQuery()
	q.Term = "backend"

	q.Sort = domain.SortRelevance
	set := predicate.Compile(q)
	c := set.SQL()
	if !strings.Contains(set.OrderBy(c), "ts_rank") {
		t.Fatalf("expected rank ordering got %q", set.OrderBy(c))
	}

	q.Sort = domain.SortSalary
	set = predicate.Compile(q)
	c = set.SQL()
	if !strings.HasPrefix(set.OrderBy(c), "p.salary_max desc nulls last") {
		t.Fatalf("expected salary ordering got %q", set.OrderBy(c))
	}

	q.Sort = domain.SortDate
	set = predicate.Compile(q)
	c = set.SQL()
	if set.OrderBy(c) != "p.posted_at desc nulls last, p.id desc" {
		t.Fatalf("expected date ordering got %q", set.OrderBy(c))
	}
}

func TestOrderBy_RelevanceWithoutTermFallsBackToDate(t *testing.T) {
	q := baseQuery()
	q.Sort = domain.SortRelevance
	set := predicate.Compile(q)
	c := set.SQL()
	if set.OrderBy(c) != "p.posted_at desc nulls last, p.id desc" {
		t.Fatalf("expected date fallback got %q", set.OrderBy(c))
	}
}

func TestOrderBy_EveryModeEndsWithStableTieBreak(t *testing.T) {
	for _, mode := range []domain.SortMode{domain.SortRelevance, domain.SortDate, domain.SortSalary} {
		q := baseQuery()
		q.Term = "x"
		q.Sort = mode
		set := predicate.Compile(q)
		if !strings.HasSuffix(set.OrderBy(set.SQL()), "p.id desc") {
			t.Fatalf("mode %s lacks id tie break", mode)
		}
	}
}
