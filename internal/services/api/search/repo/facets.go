package repo

import (
	"context"
	"fmt"

	perr "joblens/internal/platform/errors"
	"joblens/internal/platform/store"
	"joblens/internal/services/api/search/domain"
	"joblens/internal/services/api/search/predicate"
)

// facetColumns maps a dimension to the column it groups by
// only columns listed here can ever be interpolated into facet SQL
var facetColumns = map[domain.Dimension]string{
	domain.DimCountry:         "country_code",
	domain.DimCity:            "city",
	domain.DimCategory:        "category",
	domain.DimSubcategory:     "subcategory",
	domain.DimJobType:         "job_type",
	domain.DimWorkMode:        "work_mode",
	domain.DimExperienceLevel: "experience_level",
	domain.DimCompany:         "company",
	domain.DimSourcePlatform:  "source_platform",
	domain.DimCurrency:        "currency",
}

func (r *queries) FacetCounts(
	ctx context.Context,
	set predicate.Set,
	dim domain.Dimension,
	limit int,
) ([]domain.FacetValue, error) {
	col, ok := facetColumns[dim]
	if !ok {
		return nil, perr.InvalidArgf("unknown facet dimension %q", dim)
	}

	c := set.SQL()
	sql := fmt.Sprintf(
		`select p.%s, count(*)
from job_postings p
where %s
and p.%s is not null and p.%s <> ''
group by 1
order by 2 desc, 1 asc
limit $%d`,
		col, c.Where, col, col, len(c.Args)+1,
	)
	args := append(c.Args, limit)

	out, err := store.Many(ctx, r.q, scanFacetValue, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "facet counts "+string(dim))
	}
	return out, nil
}

func scanFacetValue(row store.Row) (domain.FacetValue, error) {
	var fv domain.FacetValue
	err := row.Scan(&fv.Value, &fv.Count)
	return fv, err
}
