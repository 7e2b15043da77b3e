// Package repo provides postgres access for the search engine
package repo

import (
	"context"
	"fmt"

	"joblens/internal/modkit/repokit"
	perr "joblens/internal/platform/errors"
	"joblens/internal/platform/store"
	"joblens/internal/services/api/search/domain"
	"joblens/internal/services/api/search/predicate"
)

// Repo is the minimal persistence surface for search
type Repo interface {
	// Count returns the total number of postings matching the set
	Count(ctx context.Context, set predicate.Set) (int64, error)

	// Page returns one page of postings matching the set in its sort order
	Page(ctx context.Context, set predicate.Set, limit, offset int) ([]domain.JobPosting, error)

	// FacetCounts groups matching postings by dim's column, descending by
	// count, capped at limit distinct values
	FacetCounts(ctx context.Context, set predicate.Set, dim domain.Dimension, limit int) ([]domain.FacetValue, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const postingColumns = `
p.id, p.source_platform, p.external_id,
p.title, p.description, p.company,
coalesce(p.country_code, ''), coalesce(p.region, ''), coalesce(p.city, ''),
coalesce(p.category, ''), coalesce(p.subcategory, ''),
coalesce(p.job_type, ''), coalesce(p.work_mode, ''), coalesce(p.experience_level, ''),
p.salary_min, p.salary_max, coalesce(p.currency, ''), coalesce(p.pay_period, ''),
coalesce(p.tags, '{}'::text[]),
p.is_active, p.posted_at, p.expires_at, p.created_at, p.updated_at,
p.view_count, p.application_count`

func (r *queries) Count(ctx context.Context, set predicate.Set) (int64, error) {
	c := set.SQL()
	sql := "select count(*) from job_postings p\nwhere " + c.Where
	total, err := store.Scalar[int64](ctx, r.q, sql, c.Args...)
	if err != nil {
		return 0, perr.FromPostgres(err, "search count")
	}
	return total, nil
}

func (r *queries) Page(ctx context.Context, set predicate.Set, limit, offset int) ([]domain.JobPosting, error) {
	c := set.SQL()
	sql := fmt.Sprintf(
		"select %s\nfrom job_postings p\nwhere %s\norder by %s\nlimit $%d offset $%d",
		postingColumns, c.Where, set.OrderBy(c), len(c.Args)+1, len(c.Args)+2,
	)
	args := append(c.Args, limit, offset)

	out, err := store.Many(ctx, r.q, scanPosting, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "search page")
	}
	return out, nil
}

func scanPosting(row repokit.Row) (domain.JobPosting, error) {
	var p domain.JobPosting
	err := row.Scan(
		&p.ID, &p.SourcePlatform, &p.ExternalID,
		&p.Title, &p.Description, &p.Company,
		&p.CountryCode, &p.Region, &p.City,
		&p.Category, &p.Subcategory,
		&p.JobType, &p.WorkMode, &p.ExperienceLevel,
		&p.SalaryMin, &p.SalaryMax, &p.Currency, &p.PayPeriod,
		&p.Tags,
		&p.IsActive, &p.PostedAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt,
		&p.ViewCount, &p.ApplicationCount,
	)
	return p, err
}
