// Package domain holds the search engine's types and query contracts
package domain

import "time"

// JobType classifies the employment arrangement of a posting
type JobType string

// JobType values
const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeTemporary  JobType = "temporary"
)

// WorkMode classifies where the work happens
type WorkMode string

// WorkMode values
const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
)

// ExperienceLevel classifies seniority
type ExperienceLevel string

// ExperienceLevel values
const (
	ExperienceEntry      ExperienceLevel = "entry"
	ExperienceMid        ExperienceLevel = "mid"
	ExperienceSenior     ExperienceLevel = "senior"
	ExperienceExecutive  ExperienceLevel = "executive"
	ExperienceInternship ExperienceLevel = "internship"
)

// SortMode orders the result page
type SortMode string

// SortMode values
const (
	SortRelevance SortMode = "relevance"
	SortDate      SortMode = "date"
	SortSalary    SortMode = "salary"
)

// Dimension names a filterable facet dimension
// the values double as query parameter names and facet response keys
type Dimension string

// Facet dimensions
const (
	DimCountry         Dimension = "country"
	DimCity            Dimension = "city"
	DimCategory        Dimension = "category"
	DimSubcategory     Dimension = "subcategory"
	DimJobType         Dimension = "job_type"
	DimWorkMode        Dimension = "work_mode"
	DimExperienceLevel Dimension = "experience_level"
	DimCompany         Dimension = "company"
	DimSourcePlatform  Dimension = "source_platform"
	DimCurrency        Dimension = "currency"

	// non-facet dimensions, named so predicates stay individually removable
	DimText       Dimension = "text"
	DimSalary     Dimension = "salary"
	DimDatePosted Dimension = "date_posted"
)

// FacetDimensions is the ordered list of dimensions the aggregator computes
var FacetDimensions = []Dimension{
	DimCountry,
	DimCity,
	DimCategory,
	DimSubcategory,
	DimJobType,
	DimWorkMode,
	DimExperienceLevel,
	DimCompany,
	DimSourcePlatform,
	DimCurrency,
}

// FacetValue is one (value, count) pair within a dimension
type FacetValue struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// FacetResult maps each computed dimension to its ordered value counts
type FacetResult map[Dimension][]FacetValue

// JobPosting is the searchable entity as stored
// engagement counters are written by collaborators outside this engine
type JobPosting struct {
	ID             int64
	SourcePlatform string
	ExternalID     string

	Title       string
	Description string
	Company     string

	CountryCode string
	Region      string
	City        string

	Category        string
	Subcategory     string
	JobType         JobType
	WorkMode        WorkMode
	ExperienceLevel ExperienceLevel

	SalaryMin *int64
	SalaryMax *int64
	Currency  string
	PayPeriod string

	Tags []string

	IsActive  bool
	PostedAt  *time.Time
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	ViewCount        int64
	ApplicationCount int64
}
