package domain

import "time"

// Job is the wire form of a posting in search results
type Job struct {
	ID             int64  `json:"id" example:"1042"`
	SourcePlatform string `json:"sourcePlatform" example:"greenhouse"`
	ExternalID     string `json:"externalId" example:"gh-88271"`

	Title       string `json:"title" example:"Backend Engineer"`
	Description string `json:"description,omitempty"`
	Company     string `json:"company" example:"Acme"`

	Country string `json:"country,omitempty" example:"CH"`
	Region  string `json:"region,omitempty" example:"Zurich"`
	City    string `json:"city,omitempty" example:"Zurich"`

	Category        string `json:"category,omitempty" example:"engineering"`
	Subcategory     string `json:"subcategory,omitempty" example:"backend"`
	JobType         string `json:"jobType,omitempty" example:"full-time"`
	WorkMode        string `json:"workMode,omitempty" example:"remote"`
	ExperienceLevel string `json:"experienceLevel,omitempty" example:"senior"`

	SalaryMin *int64 `json:"salaryMin,omitempty" example:"90000"`
	SalaryMax *int64 `json:"salaryMax,omitempty" example:"150000"`
	Currency  string `json:"currency,omitempty" example:"USD"`
	PayPeriod string `json:"payPeriod,omitempty" example:"year"`

	Tags []string `json:"tags,omitempty"`

	PostedAt  *time.Time `json:"postedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	ViewCount        int64 `json:"viewCount"`
	ApplicationCount int64 `json:"applicationCount"`
}

// NewJob converts a stored posting into its wire form
func NewJob(p JobPosting) Job {
	return Job{
		ID:               p.ID,
		SourcePlatform:   p.SourcePlatform,
		ExternalID:       p.ExternalID,
		Title:            p.Title,
		Description:      p.Description,
		Company:          p.Company,
		Country:          p.CountryCode,
		Region:           p.Region,
		City:             p.City,
		Category:         p.Category,
		Subcategory:      p.Subcategory,
		JobType:          string(p.JobType),
		WorkMode:         string(p.WorkMode),
		ExperienceLevel:  string(p.ExperienceLevel),
		SalaryMin:        p.SalaryMin,
		SalaryMax:        p.SalaryMax,
		Currency:         p.Currency,
		PayPeriod:        p.PayPeriod,
		Tags:             p.Tags,
		PostedAt:         p.PostedAt,
		ExpiresAt:        p.ExpiresAt,
		ViewCount:        p.ViewCount,
		ApplicationCount: p.ApplicationCount,
	}
}

// Pagination describes the returned page
type Pagination struct {
	Total      int64 `json:"total" example:"124"`
	Page       int   `json:"page" example:"1"`
	Size       int   `json:"size" example:"20"`
	TotalPages int64 `json:"totalPages" example:"7"`
}

// TotalPages computes ceil(total/size) for a positive size
func TotalPages(total int64, size int) int64 {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + int64(size) - 1) / int64(size)
}

// SearchResponse is the envelope data for GET /search
type SearchResponse struct {
	Jobs       []Job       `json:"jobs"`
	Pagination Pagination  `json:"pagination"`
	Facets     FacetResult `json:"facets,omitempty"`
}

// AppliedFilters echoes the normalized filter set back to the caller
type AppliedFilters struct {
	Q                string   `json:"q,omitempty"`
	Country          string   `json:"country,omitempty"`
	City             string   `json:"city,omitempty"`
	Category         string   `json:"category,omitempty"`
	Subcategory      string   `json:"subcategory,omitempty"`
	Company          string   `json:"company,omitempty"`
	SourcePlatform   string   `json:"sourcePlatform,omitempty"`
	Currency         string   `json:"currency,omitempty"`
	JobTypes         []string `json:"jobTypes,omitempty"`
	WorkModes        []string `json:"workModes,omitempty"`
	ExperienceLevels []string `json:"experienceLevels,omitempty"`
	SalaryMin        *int64   `json:"salaryMin,omitempty"`
	SalaryMax        *int64   `json:"salaryMax,omitempty"`
	DatePosted       int      `json:"datePosted,omitempty"`
	RemoteOnly       bool     `json:"remoteOnly,omitempty"`
}

// FacetsResponse is the envelope data for GET /search/facets
type FacetsResponse struct {
	Facets         FacetResult    `json:"facets"`
	Total          int64          `json:"total" example:"124"`
	AppliedFilters AppliedFilters `json:"appliedFilters"`
}
