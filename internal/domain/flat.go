package domain

import "time"

// FlatGrantRecord is one analytics-ready warehouse row, keyed by grant id.
// The read API queries this schema directly, so field renames or removals
// here are breaking changes for it.
type FlatGrantRecord struct {
	GrantID            string     `db:"grant_id" json:"grant_id"`
	Title              *string    `db:"title" json:"title"`
	Summary            *string    `db:"summary" json:"summary"`
	FunderID           *string    `db:"funder_id" json:"funder_id"`
	FunderName         *string    `db:"funder_name" json:"funder_name"`
	FunderType         *string    `db:"funder_type" json:"funder_type"`
	MinAmount          *int64     `db:"min_amount" json:"min_amount"`
	MaxAmount          *int64     `db:"max_amount" json:"max_amount"`
	Currency           string     `db:"currency" json:"currency"`
	Status             string     `db:"status" json:"status"`
	Rolling            bool       `db:"rolling" json:"rolling"`
	DeadlineOpen       *time.Time `db:"deadline_open" json:"deadline_open"`
	DeadlineClose      *time.Time `db:"deadline_close" json:"deadline_close"`
	Categories         []string   `db:"-" json:"categories"`
	EligibleOrgTypes   []string   `db:"-" json:"eligible_org_types"`
	Province           *string    `db:"province" json:"province"`
	City               *string    `db:"city" json:"city"`
	RegionType         *string    `db:"region_type" json:"region_type"`
	YearsActiveMin     *int64     `db:"years_active_min" json:"years_active_min"`
	RevenueMax         *int64     `db:"revenue_max" json:"revenue_max"`
	RegisteredRequired *bool      `db:"registered_required" json:"registered_required"`
	ApplicationURL     *string    `db:"application_url" json:"application_url"`
	SourceURL          *string    `db:"source_url" json:"source_url"`
	LastVerifiedAt     *time.Time `db:"last_verified_at" json:"last_verified_at"`
	CreatedAt          *time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}
