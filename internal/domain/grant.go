package domain

import "time"

// Grant statuses as stored in the operational database.
const (
	StatusOpen    = "open"
	StatusClosed  = "closed"
	StatusUnknown = "unknown"
)

// Deadline types.
const (
	DeadlineFixed   = "fixed"
	DeadlineRolling = "rolling"
)

// Grant is the top-level grant entity in the operational store. Scalar fields
// written by the extraction pipeline may be missing, so everything except the
// id and the modification timestamp is a pointer.
type Grant struct {
	ID             string     `db:"id"`
	Title          *string    `db:"title"`
	Summary        *string    `db:"summary"`
	FunderID       *string    `db:"funder_id"`
	MinAmount      *int64     `db:"min_amount"`
	MaxAmount      *int64     `db:"max_amount"`
	Currency       *string    `db:"currency"`
	Status         *string    `db:"status"`
	Rolling        *bool      `db:"rolling"`
	ApplicationURL *string    `db:"application_url"`
	SourceURL      *string    `db:"source_url"`
	LastVerifiedAt *time.Time `db:"last_verified_at"`
	CreatedAt      *time.Time `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// Deadline is one application cycle owned by a grant. Dates are kept as
// YYYY-MM-DD strings exactly as the extractor wrote them; parsing happens
// during denormalization.
type Deadline struct {
	ID        string  `db:"id"`
	Type      string  `db:"type"`
	OpenDate  *string `db:"open_date"`
	CloseDate *string `db:"close_date"`
	Cycle     *string `db:"cycle"`
}

// EligibilityFragment is one partial eligibility record. A grant may own
// several fragments that together form its logical eligibility; any subset of
// the fields may be present in a given fragment.
type EligibilityFragment struct {
	ID                 string
	OrgTypes           []string
	RegisteredRequired *bool
	YearsActiveMin     *int64
	RevenueMax         *int64
	Notes              *string
}

// Geography is one region entry owned by a grant. A single entry per grant is
// the expected shape; extras are a data-quality anomaly.
type Geography struct {
	ID         string  `db:"id"`
	RegionType *string `db:"region_type"`
	RegionCode *string `db:"region_code"`
	RegionName *string `db:"region_name"`
	City       *string `db:"city"`
}

// Funder is the organization a grant references. The reference may dangle;
// an unknown funder is valid.
type Funder struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Type         *string `db:"type"`
	Website      *string `db:"website"`
	ContactEmail *string `db:"contact_email"`
}
