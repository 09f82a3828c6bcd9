// Package denormalize folds a hierarchical grant aggregate and its joined
// funder into one flat warehouse row. It is pure: no I/O, and the same inputs
// always produce the same record.
package denormalize

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"grantsync/internal/domain"
)

// DefaultCurrency is used when the grant carries no currency.
const DefaultCurrency = "CAD"

const dateLayout = "2006-01-02"

// Input bundles everything read for one grant. Funder is nil when the grant
// has no funder reference or the reference dangles.
type Input struct {
	Grant       domain.Grant
	Deadlines   []domain.Deadline
	Eligibility []domain.EligibilityFragment
	Geography   []domain.Geography
	Categories  []string
	Funder      *domain.Funder
}

// Flatten builds the warehouse row for one grant.
//
// Sub-records are sorted by their id before any fold or selection, so the
// result does not depend on the store's enumeration order: the eligibility
// merge is last-wins over id order, geography takes the lowest id, and
// deadline ties break toward the lowest id.
func Flatten(in Input) (*domain.FlatGrantRecord, error) {
	rec := &domain.FlatGrantRecord{
		GrantID:        in.Grant.ID,
		Title:          in.Grant.Title,
		Summary:        in.Grant.Summary,
		FunderID:       in.Grant.FunderID,
		MinAmount:      in.Grant.MinAmount,
		MaxAmount:      in.Grant.MaxAmount,
		Currency:       DefaultCurrency,
		Status:         domain.StatusUnknown,
		ApplicationURL: in.Grant.ApplicationURL,
		SourceURL:      in.Grant.SourceURL,
		LastVerifiedAt: in.Grant.LastVerifiedAt,
		CreatedAt:      in.Grant.CreatedAt,
		UpdatedAt:      in.Grant.UpdatedAt,
	}

	if in.Grant.Currency != nil && *in.Grant.Currency != "" {
		rec.Currency = *in.Grant.Currency
	}
	if in.Grant.Status != nil && *in.Grant.Status != "" {
		rec.Status = *in.Grant.Status
	}
	if in.Grant.Rolling != nil {
		rec.Rolling = *in.Grant.Rolling
	}

	if in.Funder != nil {
		rec.FunderName = &in.Funder.Name
		rec.FunderType = in.Funder.Type
	}

	if err := resolveDeadline(rec, in.Deadlines); err != nil {
		return nil, err
	}
	mergeEligibility(rec, in.Eligibility)
	resolveGeography(rec, in.Geography)

	rec.Categories = uniqueSorted(in.Categories)
	if rec.Categories == nil {
		rec.Categories = []string{}
	}

	return rec, nil
}

// resolveDeadline picks the deadline with the maximum close date among those
// that have one; a grant with no dated deadline is rolling or undated and
// keeps both fields absent. Only one cycle survives even when several are
// open at once.
func resolveDeadline(rec *domain.FlatGrantRecord, deadlines []domain.Deadline) error {
	sorted := slices.Clone(deadlines)
	slices.SortFunc(sorted, func(a, b domain.Deadline) int {
		return strings.Compare(a.ID, b.ID)
	})

	var chosen *domain.Deadline
	var chosenClose time.Time
	for i := range sorted {
		d := &sorted[i]
		if d.CloseDate == nil || *d.CloseDate == "" {
			continue
		}
		closeAt, err := time.Parse(dateLayout, *d.CloseDate)
		if err != nil {
			return fmt.Errorf("deadline %s: parse close_date %q: %w", d.ID, *d.CloseDate, err)
		}
		if chosen == nil || closeAt.After(chosenClose) {
			chosen = d
			chosenClose = closeAt
		}
	}
	if chosen == nil {
		return nil
	}

	rec.DeadlineClose = &chosenClose
	if chosen.OpenDate != nil && *chosen.OpenDate != "" {
		openAt, err := time.Parse(dateLayout, *chosen.OpenDate)
		if err != nil {
			return fmt.Errorf("deadline %s: parse open_date %q: %w", chosen.ID, *chosen.OpenDate, err)
		}
		rec.DeadlineOpen = &openAt
	}
	return nil
}

// mergeEligibility folds all fragments into the record, last-observed-wins
// per field over fragment id order.
func mergeEligibility(rec *domain.FlatGrantRecord, fragments []domain.EligibilityFragment) {
	sorted := slices.Clone(fragments)
	slices.SortFunc(sorted, func(a, b domain.EligibilityFragment) int {
		return strings.Compare(a.ID, b.ID)
	})

	for i := range sorted {
		f := &sorted[i]
		if len(f.OrgTypes) > 0 {
			rec.EligibleOrgTypes = uniqueSorted(f.OrgTypes)
		}
		if f.RegisteredRequired != nil {
			rec.RegisteredRequired = f.RegisteredRequired
		}
		if f.YearsActiveMin != nil {
			rec.YearsActiveMin = f.YearsActiveMin
		}
		if f.RevenueMax != nil {
			rec.RevenueMax = f.RevenueMax
		}
	}
	if rec.EligibleOrgTypes == nil {
		rec.EligibleOrgTypes = []string{}
	}
}

// resolveGeography takes the entry with the lowest id; extras are dropped.
func resolveGeography(rec *domain.FlatGrantRecord, entries []domain.Geography) {
	if len(entries) == 0 {
		return
	}
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b domain.Geography) int {
		return strings.Compare(a.ID, b.ID)
	})
	g := sorted[0]
	rec.Province = g.RegionCode
	rec.City = g.City
	rec.RegionType = g.RegionType
}

func uniqueSorted(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
