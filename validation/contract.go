package validation

import (
	"fmt"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"
)

// ContractError reports why a candidate contract was rejected, carrying the
// unit it was staged for so callers can point at the offending selection.
type ContractError struct {
	UnitID     uint
	Violations Violations
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("invalid contract for unit %d: %v", e.UnitID, e.Violations)
}

// CheckContract validates a candidate contract against its own fields and
// against the other contracts on the same unit. Rules run in a fixed order
// and the first violation wins. It performs no I/O; callers supply the
// sibling contracts (the candidate itself, if persisted, must not be among
// them).
func CheckContract(candidate models.Contract, othersOnSameUnit []models.Contract) *ContractError {
	fail := func(field, reason string) *ContractError {
		return &ContractError{UnitID: candidate.UnitID, Violations: Violations{field: reason}}
	}
	if candidate.StartDate.IsZero() {
		return fail("start_date", "required")
	}
	if candidate.EndDate != nil && !candidate.EndDate.After(candidate.StartDate) {
		return fail("end_date", "must_be_after_start_date")
	}
	if candidate.Rent <= 0 {
		return fail("rent", "must_be_positive")
	}
	if candidate.Deposit <= 0 {
		return fail("deposit", "must_be_positive")
	}
	if candidate.OccupantCount < 1 {
		return fail("occupant_count", "below_minimum")
	}
	for _, other := range othersOnSameUnit {
		if other.ID != 0 && other.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, other) {
			return fail("period", fmt.Sprintf("overlaps_contract_%d", other.ID))
		}
	}
	return nil
}

// Overlaps reports whether the two contracts' half-open ranges
// [start, end-or-infinity) intersect. Two open-ended contracts always do.
func Overlaps(a, b models.Contract) bool {
	if a.EndDate == nil && b.EndDate == nil {
		return true
	}
	aBeforeBEnd := b.EndDate == nil || a.StartDate.Before(*b.EndDate)
	bBeforeAEnd := a.EndDate == nil || b.StartDate.Before(*a.EndDate)
	return aBeforeBEnd && bBeforeAEnd
}
