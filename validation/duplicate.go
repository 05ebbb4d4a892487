package validation

import (
	"strings"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"
)

// IsDuplicateTenant reports whether the candidate matches an existing tenant
// by identity fields (last name, first name, phone), compared
// case-insensitively. The candidate's own record is skipped, so the check
// works for both new and edited tenants.
func IsDuplicateTenant(candidate models.Tenant, existing []models.Tenant) bool {
	for _, t := range existing {
		if candidate.ID != 0 && t.ID == candidate.ID {
			continue
		}
		if strings.EqualFold(t.LastName, candidate.LastName) &&
			strings.EqualFold(t.FirstName, candidate.FirstName) &&
			strings.EqualFold(t.Phone, candidate.Phone) {
			return true
		}
	}
	return false
}
