package validation

import (
	"testing"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateTenant(t *testing.T) {
	existing := []models.Tenant{
		{ID: 1, LastName: "Schmidt", FirstName: "Anna", Phone: "0151 1234567"},
		{ID: 2, LastName: "Meyer", FirstName: "Jonas", Phone: "0152 7654321"},
	}

	t.Run("exact match", func(t *testing.T) {
		c := models.Tenant{LastName: "Schmidt", FirstName: "Anna", Phone: "0151 1234567"}
		assert.True(t, IsDuplicateTenant(c, existing))
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		c := models.Tenant{LastName: "SCHMIDT", FirstName: "anna", Phone: "0151 1234567"}
		assert.True(t, IsDuplicateTenant(c, existing))
	})

	t.Run("differing phone is no duplicate", func(t *testing.T) {
		c := models.Tenant{LastName: "Schmidt", FirstName: "Anna", Phone: "0160 0000000"}
		assert.False(t, IsDuplicateTenant(c, existing))
	})

	t.Run("own record skipped on edit", func(t *testing.T) {
		c := models.Tenant{ID: 1, LastName: "Schmidt", FirstName: "Anna", Phone: "0151 1234567"}
		assert.False(t, IsDuplicateTenant(c, existing))
	})

	t.Run("empty set", func(t *testing.T) {
		c := models.Tenant{LastName: "Schmidt", FirstName: "Anna"}
		assert.False(t, IsDuplicateTenant(c, nil))
	})
}
