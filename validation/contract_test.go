package validation

import (
	"testing"
	"time"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func validContract() models.Contract {
	return models.Contract{
		UnitID:        7,
		StartDate:     date(2024, 1, 1),
		EndDate:       datePtr(2024, 12, 31),
		Rent:          800,
		Deposit:       1600,
		OccupantCount: 2,
	}
}

func TestCheckContractValid(t *testing.T) {
	assert.Nil(t, CheckContract(validContract(), nil))
}

func TestCheckContractFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Contract)
		field  string
		reason string
	}{
		{"missing start", func(c *models.Contract) { c.StartDate = time.Time{} }, "start_date", "required"},
		{"end before start", func(c *models.Contract) { c.EndDate = datePtr(2023, 6, 1) }, "end_date", "must_be_after_start_date"},
		{"end equals start", func(c *models.Contract) { c.EndDate = datePtr(2024, 1, 1) }, "end_date", "must_be_after_start_date"},
		{"zero rent", func(c *models.Contract) { c.Rent = 0 }, "rent", "must_be_positive"},
		{"negative deposit", func(c *models.Contract) { c.Deposit = -50 }, "deposit", "must_be_positive"},
		{"zero occupants", func(c *models.Contract) { c.OccupantCount = 0 }, "occupant_count", "below_minimum"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validContract()
			tc.mutate(&c)
			err := CheckContract(c, nil)
			require.NotNil(t, err)
			assert.Equal(t, uint(7), err.UnitID)
			assert.Equal(t, tc.reason, err.Violations[tc.field])
		})
	}
}

func TestCheckContractFirstViolationWins(t *testing.T) {
	c := validContract()
	c.StartDate = time.Time{}
	c.Rent = 0
	err := CheckContract(c, nil)
	require.NotNil(t, err)
	assert.Len(t, err.Violations, 1)
	assert.Contains(t, err.Violations, "start_date")
}

func TestCheckContractOverlap(t *testing.T) {
	other := models.Contract{ID: 42, UnitID: 7, StartDate: date(2024, 6, 1), EndDate: nil}
	c := validContract()
	c.EndDate = nil

	err := CheckContract(c, []models.Contract{other})
	require.NotNil(t, err)
	assert.Equal(t, "overlaps_contract_42", err.Violations["period"])

	// The persisted version of the candidate itself is not a conflict.
	c.ID = 42
	assert.Nil(t, CheckContract(c, []models.Contract{other}))
}

func TestOverlaps(t *testing.T) {
	open := func(start time.Time) models.Contract {
		return models.Contract{StartDate: start}
	}
	closed := func(start, end time.Time) models.Contract {
		return models.Contract{StartDate: start, EndDate: &end}
	}

	cases := []struct {
		name string
		a, b models.Contract
		want bool
	}{
		{"both open-ended", open(date(2020, 1, 1)), open(date(2030, 1, 1)), true},
		{"open vs later closed", open(date(2024, 1, 1)), closed(date(2025, 1, 1), date(2025, 6, 1)), true},
		{"open starts after closed ends", open(date(2026, 1, 1)), closed(date(2025, 1, 1), date(2025, 6, 1)), false},
		{"disjoint closed", closed(date(2024, 1, 1), date(2024, 6, 1)), closed(date(2024, 7, 1), date(2024, 12, 1)), false},
		{"back to back half-open", closed(date(2024, 1, 1), date(2024, 6, 1)), closed(date(2024, 6, 1), date(2024, 12, 1)), false},
		{"nested", closed(date(2024, 1, 1), date(2024, 12, 1)), closed(date(2024, 3, 1), date(2024, 4, 1)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a))
		})
	}
}
