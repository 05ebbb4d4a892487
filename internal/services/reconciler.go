package services

import (
	"errors"
	"time"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"
	"github.com/projektarbeit/immobilienverwaltung/validation"

	"gorm.io/gorm"
)

// SharedTerms are the contract terms a tenant assignment applies uniformly
// to every unit in the desired set; the assignment is edited as one form,
// not per unit.
type SharedTerms struct {
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"` // nil = open-ended
	Rent          float64    `json:"rent"`
	Deposit       float64    `json:"deposit"`
	OccupantCount int        `json:"occupant_count"`
}

// ReconciliationSummary lists the contracts a reconciliation actually
// touched. Reconciling twice with the same input yields an empty summary
// the second time.
type ReconciliationSummary struct {
	Created []models.Contract `json:"created"`
	Updated []models.Contract `json:"updated"`
	Deleted []models.Contract `json:"deleted"`
}

func (s ReconciliationSummary) Total() int {
	return len(s.Created) + len(s.Updated) + len(s.Deleted)
}

// ContractService owns all contract writes. Contracts are only created,
// updated, or deleted through reconciliation (or the tenant/unit cascades).
type ContractService struct {
	DB *gorm.DB
}

func NewContractService(db *gorm.DB) *ContractService { return &ContractService{DB: db} }

func (s *ContractService) FindByTenant(tenantID uint) ([]models.Contract, error) {
	var contracts []models.Contract
	err := s.DB.Where("tenant_id = ?", tenantID).Order("start_date asc").Find(&contracts).Error
	return contracts, err
}

func (s *ContractService) FindByUnit(unitID uint) ([]models.Contract, error) {
	var contracts []models.Contract
	err := s.DB.Where("unit_id = ?", unitID).Order("start_date asc").Find(&contracts).Error
	return contracts, err
}

// ReconcileTenantUnits brings the tenant's contract set in line with the
// desired unit set: contracts on units no longer desired are deleted, units
// without a contract get one with the shared terms, and kept contracts are
// rewritten to the shared terms when they differ. Everything runs in a
// single transaction; the first validation failure aborts the whole
// operation and no row changes.
func (s *ContractService) ReconcileTenantUnits(tenantID uint, unitIDs []uint, terms SharedTerms) (*ReconciliationSummary, error) {
	summary := &ReconciliationSummary{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return err
		}

		var existing []models.Contract
		if err := tx.Where("tenant_id = ?", tenantID).Find(&existing).Error; err != nil {
			return err
		}

		desired := make(map[uint]bool, len(unitIDs))
		for _, id := range unitIDs {
			desired[id] = true
		}

		// Partition the existing contracts against the desired unit set.
		byUnit := make(map[uint]*models.Contract)
		var toRemove []models.Contract
		for i := range existing {
			if desired[existing[i].UnitID] {
				byUnit[existing[i].UnitID] = &existing[i]
			} else {
				toRemove = append(toRemove, existing[i])
			}
		}

		seen := make(map[uint]bool, len(unitIDs))
		for _, unitID := range unitIDs {
			if seen[unitID] {
				continue
			}
			seen[unitID] = true

			var unit models.Unit
			if err := tx.First(&unit, unitID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnitNotFound
				}
				return err
			}

			current := byUnit[unitID]
			if current == nil {
				candidate := models.Contract{
					TenantID:      tenantID,
					UnitID:        unitID,
					StartDate:     terms.StartDate,
					EndDate:       terms.EndDate,
					Rent:          terms.Rent,
					Deposit:       terms.Deposit,
					OccupantCount: terms.OccupantCount,
				}
				others, err := otherContractsOnUnit(tx, unitID, 0)
				if err != nil {
					return err
				}
				if verr := validation.CheckContract(candidate, others); verr != nil {
					return verr
				}
				if err := tx.Create(&candidate).Error; err != nil {
					return err
				}
				summary.Created = append(summary.Created, candidate)
				continue
			}

			if termsMatch(*current, terms) {
				continue
			}
			updated := *current
			updated.StartDate = terms.StartDate
			updated.EndDate = terms.EndDate
			updated.Rent = terms.Rent
			updated.Deposit = terms.Deposit
			updated.OccupantCount = terms.OccupantCount
			others, err := otherContractsOnUnit(tx, unitID, current.ID)
			if err != nil {
				return err
			}
			if verr := validation.CheckContract(updated, others); verr != nil {
				return verr
			}
			if err := tx.Save(&updated).Error; err != nil {
				return err
			}
			summary.Updated = append(summary.Updated, updated)
		}

		for _, contract := range toRemove {
			if err := tx.Delete(&models.Contract{}, contract.ID).Error; err != nil {
				return err
			}
			summary.Deleted = append(summary.Deleted, contract)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func otherContractsOnUnit(tx *gorm.DB, unitID, excludeID uint) ([]models.Contract, error) {
	var others []models.Contract
	q := tx.Where("unit_id = ?", unitID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&others).Error; err != nil {
		return nil, err
	}
	return others, nil
}

func termsMatch(c models.Contract, terms SharedTerms) bool {
	if !c.StartDate.Equal(terms.StartDate) {
		return false
	}
	if (c.EndDate == nil) != (terms.EndDate == nil) {
		return false
	}
	if c.EndDate != nil && !c.EndDate.Equal(*terms.EndDate) {
		return false
	}
	return c.Rent == terms.Rent && c.Deposit == terms.Deposit && c.OccupantCount == terms.OccupantCount
}
