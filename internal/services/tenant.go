package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"
	"github.com/projektarbeit/immobilienverwaltung/validation"

	"gorm.io/gorm"
)

var searchSafe = regexp.MustCompile(`[^a-zA-Z0-9äöüÄÖÜß \-+]`)

// TenantService covers tenant CRUD plus the duplicate guard. Contract
// assignments belong to ContractService, deletion cascades included here
// only cover what a tenant owns.
type TenantService struct {
	DB *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService { return &TenantService{DB: db} }

// FindAll lists tenants, optionally filtered by a name/phone substring.
func (s *TenantService) FindAll(filter string) ([]models.Tenant, error) {
	var tenants []models.Tenant
	q := s.DB.Order("last_name asc, first_name asc")
	if f := strings.TrimSpace(filter); f != "" {
		like := "%" + strings.ToLower(searchSafe.ReplaceAllString(f, "")) + "%"
		q = q.Where("lower(last_name) LIKE ? OR lower(first_name) LIKE ? OR phone LIKE ?", like, like, like)
	}
	err := q.Find(&tenants).Error
	return tenants, err
}

func (s *TenantService) FindByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// IsDuplicate runs the pure identity check against all stored tenants.
func (s *TenantService) IsDuplicate(candidate models.Tenant) (bool, error) {
	var existing []models.Tenant
	if err := s.DB.Find(&existing).Error; err != nil {
		return false, err
	}
	return validation.IsDuplicateTenant(candidate, existing), nil
}

// Save persists a new or edited tenant after the duplicate guard. On a
// duplicate the save is rejected with ErrDuplicateTenant instead of
// persisting. Field-level validation is the caller's job (handlers run the
// Violations checks before calling in).
func (s *TenantService) Save(tenant *models.Tenant) error {
	dup, err := s.IsDuplicate(*tenant)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateTenant
	}
	return s.DB.Save(tenant).Error
}

// DeleteCascading removes a tenant with everything the tenant owns: all of
// the tenant's contracts, and documents that reference only the tenant.
// Documents also tied to a unit are detached from the tenant and kept.
func (s *TenantService) DeleteCascading(tenantID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return err
		}

		var docs []models.Document
		if err := tx.Where("tenant_id = ?", tenantID).Find(&docs).Error; err != nil {
			return err
		}
		for i := range docs {
			if docs[i].UnitID == nil {
				if err := tx.Delete(&models.Document{}, docs[i].ID).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Model(&docs[i]).Update("tenant_id", nil).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Where("tenant_id = ?", tenantID).Delete(&models.Contract{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tenant{}, tenantID).Error
	})
}
