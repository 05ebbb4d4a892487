package services

import (
	"errors"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"gorm.io/gorm"
)

// DeleteUnitCascading removes a unit together with everything that hangs off
// it, in dependency order: documents (tenantless ones deleted, tenant-linked
// ones detached), meter readings, contracts (active and historical), the
// unit itself, its owned address, and finally the postal code when no other
// address references it. The whole sequence is one transaction; it never
// partially completes from the caller's point of view.
func (s *UnitService) DeleteUnitCascading(unitID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		if err := tx.First(&unit, unitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnitNotFound
			}
			return err
		}

		var docs []models.Document
		if err := tx.Where("unit_id = ?", unitID).Find(&docs).Error; err != nil {
			return err
		}
		for i := range docs {
			if docs[i].TenantID == nil {
				if err := tx.Delete(&models.Document{}, docs[i].ID).Error; err != nil {
					return err
				}
			} else {
				// Still belongs to a tenant; keep it without the unit link.
				if err := tx.Model(&docs[i]).Update("unit_id", nil).Error; err != nil {
					return err
				}
			}
		}

		// Meter readings are history of the physical unit, nothing owns them
		// once it is gone.
		if err := tx.Where("unit_id = ?", unitID).Delete(&models.MeterReading{}).Error; err != nil {
			return err
		}

		if err := tx.Where("unit_id = ?", unitID).Delete(&models.Contract{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Unit{}, unitID).Error; err != nil {
			return err
		}

		if unit.AddressID == 0 {
			return &IntegrityError{Entity: "unit", Reason: "missing address reference"}
		}
		var addr models.Address
		if err := tx.First(&addr, unit.AddressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &IntegrityError{Entity: "address", Reason: "address row missing"}
			}
			return err
		}
		if addr.PostalCodeID == "" {
			return &IntegrityError{Entity: "address", Reason: "missing postal code reference"}
		}
		if err := tx.Delete(&models.Address{}, addr.ID).Error; err != nil {
			return err
		}

		return NewPostalCodeService(tx).DeleteIfUnused(addr.PostalCodeID)
	})
}
