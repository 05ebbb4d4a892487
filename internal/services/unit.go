package services

import (
	"errors"
	"strings"
	"time"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"gorm.io/gorm"
)

// UnitService covers unit CRUD, the owned-address bookkeeping, and the
// vacancy listing. The cascade delete lives in cascade.go.
type UnitService struct {
	DB *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService { return &UnitService{DB: db} }

// FindAll lists units with their address and postal code preloaded,
// optionally filtered by a street/city substring.
func (s *UnitService) FindAll(filter string) ([]models.Unit, error) {
	var units []models.Unit
	q := s.DB.Preload("Address.PostalCode").Preload("Address").
		Joins("JOIN addresses ON addresses.id = units.address_id").
		Order("addresses.street asc, addresses.house_number asc, units.id asc")
	if f := strings.TrimSpace(filter); f != "" {
		like := "%" + strings.ToLower(searchSafe.ReplaceAllString(f, "")) + "%"
		q = q.Joins("JOIN postal_codes ON postal_codes.code = addresses.postal_code_id").
			Where("lower(addresses.street) LIKE ? OR lower(postal_codes.city) LIKE ?", like, like)
	}
	err := q.Find(&units).Error
	return units, err
}

func (s *UnitService) FindByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.DB.Preload("Address.PostalCode").Preload("Address").First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// Save persists a unit together with its owned address. The postal code row
// is created on first use; the address row is created or updated in place.
// Runs in one transaction so a half-created unit never becomes visible.
func (s *UnitService) Save(unit *models.Unit) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		code := unit.Address.PostalCode
		if code.Code == "" {
			code.Code = unit.Address.PostalCodeID
		}
		if code.Code == "" {
			return &IntegrityError{Entity: "address", Reason: "missing postal code reference"}
		}
		stored, err := NewPostalCodeService(tx).FindOrCreate(code)
		if err != nil {
			return err
		}
		unit.Address.PostalCodeID = stored.Code
		unit.Address.PostalCode = *stored
		if err := tx.Save(&unit.Address).Error; err != nil {
			return err
		}
		unit.AddressID = unit.Address.ID
		return tx.Save(unit).Error
	})
}

// FindAvailable lists units with no active contract (no contract at all, or
// only expired ones). A contract counts as active while it is open-ended or
// its end date lies in the future, start date included or not.
func (s *UnitService) FindAvailable() ([]models.Unit, error) {
	now := time.Now()
	var occupied []uint
	if err := s.DB.Model(&models.Contract{}).
		Where("end_date IS NULL OR end_date > ?", now).
		Distinct().Pluck("unit_id", &occupied).Error; err != nil {
		return nil, err
	}
	q := s.DB.Preload("Address.PostalCode").Preload("Address")
	if len(occupied) > 0 {
		q = q.Where("id NOT IN ?", occupied)
	}
	var units []models.Unit
	err := q.Order("id asc").Find(&units).Error
	return units, err
}
