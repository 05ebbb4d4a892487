package services

import (
	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"gorm.io/gorm"
)

// PostalCodeService manages the shared postal-code reference rows.
type PostalCodeService struct {
	DB *gorm.DB
}

func NewPostalCodeService(db *gorm.DB) *PostalCodeService { return &PostalCodeService{DB: db} }

// FindAll lists the stored postal codes ordered by code, for use as
// reference data in unit forms.
func (s *PostalCodeService) FindAll() ([]models.PostalCode, error) {
	var codes []models.PostalCode
	err := s.DB.Order("code asc").Find(&codes).Error
	return codes, err
}

// FindOrCreate returns the stored row for the code, creating it on first use.
func (s *PostalCodeService) FindOrCreate(code models.PostalCode) (*models.PostalCode, error) {
	if err := s.DB.Where("code = ?", code.Code).FirstOrCreate(&code, code).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

// DeleteIfUnused removes the postal code when no address references it
// anymore; otherwise it is left in place.
func (s *PostalCodeService) DeleteIfUnused(code string) error {
	count, err := s.CountAddresses(code)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.DB.Where("code = ?", code).Delete(&models.PostalCode{}).Error
}

// CountAddresses reports how many addresses reference the code.
func (s *PostalCodeService) CountAddresses(code string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Address{}).Where("postal_code_id = ?", code).Count(&count).Error
	return count, err
}
