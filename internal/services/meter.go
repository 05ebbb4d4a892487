package services

import (
	"errors"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"gorm.io/gorm"
)

// MeterReadingService manages dated utility-meter values per unit.
type MeterReadingService struct {
	DB *gorm.DB
}

func NewMeterReadingService(db *gorm.DB) *MeterReadingService { return &MeterReadingService{DB: db} }

func (s *MeterReadingService) FindByUnit(unitID uint) ([]models.MeterReading, error) {
	var readings []models.MeterReading
	err := s.DB.Where("unit_id = ?", unitID).Order("reading_date asc, id asc").Find(&readings).Error
	return readings, err
}

// Save persists a reading; the referenced unit must exist.
func (s *MeterReadingService) Save(reading *models.MeterReading) error {
	var unit models.Unit
	if err := s.DB.First(&unit, reading.UnitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnitNotFound
		}
		return err
	}
	return s.DB.Save(reading).Error
}

func (s *MeterReadingService) Delete(id uint) error {
	res := s.DB.Delete(&models.MeterReading{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReadingNotFound
	}
	return nil
}
