package services

import (
	"errors"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"gorm.io/gorm"
)

// DocumentService tracks file records. Upload and storage happen outside
// this service; only references and paths are managed here.
type DocumentService struct {
	DB *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService { return &DocumentService{DB: db} }

func (s *DocumentService) FindByUnit(unitID uint) ([]models.Document, error) {
	var docs []models.Document
	err := s.DB.Where("unit_id = ?", unitID).Order("id asc").Find(&docs).Error
	return docs, err
}

func (s *DocumentService) FindByTenant(tenantID uint) ([]models.Document, error) {
	var docs []models.Document
	err := s.DB.Where("tenant_id = ?", tenantID).Order("id asc").Find(&docs).Error
	return docs, err
}

// Save persists a document record. Referenced unit/tenant rows must exist;
// field-level checks (path present, at least one reference) are run by the
// handler's Violations pass before calling in.
func (s *DocumentService) Save(doc *models.Document) error {
	if doc.UnitID != nil {
		var unit models.Unit
		if err := s.DB.First(&unit, *doc.UnitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnitNotFound
			}
			return err
		}
	}
	if doc.TenantID != nil {
		var tenant models.Tenant
		if err := s.DB.First(&tenant, *doc.TenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return err
		}
	}
	return s.DB.Save(doc).Error
}

func (s *DocumentService) Delete(id uint) error {
	res := s.DB.Delete(&models.Document{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
