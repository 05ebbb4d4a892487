package models

import "time"

// Document (Dokument) is a stored file record tied to a unit, a tenant, or
// both; at least one reference must be set. Storage itself lives outside
// this service, only the path is tracked.
type Document struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UnitID    *uint     `gorm:"index" json:"unit_id"`
	TenantID  *uint     `gorm:"index" json:"tenant_id"`
	Type      string    `json:"type"`
	FilePath  string    `gorm:"not null" json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
