package models

import "time"

// PostalCode is shared reference data; many addresses may point at one code.
// It is removed when the last referencing address disappears.
type PostalCode struct {
	Code      string    `gorm:"primaryKey;size:10" json:"code"`
	City      string    `gorm:"not null;size:100" json:"city"`
	Country   string    `gorm:"not null;size:2;default:'DE'" json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
