package models

import "time"

// Address is owned by exactly one Unit (never the reverse). The postal code
// is a shared reference, modeled as an explicit FK onto PostalCode.Code.
type Address struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Street       string     `gorm:"not null;size:100" json:"street"`
	HouseNumber  string     `gorm:"not null;size:6" json:"house_number"` // string, e.g. "4b"
	PostalCodeID string     `gorm:"not null;size:10;index" json:"postal_code_id"`
	PostalCode   PostalCode `gorm:"foreignKey:PostalCodeID;references:Code" json:"postal_code"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
