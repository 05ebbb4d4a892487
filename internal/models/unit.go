package models

import "time"

// Unit (Wohnung) is a rentable housing unit. It owns its Address (1:1) and
// has at most one currently active contract at any time.
type Unit struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AddressID     uint      `gorm:"not null;uniqueIndex" json:"address_id"`
	Address       Address   `gorm:"foreignKey:AddressID" json:"address"`
	TotalArea     int       `gorm:"not null" json:"total_area"` // square meters
	YearBuilt     int       `gorm:"not null" json:"year_built"`
	BathroomCount int       `gorm:"not null" json:"bathroom_count"`
	BedroomCount  int       `gorm:"not null" json:"bedroom_count"`
	HasBalcony    bool      `json:"has_balcony"`
	HasTerrace    bool      `json:"has_terrace"`
	HasGarden     bool      `json:"has_garden"`
	HasAircon     bool      `json:"has_aircon"`
	Floor         string    `gorm:"size:20" json:"floor"`
	UnitNumber    string    `gorm:"size:20" json:"unit_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
