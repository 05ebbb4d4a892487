package models

import "time"

// Contract (Mietvertrag) binds one tenant to one unit for a date range.
// A nil EndDate means the contract is open-ended ("unbefristet"). Ranges are
// half-open [StartDate, EndDate), so a follow-up contract may start on the
// day its predecessor ends.
type Contract struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	TenantID      uint       `gorm:"not null;index" json:"tenant_id"`
	Tenant        *Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	UnitID        uint       `gorm:"not null;index" json:"unit_id"`
	Unit          *Unit      `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	StartDate     time.Time  `gorm:"not null" json:"start_date"`
	EndDate       *time.Time `json:"end_date"` // nil = open-ended
	Rent          float64    `gorm:"not null" json:"rent"`
	Deposit       float64    `gorm:"not null" json:"deposit"`
	OccupantCount int        `gorm:"not null" json:"occupant_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ActiveAt reports whether the contract covers the given point in time.
func (c Contract) ActiveAt(ref time.Time) bool {
	if ref.Before(c.StartDate) {
		return false
	}
	return c.EndDate == nil || ref.Before(*c.EndDate)
}
