package models

import "time"

// Tenant (Mieter) rents zero or more units; each rented unit is tracked by
// exactly one Contract.
type Tenant struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	LastName      string    `gorm:"not null;size:100;index" json:"last_name"`
	FirstName     string    `gorm:"not null;size:100" json:"first_name"`
	Phone         string    `gorm:"not null;size:20" json:"phone"` // can start with 0 or +
	Email         string    `json:"email"`
	MonthlyIncome float64   `json:"monthly_income"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FullName is used in listings.
func (t Tenant) FullName() string { return t.FirstName + " " + t.LastName }
