package models

import "time"

// MeterReading (Zaehlerstand) is a dated utility-meter value tied to the
// physical unit. It has no owner besides the unit and is deleted with it.
type MeterReading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UnitID      uint      `gorm:"not null;index" json:"unit_id"`
	Unit        *Unit     `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	MeterName   string    `gorm:"not null;size:100" json:"meter_name"`
	ReadingDate time.Time `gorm:"not null" json:"reading_date"`
	Value       float64   `gorm:"not null" json:"value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
