package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory sqlite database. The name must be
// unique per test so shared-cache databases do not leak between tests.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	d, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range []interface{}{
		&models.PostalCode{}, &models.Address{}, &models.Unit{},
		&models.Tenant{}, &models.Contract{}, &models.Document{}, &models.MeterReading{},
	} {
		if err := d.AutoMigrate(m); err != nil {
			t.Fatal(err)
		}
	}
	return d
}

func mustCreateUnit(t *testing.T, d *gorm.DB, street, houseNumber, code, city string) models.Unit {
	t.Helper()
	pc := models.PostalCode{Code: code, City: city, Country: "DE"}
	if err := d.Where("code = ?", code).FirstOrCreate(&pc).Error; err != nil {
		t.Fatal(err)
	}
	addr := models.Address{Street: street, HouseNumber: houseNumber, PostalCodeID: code}
	if err := d.Create(&addr).Error; err != nil {
		t.Fatal(err)
	}
	unit := models.Unit{AddressID: addr.ID, Address: addr, TotalArea: 60}
	if err := d.Create(&unit).Error; err != nil {
		t.Fatal(err)
	}
	return unit
}

func mustCreateTenant(t *testing.T, d *gorm.DB, last, first, phone string) models.Tenant {
	t.Helper()
	tenant := models.Tenant{LastName: last, FirstName: first, Phone: phone}
	if err := d.Create(&tenant).Error; err != nil {
		t.Fatal(err)
	}
	return tenant
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func countRows(t *testing.T, d *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := d.Model(model).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}
