package db

import (
	"testing"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedIdempotent(t *testing.T) {
	d, err := gorm.Open(sqlite.Open("file:seeddb?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.AutoMigrate(&models.PostalCode{}); err != nil {
		t.Fatal(err)
	}
	seed(d)
	seed(d)
	var total int64
	d.Model(&models.PostalCode{}).Count(&total)
	if total < 3 {
		t.Fatalf("expected at least 3 postal codes got %d", total)
	}
	// Ensure baseline entries exist exactly once (idempotency)
	var c1, c2 int64
	d.Model(&models.PostalCode{}).Where("code = ?", "07111").Count(&c1)
	d.Model(&models.PostalCode{}).Where("code = ?", "10115").Count(&c2)
	if c1 != 1 || c2 != 1 {
		t.Fatalf("baseline postal codes duplicated or missing: 07111=%d 10115=%d", c1, c2)
	}
}

func TestNormalizeDSN(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/immo":      "postgres://u:p@localhost:5432/immo",
		"  host=localhost user=immo dbname=immo ": "host=localhost user=immo dbname=immo sslmode=disable",
		"host=localhost sslmode=require":          "host=localhost sslmode=require",
		"":                                        "",
	}
	for in, want := range cases {
		if got := NormalizeDSN(in); got != want {
			t.Fatalf("NormalizeDSN(%q) = %q, want %q", in, got, want)
		}
	}
}
