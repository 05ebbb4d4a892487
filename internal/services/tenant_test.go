package services

import (
	"errors"
	"testing"

	"github.com/projektarbeit/immobilienverwaltung/internal/models"
)

func TestTenantSaveRejectsDuplicate(t *testing.T) {
	d := setupTestDB(t, uniqueName("tenant_dup"))
	svc := NewTenantService(d)

	first := models.Tenant{LastName: "Schmidt", FirstName: "Anna", Phone: "0151 1234567"}
	if err := svc.Save(&first); err != nil {
		t.Fatal(err)
	}

	clone := models.Tenant{LastName: "schmidt", FirstName: "ANNA", Phone: "0151 1234567"}
	if err := svc.Save(&clone); !errors.Is(err, ErrDuplicateTenant) {
		t.Fatalf("expected ErrDuplicateTenant, got %v", err)
	}
	if n := countRows(t, d, &models.Tenant{}); n != 1 {
		t.Fatalf("duplicate was persisted, %d rows", n)
	}
}

func TestTenantSaveAllowsEditingOwnRecord(t *testing.T) {
	d := setupTestDB(t, uniqueName("tenant_edit"))
	svc := NewTenantService(d)

	tenant := models.Tenant{LastName: "Schmidt", FirstName: "Anna", Phone: "0151 1234567"}
	if err := svc.Save(&tenant); err != nil {
		t.Fatal(err)
	}

	tenant.Email = "anna@example.org"
	if err := svc.Save(&tenant); err != nil {
		t.Fatalf("editing an existing tenant must not trip the duplicate guard: %v", err)
	}
}

func TestTenantFindAllFilter(t *testing.T) {
	d := setupTestDB(t, uniqueName("tenant_filter"))
	svc := NewTenantService(d)

	mustCreateTenant(t, d, "Schmidt", "Anna", "0151 1234567")
	mustCreateTenant(t, d, "Meyer", "Jonas", "0152 7654321")

	got, err := svc.FindAll("schmi")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].LastName != "Schmidt" {
		t.Fatalf("filter returned %+v", got)
	}

	all, err := svc.FindAll("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 tenants, got %d", len(all))
	}
	// Ordered by last name.
	if all[0].LastName != "Meyer" {
		t.Fatalf("expected Meyer first, got %s", all[0].LastName)
	}
}

func TestTenantDeleteCascading(t *testing.T) {
	d := setupTestDB(t, uniqueName("tenant_cascade"))
	svc := NewTenantService(d)

	tenant := mustCreateTenant(t, d, "Schmidt", "Anna", "0151 1234567")
	unit := mustCreateUnit(t, d, "Hauptstrasse", "1", "07111", "Jena")

	contract := models.Contract{TenantID: tenant.ID, UnitID: unit.ID, StartDate: day(2024, 1, 1), Rent: 700, Deposit: 1400, OccupantCount: 1}
	if err := d.Create(&contract).Error; err != nil {
		t.Fatal(err)
	}
	ownDoc := models.Document{TenantID: &tenant.ID, Type: "schufa", FilePath: "/docs/schufa.pdf"}
	if err := d.Create(&ownDoc).Error; err != nil {
		t.Fatal(err)
	}
	sharedDoc := models.Document{TenantID: &tenant.ID, UnitID: &unit.ID, Type: "vertrag", FilePath: "/docs/vertrag.pdf"}
	if err := d.Create(&sharedDoc).Error; err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteCascading(tenant.ID); err != nil {
		t.Fatal(err)
	}

	if n := countRows(t, d, &models.Tenant{}); n != 0 {
		t.Fatalf("tenant survived cascade: %d rows", n)
	}
	if n := countRows(t, d, &models.Contract{}); n != 0 {
		t.Fatalf("contracts survived cascade: %d rows", n)
	}

	// The unit-linked document survives without the tenant reference.
	var docs []models.Document
	if err := d.Find(&docs).Error; err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected only the unit document to survive, got %d", len(docs))
	}
	if docs[0].TenantID != nil {
		t.Fatalf("surviving document still references the deleted tenant")
	}
	// The unit itself is untouched.
	if n := countRows(t, d, &models.Unit{}); n != 1 {
		t.Fatalf("unit must survive a tenant cascade, got %d rows", n)
	}
}

func TestTenantDeleteNotFound(t *testing.T) {
	d := setupTestDB(t, uniqueName("tenant_missing"))
	svc := NewTenantService(d)
	if err := svc.DeleteCascading(99); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
}
