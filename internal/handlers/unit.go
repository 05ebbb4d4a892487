package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/projektarbeit/immobilienverwaltung/httpx"
	"github.com/projektarbeit/immobilienverwaltung/internal/models"
	"github.com/projektarbeit/immobilienverwaltung/internal/services"
	"github.com/projektarbeit/immobilienverwaltung/validation"

	"gorm.io/gorm"
)

type UnitHandler struct {
	DB        *gorm.DB
	Units     *services.UnitService
	Contracts *services.ContractService
}

func NewUnitHandler(db *gorm.DB) *UnitHandler {
	return &UnitHandler{DB: db, Units: services.NewUnitService(db), Contracts: services.NewContractService(db)}
}

// List: GET /units?q=&grouped=1
// With grouped=1 the flat list is folded into per-building nodes.
func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.Units.FindAll(r.URL.Query().Get("q"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_units", nil)
		return
	}
	if r.URL.Query().Get("grouped") == "1" {
		nodes := services.GroupUnitsByAddress(units)
		httpx.JSON(w, http.StatusOK, map[string]any{"items": nodes, "total": len(nodes)})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": units, "total": len(units)})
}

// Available: GET /units/available — units without an active contract.
func (h *UnitHandler) Available(w http.ResponseWriter, r *http.Request) {
	units, err := h.Units.FindAvailable()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_units", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": units, "total": len(units)})
}

type unitReq struct {
	Street        *string `json:"street"`
	HouseNumber   *string `json:"house_number"`
	PostalCode    *string `json:"postal_code"`
	City          *string `json:"city"`
	Country       *string `json:"country"`
	TotalArea     *int    `json:"total_area"`
	YearBuilt     *int    `json:"year_built"`
	BathroomCount *int    `json:"bathroom_count"`
	BedroomCount  *int    `json:"bedroom_count"`
	HasBalcony    *bool   `json:"has_balcony"`
	HasTerrace    *bool   `json:"has_terrace"`
	HasGarden     *bool   `json:"has_garden"`
	HasAircon     *bool   `json:"has_aircon"`
	Floor         *string `json:"floor"`
	UnitNumber    *string `json:"unit_number"`
}

func (req unitReq) apply(u *models.Unit) {
	if req.Street != nil {
		u.Address.Street = *req.Street
	}
	if req.HouseNumber != nil {
		u.Address.HouseNumber = *req.HouseNumber
	}
	if req.PostalCode != nil {
		u.Address.PostalCode.Code = *req.PostalCode
		u.Address.PostalCodeID = *req.PostalCode
	}
	if req.City != nil {
		u.Address.PostalCode.City = *req.City
	}
	if req.Country != nil {
		u.Address.PostalCode.Country = *req.Country
	}
	if req.TotalArea != nil {
		u.TotalArea = *req.TotalArea
	}
	if req.YearBuilt != nil {
		u.YearBuilt = *req.YearBuilt
	}
	if req.BathroomCount != nil {
		u.BathroomCount = *req.BathroomCount
	}
	if req.BedroomCount != nil {
		u.BedroomCount = *req.BedroomCount
	}
	if req.HasBalcony != nil {
		u.HasBalcony = *req.HasBalcony
	}
	if req.HasTerrace != nil {
		u.HasTerrace = *req.HasTerrace
	}
	if req.HasGarden != nil {
		u.HasGarden = *req.HasGarden
	}
	if req.HasAircon != nil {
		u.HasAircon = *req.HasAircon
	}
	if req.Floor != nil {
		u.Floor = *req.Floor
	}
	if req.UnitNumber != nil {
		u.UnitNumber = *req.UnitNumber
	}
}

func (req unitReq) validate(u models.Unit) validation.Violations {
	v := validation.Violations{}
	validation.Required("street", u.Address.Street, v)
	validation.Required("house_number", u.Address.HouseNumber, v)
	validation.Required("postal_code", u.Address.PostalCode.Code, v)
	validation.Required("city", u.Address.PostalCode.City, v)
	validation.MinInt("total_area", u.TotalArea, 1, v)
	return v
}

// Create: POST /units — the unit is created together with its address; the
// postal code row is reused when it already exists.
func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req unitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var unit models.Unit
	req.apply(&unit)
	if v := req.validate(unit); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.Units.Save(&unit); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, unit)
}

// Update: POST /units/update?id=
func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	unit, err := h.Units.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var req unitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	req.apply(unit)
	if v := req.validate(*unit); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.Units.Save(unit); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, unit)
}

// Contracts: GET /units/contracts?id= — the unit's occupancy history.
func (h *UnitHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	contracts, err := h.Contracts.FindByUnit(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_contracts", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": contractViews(contracts), "total": len(contracts)})
}

// Delete: POST /units/delete?id= — cascades contracts, readings, documents
// and the owned address; the postal code goes too once orphaned.
func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Units.DeleteUnitCascading(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
