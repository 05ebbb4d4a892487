package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/projektarbeit/immobilienverwaltung/httpx"
	"github.com/projektarbeit/immobilienverwaltung/internal/models"
	"github.com/projektarbeit/immobilienverwaltung/internal/services"
	"github.com/projektarbeit/immobilienverwaltung/validation"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type TenantHandler struct {
	DB        *gorm.DB
	Tenants   *services.TenantService
	Contracts *services.ContractService
}

func NewTenantHandler(db *gorm.DB) *TenantHandler {
	return &TenantHandler{DB: db, Tenants: services.NewTenantService(db), Contracts: services.NewContractService(db)}
}

// List: GET /tenants?q=
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.Tenants.FindAll(r.URL.Query().Get("q"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_tenants", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": tenants, "total": len(tenants)})
}

type tenantReq struct {
	LastName      *string  `json:"last_name"`
	FirstName     *string  `json:"first_name"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	MonthlyIncome *float64 `json:"monthly_income"`
}

func (req tenantReq) apply(t *models.Tenant) {
	if req.LastName != nil {
		t.LastName = *req.LastName
	}
	if req.FirstName != nil {
		t.FirstName = *req.FirstName
	}
	if req.Phone != nil {
		t.Phone = *req.Phone
	}
	if req.Email != nil {
		t.Email = *req.Email
	}
	if req.MonthlyIncome != nil {
		t.MonthlyIncome = *req.MonthlyIncome
	}
}

// Create: POST /tenants
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tenantReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var tenant models.Tenant
	req.apply(&tenant)
	v := validation.Violations{}
	validation.Required("last_name", tenant.LastName, v)
	validation.Required("first_name", tenant.FirstName, v)
	validation.Required("phone", tenant.Phone, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.Tenants.Save(&tenant); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, tenant)
}

// Update: POST /tenants/update?id=
func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	tenant, err := h.Tenants.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var req tenantReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	req.apply(tenant)
	v := validation.Violations{}
	validation.Required("last_name", tenant.LastName, v)
	validation.Required("first_name", tenant.FirstName, v)
	validation.Required("phone", tenant.Phone, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.Tenants.Save(tenant); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, tenant)
}

// Delete: POST /tenants/delete?id= — cascades the tenant's contracts and
// tenant-only documents.
func (h *TenantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Tenants.DeleteCascading(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// Check: POST /tenants/check — duplicate probe without persisting.
func (h *TenantHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID uint `json:"id"`
		tenantReq
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	candidate := models.Tenant{ID: req.ID}
	req.apply(&candidate)
	dup, err := h.Tenants.IsDuplicate(candidate)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_check_tenant", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"duplicate": dup, "name": candidate.FullName()})
}

type assignReq struct {
	TenantID uint   `json:"tenant_id"`
	UnitIDs  []uint `json:"unit_ids"`
	Terms    struct {
		StartDate     string  `json:"start_date"`
		EndDate       string  `json:"end_date"`
		Rent          float64 `json:"rent"`
		Deposit       float64 `json:"deposit"`
		OccupantCount int     `json:"occupant_count"`
	} `json:"terms"`
}

// Assign: POST /tenants/assign — reconciles the tenant's contract set with
// the desired unit set under shared terms.
func (h *TenantHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.TenantID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"tenant_id": "required"})
		return
	}
	terms := services.SharedTerms{
		Rent:          req.Terms.Rent,
		Deposit:       req.Terms.Deposit,
		OccupantCount: req.Terms.OccupantCount,
	}
	if req.Terms.StartDate != "" {
		start, err := time.Parse(dateLayout, req.Terms.StartDate)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"start_date": "invalid_date"})
			return
		}
		terms.StartDate = start
	}
	if req.Terms.EndDate != "" {
		end, err := time.Parse(dateLayout, req.Terms.EndDate)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"end_date": "invalid_date"})
			return
		}
		terms.EndDate = &end
	}
	summary, err := h.Contracts.ReconcileTenantUnits(req.TenantID, req.UnitIDs, terms)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

// Contracts: GET /tenants/contracts?id=
func (h *TenantHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	contracts, err := h.Contracts.FindByTenant(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_contracts", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": contractViews(contracts), "total": len(contracts)})
}

type contractView struct {
	models.Contract
	Active bool `json:"active"`
}

func contractViews(contracts []models.Contract) []contractView {
	now := time.Now()
	views := make([]contractView, len(contracts))
	for i, c := range contracts {
		views[i] = contractView{Contract: c, Active: c.ActiveAt(now)}
	}
	return views
}

func idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		idStr = r.FormValue("id")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return uint(id), true
}
