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

type DocumentHandler struct {
	DB        *gorm.DB
	Documents *services.DocumentService
}

func NewDocumentHandler(db *gorm.DB) *DocumentHandler {
	return &DocumentHandler{DB: db, Documents: services.NewDocumentService(db)}
}

// List: GET /documents?unit_id= or ?tenant_id=
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		docs []models.Document
		err  error
	)
	switch {
	case r.URL.Query().Get("unit_id") != "":
		id, ok := uintParam(w, r, "unit_id")
		if !ok {
			return
		}
		docs, err = h.Documents.FindByUnit(id)
	case r.URL.Query().Get("tenant_id") != "":
		id, ok := uintParam(w, r, "tenant_id")
		if !ok {
			return
		}
		docs, err = h.Documents.FindByTenant(id)
	default:
		httpx.JSONError(w, http.StatusBadRequest, "missing_reference", "unit_id or tenant_id required")
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_documents", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": docs, "total": len(docs)})
}

// Create: POST /documents — a record needs a file path and at least one of
// unit_id/tenant_id.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UnitID   *uint  `json:"unit_id"`
		TenantID *uint  `json:"tenant_id"`
		Type     string `json:"type"`
		FilePath string `json:"file_path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("file_path", req.FilePath, v)
	if req.UnitID == nil && req.TenantID == nil {
		v["reference"] = "unit_id or tenant_id required"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	doc := models.Document{UnitID: req.UnitID, TenantID: req.TenantID, Type: req.Type, FilePath: req.FilePath}
	if err := h.Documents.Save(&doc); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, doc)
}

// Delete: POST /documents/delete?id=
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Documents.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
