package handlers

import (
	"net/http"

	"github.com/projektarbeit/immobilienverwaltung/httpx"
	"github.com/projektarbeit/immobilienverwaltung/internal/services"

	"gorm.io/gorm"
)

type PostalCodeHandler struct {
	DB    *gorm.DB
	Codes *services.PostalCodeService
}

func NewPostalCodeHandler(db *gorm.DB) *PostalCodeHandler {
	return &PostalCodeHandler{DB: db, Codes: services.NewPostalCodeService(db)}
}

// List: GET /postal-codes — reference data for unit forms.
func (h *PostalCodeHandler) List(w http.ResponseWriter, r *http.Request) {
	codes, err := h.Codes.FindAll()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_postal_codes", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": codes, "total": len(codes)})
}
