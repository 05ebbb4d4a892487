package handlers

import (
	"errors"
	"net/http"

	"github.com/projektarbeit/immobilienverwaltung/httpx"
	"github.com/projektarbeit/immobilienverwaltung/internal/services"
	"github.com/projektarbeit/immobilienverwaltung/validation"
)

// writeServiceError maps service-layer errors onto the JSON error envelope:
// validation failures 400, duplicates 409, missing rows 404, integrity
// violations 500. Unknown errors stay opaque.
func writeServiceError(w http.ResponseWriter, err error) {
	var cerr *validation.ContractError
	if errors.As(err, &cerr) {
		details := map[string]any{"fields": cerr.Violations}
		if cerr.UnitID != 0 {
			details["unit_id"] = cerr.UnitID
		}
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", details)
		return
	}
	var ierr *services.IntegrityError
	if errors.As(err, &ierr) {
		httpx.JSONError(w, http.StatusInternalServerError, "integrity_error", ierr.Error())
		return
	}
	switch {
	case errors.Is(err, services.ErrTenantNotFound),
		errors.Is(err, services.ErrUnitNotFound),
		errors.Is(err, services.ErrDocumentNotFound),
		errors.Is(err, services.ErrReadingNotFound):
		httpx.JSONError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrDuplicateTenant):
		httpx.JSONError(w, http.StatusConflict, "duplicate_tenant", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
