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

type MeterHandler struct {
	DB       *gorm.DB
	Readings *services.MeterReadingService
}

func NewMeterHandler(db *gorm.DB) *MeterHandler {
	return &MeterHandler{DB: db, Readings: services.NewMeterReadingService(db)}
}

// List: GET /meters?unit_id= — readings ordered by date.
func (h *MeterHandler) List(w http.ResponseWriter, r *http.Request) {
	unitID, ok := uintParam(w, r, "unit_id")
	if !ok {
		return
	}
	readings, err := h.Readings.FindByUnit(unitID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_readings", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": readings, "total": len(readings)})
}

// Create: POST /meters
func (h *MeterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UnitID      uint    `json:"unit_id"`
		MeterName   string  `json:"meter_name"`
		ReadingDate string  `json:"reading_date"`
		Value       float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("meter_name", req.MeterName, v)
	validation.Required("reading_date", req.ReadingDate, v)
	validation.PositiveFloat("value", req.Value, v)
	if req.UnitID == 0 {
		v["unit_id"] = "required"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	date, err := time.Parse(dateLayout, req.ReadingDate)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"reading_date": "invalid_date"})
		return
	}
	reading := models.MeterReading{UnitID: req.UnitID, MeterName: req.MeterName, ReadingDate: date, Value: req.Value}
	if err := h.Readings.Save(&reading); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, reading)
}

// Delete: POST /meters/delete?id=
func (h *MeterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Readings.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func uintParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	val, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || val <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_"+name, nil)
		return 0, false
	}
	return uint(val), true
}
