package server

import (
	"log"
	"net/http"
	"time"

	"github.com/projektarbeit/immobilienverwaltung/httpx"
	"github.com/projektarbeit/immobilienverwaltung/internal/handlers"

	"gorm.io/gorm"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB) *App {
	app := &App{mux: http.NewServeMux(), db: db}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withLogging(withRecover(a.mux)).ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	th := handlers.NewTenantHandler(a.db)
	uh := handlers.NewUnitHandler(a.db)
	mh := handlers.NewMeterHandler(a.db)
	dh := handlers.NewDocumentHandler(a.db)
	pch := handlers.NewPostalCodeHandler(a.db)

	a.mux.HandleFunc("GET /health", a.health)
	a.mux.HandleFunc("GET /healthz", a.health)

	// Tenants
	a.mux.HandleFunc("GET /tenants", th.List)
	a.mux.HandleFunc("POST /tenants", th.Create)
	a.mux.HandleFunc("POST /tenants/update", th.Update)
	a.mux.HandleFunc("POST /tenants/delete", th.Delete)
	a.mux.HandleFunc("POST /tenants/check", th.Check)
	a.mux.HandleFunc("POST /tenants/assign", th.Assign)
	a.mux.HandleFunc("GET /tenants/contracts", th.ListContracts)

	// Units
	a.mux.HandleFunc("GET /units", uh.List)
	a.mux.HandleFunc("GET /units/available", uh.Available)
	a.mux.HandleFunc("GET /units/contracts", uh.ListContracts)
	a.mux.HandleFunc("POST /units", uh.Create)
	a.mux.HandleFunc("POST /units/update", uh.Update)
	a.mux.HandleFunc("POST /units/delete", uh.Delete)

	// Meter readings
	a.mux.HandleFunc("GET /meters", mh.List)
	a.mux.HandleFunc("POST /meters", mh.Create)
	a.mux.HandleFunc("POST /meters/delete", mh.Delete)

	// Reference data
	a.mux.HandleFunc("GET /postal-codes", pch.List)

	// Documents
	a.mux.HandleFunc("GET /documents", dh.List)
	a.mux.HandleFunc("POST /documents", dh.Create)
	a.mux.HandleFunc("POST /documents/delete", dh.Delete)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if sqlDB, err := a.db.DB(); err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	httpx.JSON(w, code, map[string]string{"status": status})
}

// withLogging adds request logging middleware.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRecover turns handler panics into a 500 instead of killing the server.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
