package http

import (
	"net/http"

	"care-platform-api/internal/delivery/http/handler"
	"care-platform-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	slotHandler     *handler.SlotHandler
	providerHandler *handler.ProviderHandler
	trackingHandler *handler.TrackingHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	slotHandler *handler.SlotHandler,
	providerHandler *handler.ProviderHandler,
	trackingHandler *handler.TrackingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		slotHandler:     slotHandler,
		providerHandler: providerHandler,
		trackingHandler: trackingHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Slot browsing (public)
	api.HandleFunc("/slots", r.slotHandler.ListSlots).Methods(http.MethodGet)
	api.HandleFunc("/slots/{id}", r.slotHandler.GetSlot).Methods(http.MethodGet)

	// Provider capacity (public)
	api.HandleFunc("/providers/{id}/capacity", r.providerHandler.GetCapacity).Methods(http.MethodGet)

	// Tracking lookup (public). Creation is open to the order services,
	// which call it server-to-server; it is idempotent either way.
	api.HandleFunc("/tracking", r.trackingHandler.GetTracking).Methods(http.MethodGet)
	api.HandleFunc("/tracking", r.trackingHandler.CreateTracking).Methods(http.MethodPost)

	// Slot management (protected - admin only)
	slots := api.PathPrefix("/slots").Subrouter()
	slots.Use(r.authMiddleware.Authenticate)
	slots.Use(middleware.RequireAdmin)
	slots.HandleFunc("/generate", r.slotHandler.GenerateSlots).Methods(http.MethodPost)
	slots.HandleFunc("/{id}", r.slotHandler.UpdateSlot).Methods(http.MethodPut)
	slots.HandleFunc("/{id}", r.slotHandler.DeleteSlot).Methods(http.MethodDelete)

	// Tracking management (protected - admin, technicians and couriers may
	// push status updates)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	adminOnly := admin.NewRoute().Subrouter()
	adminOnly.Use(middleware.RequireAdmin)
	adminOnly.HandleFunc("/tracking", r.trackingHandler.ListTrackings).Methods(http.MethodGet)
	adminOnly.HandleFunc("/tracking/{id}", r.trackingHandler.GetTrackingAdmin).Methods(http.MethodGet)

	staff := admin.NewRoute().Subrouter()
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/tracking/{id}", r.trackingHandler.UpdateTracking).Methods(http.MethodPatch)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
