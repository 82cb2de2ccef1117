package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/labforge/labops/internal/equipment/domain"
	"github.com/labforge/labops/internal/equipment/usecase/command"
	"github.com/labforge/labops/internal/equipment/usecase/query"
	"github.com/labforge/labops/pkg/health"
	"github.com/labforge/labops/pkg/logger"
)

// EquipmentHandler handles HTTP requests for equipment
type EquipmentHandler struct {
	createHandler       *command.CreateDeviceHandler
	updateHandler       *command.UpdateDeviceHandler
	deleteHandler       *command.DeleteDeviceHandler
	maintenanceHandler  *command.RecordMaintenanceHandler
	checkHandler        *command.MaintenanceCheckHandler
	addSupplyHandler    *command.AddSupplyHandler
	removeSupplyHandler *command.RemoveSupplyHandler
	getHandler          *query.GetDeviceHandler
	listHandler         *query.ListDevicesHandler
	healthHandler       *query.DeviceHealthHandler
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(repo domain.EquipmentRepository, alerter command.MaintenanceAlerter, stock query.StockProvider) *EquipmentHandler {
	return &EquipmentHandler{
		createHandler:       command.NewCreateDeviceHandler(repo),
		updateHandler:       command.NewUpdateDeviceHandler(repo),
		deleteHandler:       command.NewDeleteDeviceHandler(repo),
		maintenanceHandler:  command.NewRecordMaintenanceHandler(repo),
		checkHandler:        command.NewMaintenanceCheckHandler(repo, alerter),
		addSupplyHandler:    command.NewAddSupplyHandler(repo),
		removeSupplyHandler: command.NewRemoveSupplyHandler(repo),
		getHandler:          query.NewGetDeviceHandler(repo),
		listHandler:         query.NewListDevicesHandler(repo),
		healthHandler:       query.NewDeviceHealthHandler(repo, stock, health.DefaultRunwayThresholds()),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateDevice handles POST /api/equipment
func (h *EquipmentHandler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             string `json:"name"`
		Location         string `json:"location"`
		LastMaintained   string `json:"last_maintained"`
		MaintenanceDays  int    `json:"maintenance_days"`
		ThresholdPercent int    `json:"threshold_percent"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.MaintenanceDays == 0 {
		req.MaintenanceDays = 90
	}
	if req.ThresholdPercent == 0 {
		req.ThresholdPercent = 20
	}

	device, err := h.createHandler.Handle(command.CreateDeviceCommand{
		Name:             req.Name,
		Location:         req.Location,
		LastMaintained:   req.LastMaintained,
		MaintenanceDays:  req.MaintenanceDays,
		ThresholdPercent: req.ThresholdPercent,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create device")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Device created successfully",
		Data:    device,
	})
}

// GetDevice handles GET /api/equipment/{id}
func (h *EquipmentHandler) GetDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	device, err := h.getHandler.Handle(query.GetDeviceQuery{DeviceID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Device not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    device,
	})
}

// ListDevices handles GET /api/equipment
func (h *EquipmentHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	devices, err := h.listHandler.Handle(query.ListDevicesQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list devices")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list devices",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    devices,
	})
}

// UpdateDevice handles PUT /api/equipment/{id}
func (h *EquipmentHandler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name             string `json:"name"`
		Location         string `json:"location"`
		MaintenanceDays  int    `json:"maintenance_days"`
		ThresholdPercent int    `json:"threshold_percent"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	device, err := h.updateHandler.Handle(command.UpdateDeviceCommand{
		DeviceID:         id,
		Name:             req.Name,
		Location:         req.Location,
		MaintenanceDays:  req.MaintenanceDays,
		ThresholdPercent: req.ThresholdPercent,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update device")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Device updated successfully",
		Data:    device,
	})
}

// DeleteDevice handles DELETE /api/equipment/{id}
func (h *EquipmentHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteDeviceCommand{DeviceID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete device")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Device deleted successfully",
	})
}

// RecordMaintenance handles POST /api/equipment/{id}/maintenance
func (h *EquipmentHandler) RecordMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Date string `json:"date"`
	}
	// An empty body means "maintained today".
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.maintenanceHandler.Handle(command.RecordMaintenanceCommand{DeviceID: id, Date: req.Date}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to record maintenance")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Maintenance recorded successfully",
	})
}

// MaintenanceCheck handles POST /api/equipment/{id}/maintenance-check
func (h *EquipmentHandler) MaintenanceCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.checkHandler.Handle(r.Context(), command.MaintenanceCheckCommand{DeviceID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to run maintenance check")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// DeviceHealth handles GET /api/equipment/{id}/health
func (h *EquipmentHandler) DeviceHealth(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	report, err := h.healthHandler.Handle(r.Context(), query.DeviceHealthQuery{DeviceID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to build device health report")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    report,
	})
}

// AddSupply handles POST /api/equipment/{id}/supplies
func (h *EquipmentHandler) AddSupply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		InventoryItemID   uint    `json:"inventory_item_id"`
		BurnPerWeek       float64 `json:"burn_per_week"`
		MinQty            float64 `json:"min_qty"`
		AccountOverride   string  `json:"account_override"`
		ChargeToProjectID uint    `json:"charge_to_project_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	supply, err := h.addSupplyHandler.Handle(command.AddSupplyCommand{
		DeviceID:          id,
		InventoryItemID:   req.InventoryItemID,
		BurnPerWeek:       req.BurnPerWeek,
		MinQty:            req.MinQty,
		AccountOverride:   req.AccountOverride,
		ChargeToProjectID: req.ChargeToProjectID,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to add supply")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Supply added successfully",
		Data:    supply,
	})
}

// RemoveSupply handles DELETE /api/equipment/supplies/{supplyId}
func (h *EquipmentHandler) RemoveSupply(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	supplyID, err := strconv.ParseUint(vars["supplyId"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid supply ID",
		})
		return
	}

	if err := h.removeSupplyHandler.Handle(command.RemoveSupplyCommand{SupplyID: uint(supplyID)}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to remove supply")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supply removed successfully",
	})
}

// RegisterRoutes registers all equipment routes
func (h *EquipmentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/equipment", h.ListDevices).Methods("GET")
	router.HandleFunc("/api/equipment", h.CreateDevice).Methods("POST")
	router.HandleFunc("/api/equipment/supplies/{supplyId}", h.RemoveSupply).Methods("DELETE")
	router.HandleFunc("/api/equipment/{id}", h.GetDevice).Methods("GET")
	router.HandleFunc("/api/equipment/{id}", h.UpdateDevice).Methods("PUT")
	router.HandleFunc("/api/equipment/{id}", h.DeleteDevice).Methods("DELETE")
	router.HandleFunc("/api/equipment/{id}/health", h.DeviceHealth).Methods("GET")
	router.HandleFunc("/api/equipment/{id}/maintenance", h.RecordMaintenance).Methods("POST")
	router.HandleFunc("/api/equipment/{id}/maintenance-check", h.MaintenanceCheck).Methods("POST")
	router.HandleFunc("/api/equipment/{id}/supplies", h.AddSupply).Methods("POST")
}

// RegisterHealthCheck registers health check endpoint
func (h *EquipmentHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Equipment service is healthy",
		})
	}).Methods("GET")
}

// pathID extracts the {id} path variable, responding with 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid device ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
