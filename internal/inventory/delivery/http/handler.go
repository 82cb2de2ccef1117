package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/labforge/labops/internal/inventory/domain"
	"github.com/labforge/labops/internal/inventory/usecase/command"
	"github.com/labforge/labops/internal/inventory/usecase/query"
	"github.com/labforge/labops/pkg/logger"
)

// InventoryHandler handles HTTP requests for inventory
type InventoryHandler struct {
	createHandler     *command.CreateItemHandler
	deleteHandler     *command.DeleteItemHandler
	stockCheckHandler *command.StockCheckHandler
	getHandler        *query.GetItemHandler
	listHandler       *query.ListItemsHandler
	reorderHandler    *query.ReorderListHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(repo domain.InventoryRepository, alerter command.StockAlerter) *InventoryHandler {
	return &InventoryHandler{
		createHandler:     command.NewCreateItemHandler(repo),
		deleteHandler:     command.NewDeleteItemHandler(repo),
		stockCheckHandler: command.NewStockCheckHandler(repo, alerter),
		getHandler:        query.NewGetItemHandler(repo),
		listHandler:       query.NewListItemsHandler(repo),
		reorderHandler:    query.NewReorderListHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateItem handles POST /api/inventory
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductName     string          `json:"product_name"`
		CatalogNumber   string          `json:"catalog_number"`
		CurrentQuantity float64         `json:"current_quantity"`
		MinQuantity     float64         `json:"min_quantity"`
		Price           decimal.Decimal `json:"price"`
		Currency        string          `json:"currency"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.createHandler.Handle(command.CreateItemCommand{
		ProductName:     req.ProductName,
		CatalogNumber:   req.CatalogNumber,
		CurrentQuantity: req.CurrentQuantity,
		MinQuantity:     req.MinQuantity,
		Price:           req.Price,
		Currency:        req.Currency,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create inventory item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Inventory item created successfully",
		Data:    item,
	})
}

// GetItem handles GET /api/inventory/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	item, err := h.getHandler.Handle(query.GetItemQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Inventory item not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// ListItems handles GET /api/inventory
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listHandler.Handle(query.ListItemsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list inventory items")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list inventory items",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// ListReorder handles GET /api/inventory/reorder
func (h *InventoryHandler) ListReorder(w http.ResponseWriter, r *http.Request) {
	items, err := h.reorderHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list reorder items")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list reorder items",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// StockCheck handles PATCH /api/inventory/{id}/stock
func (h *InventoryHandler) StockCheck(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	var req struct {
		Quantity    float64 `json:"quantity"`
		BurnPerWeek float64 `json:"burn_per_week"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.stockCheckHandler.Handle(r.Context(), command.StockCheckCommand{
		ItemID:      uint(id),
		NewQuantity: req.Quantity,
		BurnPerWeek: req.BurnPerWeek,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to run stock check")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
		Data: map[string]interface{}{
			"item":            result.Item,
			"weeks_remaining": result.WeeksRemaining,
			"alert_severity":  result.Severity,
		},
	})
}

// DeleteItem handles DELETE /api/inventory/{id}
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteItemCommand{ID: uint(id)}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete inventory item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory item deleted successfully",
	})
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", h.ListItems).Methods("GET")
	router.HandleFunc("/api/inventory", h.CreateItem).Methods("POST")
	router.HandleFunc("/api/inventory/reorder", h.ListReorder).Methods("GET")
	router.HandleFunc("/api/inventory/{id}", h.GetItem).Methods("GET")
	router.HandleFunc("/api/inventory/{id}", h.DeleteItem).Methods("DELETE")
	router.HandleFunc("/api/inventory/{id}/stock", h.StockCheck).Methods("PATCH")
}

// RegisterHealthCheck registers health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
