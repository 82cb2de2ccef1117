package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/labforge/labops/internal/funding/usecase/command"
	"github.com/labforge/labops/internal/funding/usecase/query"
	"github.com/labforge/labops/pkg/logger"
)

// FundingHandler handles HTTP requests for funding allocations using CQRS pattern
type FundingHandler struct {
	// Command handlers
	createHandler  *command.CreateAllocationHandler
	updateHandler  *command.UpdateAllocationHandler
	spendHandler   *command.RecordSpendHandler
	balanceHandler *command.BalanceCheckHandler

	// Query handlers
	getHandler    *query.GetAllocationHandler
	listHandler   *query.ListAllocationsHandler
	atRiskHandler *query.AtRiskHandler
}

// NewFundingHandlerWithDI creates a new funding handler using dependency injection
func NewFundingHandlerWithDI(
	createHandler *command.CreateAllocationHandler,
	updateHandler *command.UpdateAllocationHandler,
	spendHandler *command.RecordSpendHandler,
	balanceHandler *command.BalanceCheckHandler,
	getHandler *query.GetAllocationHandler,
	listHandler *query.ListAllocationsHandler,
	atRiskHandler *query.AtRiskHandler,
) *FundingHandler {
	return &FundingHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		spendHandler:   spendHandler,
		balanceHandler: balanceHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		atRiskHandler:  atRiskHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateAllocation handles POST /api/funding
func (h *FundingHandler) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GrantName       string          `json:"grant_name"`
		FundingSource   string          `json:"funding_source"`
		AllocatedAmount decimal.Decimal `json:"allocated_amount"`
		Currency        string          `json:"currency"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	allocation, err := h.createHandler.Handle(command.CreateAllocationCommand{
		GrantName:       req.GrantName,
		FundingSource:   req.FundingSource,
		AllocatedAmount: req.AllocatedAmount,
		Currency:        req.Currency,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create allocation")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Allocation created successfully",
		Data:    allocation,
	})
}

// GetAllocation handles GET /api/funding/{id}
func (h *FundingHandler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	allocation, err := h.getHandler.Handle(query.GetAllocationQuery{AllocationID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Allocation not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    allocation,
	})
}

// ListAllocations handles GET /api/funding
func (h *FundingHandler) ListAllocations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	allocations, err := h.listHandler.Handle(query.ListAllocationsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list allocations")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list allocations",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"allocations": allocations,
			"total":       len(allocations),
		},
	})
}

// ListAtRisk handles GET /api/funding/at-risk
func (h *FundingHandler) ListAtRisk(w http.ResponseWriter, r *http.Request) {
	allocations, err := h.atRiskHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list at-risk allocations")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list at-risk allocations",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"allocations": allocations,
			"total":       len(allocations),
		},
	})
}

// UpdateAllocation handles PUT /api/funding/{id}
func (h *FundingHandler) UpdateAllocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		GrantName       string          `json:"grant_name"`
		FundingSource   string          `json:"funding_source"`
		AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	allocation, err := h.updateHandler.Handle(command.UpdateAllocationCommand{
		AllocationID:    id,
		GrantName:       req.GrantName,
		FundingSource:   req.FundingSource,
		AllocatedAmount: req.AllocatedAmount,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update allocation")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Allocation updated successfully",
		Data:    allocation,
	})
}

// RecordSpend handles POST /api/funding/{id}/spend
func (h *FundingHandler) RecordSpend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Amount decimal.Decimal `json:"amount"`
		Commit bool            `json:"commit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	allocation, err := h.spendHandler.Handle(command.RecordSpendCommand{
		AllocationID: id,
		Amount:       req.Amount,
		Commit:       req.Commit,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to record spend")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Spend recorded successfully",
		Data:    allocation,
	})
}

// BalanceCheck handles POST /api/funding/{id}/balance-check
func (h *FundingHandler) BalanceCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.balanceHandler.Handle(r.Context(), command.BalanceCheckCommand{AllocationID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to run balance check")
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

// RegisterRoutes registers all funding routes
func (h *FundingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/funding", h.ListAllocations).Methods("GET")
	router.HandleFunc("/api/funding", h.CreateAllocation).Methods("POST")
	router.HandleFunc("/api/funding/at-risk", h.ListAtRisk).Methods("GET")
	router.HandleFunc("/api/funding/{id}", h.GetAllocation).Methods("GET")
	router.HandleFunc("/api/funding/{id}", h.UpdateAllocation).Methods("PUT")
	router.HandleFunc("/api/funding/{id}/spend", h.RecordSpend).Methods("POST")
	router.HandleFunc("/api/funding/{id}/balance-check", h.BalanceCheck).Methods("POST")
}

// RegisterHealthCheck registers health check endpoint
func (h *FundingHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Funding service is healthy",
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
			Error:   "Invalid allocation ID",
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
