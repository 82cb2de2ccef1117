package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/labforge/labops/internal/people/usecase/command"
	"github.com/labforge/labops/internal/people/usecase/query"
	"github.com/labforge/labops/pkg/logger"
)

// PeopleHandler handles HTTP requests for lab members using CQRS pattern
type PeopleHandler struct {
	// Command handlers
	registerHandler     *command.RegisterPersonHandler
	loginHandler        *command.LoginPersonHandler
	updateHandler       *command.UpdatePersonHandler
	deleteHandler       *command.DeletePersonHandler
	changeRoleHandler   *command.ChangeRoleHandler
	toggleActiveHandler *command.ToggleActiveHandler

	// Query handlers
	getHandler    *query.GetPersonHandler
	listHandler   *query.ListPeopleHandler
	rosterHandler *query.RosterHandler
	statsHandler  *query.RosterStatsHandler
}

// NewPeopleHandlerWithDI creates a new people handler using dependency injection
func NewPeopleHandlerWithDI(
	registerHandler *command.RegisterPersonHandler,
	loginHandler *command.LoginPersonHandler,
	updateHandler *command.UpdatePersonHandler,
	deleteHandler *command.DeletePersonHandler,
	changeRoleHandler *command.ChangeRoleHandler,
	toggleActiveHandler *command.ToggleActiveHandler,
	getHandler *query.GetPersonHandler,
	listHandler *query.ListPeopleHandler,
	rosterHandler *query.RosterHandler,
	statsHandler *query.RosterStatsHandler,
) *PeopleHandler {
	return &PeopleHandler{
		registerHandler:     registerHandler,
		loginHandler:        loginHandler,
		updateHandler:       updateHandler,
		deleteHandler:       deleteHandler,
		changeRoleHandler:   changeRoleHandler,
		toggleActiveHandler: toggleActiveHandler,
		getHandler:          getHandler,
		listHandler:         listHandler,
		rosterHandler:       rosterHandler,
		statsHandler:        statsHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Register handles POST /api/people/register
func (h *PeopleHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	person, err := h.registerHandler.Handle(command.RegisterPersonCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to register person")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Person registered successfully",
		Data:    person,
	})
}

// Login handles POST /api/people/login
func (h *PeopleHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	resp, err := h.loginHandler.Handle(command.LoginPersonCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data:    resp,
	})
}

// GetPerson handles GET /api/people/{id}
func (h *PeopleHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	person, err := h.getHandler.Handle(query.GetPersonQuery{PersonID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Person not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    person,
	})
}

// ListPeople handles GET /api/people
func (h *PeopleHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	role := r.URL.Query().Get("role")

	people, err := h.listHandler.Handle(query.ListPeopleQuery{Role: role, Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list people")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    people,
	})
}

// Roster handles GET /api/people/roster
func (h *PeopleHandler) Roster(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.rosterHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to resolve roster")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to resolve roster",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"recipients": recipients,
			"total":      len(recipients),
		},
	})
}

// Stats handles GET /api/people/stats
func (h *PeopleHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute roster stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to compute stats",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// UpdatePerson handles PUT /api/people/{id}
func (h *PeopleHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	person, err := h.updateHandler.Handle(command.UpdatePersonCommand{
		PersonID: id,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update person")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Person updated successfully",
		Data:    person,
	})
}

// DeletePerson handles DELETE /api/people/{id}
func (h *PeopleHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeletePersonCommand{PersonID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete person")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Person deleted successfully",
	})
}

// ChangeRole handles PATCH /api/people/{id}/role
func (h *PeopleHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	person, err := h.changeRoleHandler.Handle(command.ChangeRoleCommand{
		PersonID: id,
		Role:     req.Role,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to change role")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Role changed successfully",
		Data:    person,
	})
}

// ToggleActive handles PATCH /api/people/{id}/active
func (h *PeopleHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	person, err := h.toggleActiveHandler.Handle(command.ToggleActiveCommand{
		PersonID: id,
		IsActive: req.IsActive,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to toggle active status")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Status updated successfully",
		Data:    person,
	})
}

// RegisterRoutes registers all people routes
func (h *PeopleHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/people/register", h.Register).Methods("POST")
	router.HandleFunc("/api/people/login", h.Login).Methods("POST")

	// Service-to-service routes (the alert dispatchers poll these)
	router.HandleFunc("/api/people", h.ListPeople).Methods("GET")
	router.HandleFunc("/api/people/roster", h.Roster).Methods("GET")

	// Administrator routes
	router.HandleFunc("/api/people/stats", AdminMiddleware(h.Stats)).Methods("GET")
	router.HandleFunc("/api/people/{id}", AuthMiddleware(h.GetPerson)).Methods("GET")
	router.HandleFunc("/api/people/{id}", AuthMiddleware(h.UpdatePerson)).Methods("PUT")
	router.HandleFunc("/api/people/{id}", AdminMiddleware(h.DeletePerson)).Methods("DELETE")
	router.HandleFunc("/api/people/{id}/role", AdminMiddleware(h.ChangeRole)).Methods("PATCH")
	router.HandleFunc("/api/people/{id}/active", AdminMiddleware(h.ToggleActive)).Methods("PATCH")
}

// RegisterHealthCheck registers health check endpoint
func (h *PeopleHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "People service is healthy",
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
			Error:   "Invalid person ID",
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
