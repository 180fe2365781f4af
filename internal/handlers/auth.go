package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"hiltim-backend/internal/dto"
	"hiltim-backend/internal/services"
	"hiltim-backend/internal/utils"
)

// AuthHandler handles the account stub endpoints. There is no credential
// verification anywhere in this service.
type AuthHandler struct {
	users *services.UserService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles POST /api/auth/register
// @Summary Create a guest account
// @Description Stores a profile in the users CSV; the email must be unused
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account profile"
// @Success 201 {object} services.UserResult
// @Failure 400 {object} services.UserResult
// @Failure 409 {object} services.UserResult
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.users.Register(req.Email, req.FirstName, req.LastName, req.Phone, req.Preferences)
	if !result.Success {
		status := http.StatusBadRequest
		if strings.Contains(result.Error, "already exists") {
			status = http.StatusConflict
		}
		utils.WriteJSONResponse(w, status, result)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, result)
}

// Login handles POST /api/auth/login
// @Summary Log in by email
// @Description Resolves a stored profile or fabricates a guest one; no password, by contract
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Email"
// @Success 200 {object} services.UserResult
// @Failure 400 {object} services.UserResult
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.users.Login(req.Email)
	if !result.Success {
		utils.WriteJSONResponse(w, http.StatusBadRequest, result)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}
