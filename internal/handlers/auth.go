package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/cyberme/apiserver/internal/services"
)

// AuthHandler provides the registration and login endpoints. No token is
// issued on success; every login is verified independently.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler constructs an AuthHandler with the provided service.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	if err := h.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Message: "User created", Status: "success"})
}

// Login verifies credentials. The two failure modes deliberately share a
// status code but keep the source messages apart.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	if err := h.auth.Login(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			writeError(w, http.StatusUnauthorized, "Account not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Wrong password")
		default:
			writeError(w, http.StatusInternalServerError, "failed to authenticate")
		}
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Message: "Login successful", Status: "success"})
}

// AuthRequest is the shared payload for register and login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful register or login.
type AuthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
