package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rick465/react-shop/internal/identity"
)

type AuthHandler struct {
	identity *identity.Manager
}

func NewAuthHandler(id *identity.Manager) *AuthHandler {
	return &AuthHandler{identity: id}
}

type LoginRequestDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdateProfileRequestDTO struct {
	Name string `json:"name"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, err := h.identity.Login(r.Context(), req.Email, req.Name)
	if errors.Is(err, identity.ErrMissingEmail) {
		respondError(w, http.StatusBadRequest, "missing_email", "email is required")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to sign in")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.Logout(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to sign out")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.identity.Current()
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "no user is signed in")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, err := h.identity.UpdateProfile(r.Context(), req.Name)
	if errors.Is(err, identity.ErrNotSignedIn) {
		respondError(w, http.StatusUnauthorized, "unauthorized", "no user is signed in")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
