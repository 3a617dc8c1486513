package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rick465/react-shop/internal/checkout"
	"github.com/rick465/react-shop/internal/order"
)

type CheckoutHandler struct {
	checkout *checkout.Orchestrator
}

func NewCheckoutHandler(orchestrator *checkout.Orchestrator) *CheckoutHandler {
	return &CheckoutHandler{checkout: orchestrator}
}

type CheckoutRequestDTO struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	PaymentMethod string `json:"payment_method"`
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Required-field check only; deeper validation belongs to the form layer.
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Address == "" || req.City == "" || req.PaymentMethod == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "all checkout fields are required")
		return
	}

	created, err := h.checkout.PlaceOrder(r.Context(), checkout.Input{
		ShippingAddress: order.Address{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Phone:      req.Phone,
			Address:    req.Address,
			City:       req.City,
			PostalCode: req.PostalCode,
		},
		PaymentMethod: req.PaymentMethod,
	})
	switch {
	case errors.Is(err, checkout.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "unauthorized", "sign in to place an order")
		return
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", "cart is empty")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to place order")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}
