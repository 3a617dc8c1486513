package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rick465/react-shop/internal/identity"
	"github.com/rick465/react-shop/internal/order"
)

type OrdersHandler struct {
	orders   *order.Store
	identity *identity.Manager
}

func NewOrdersHandler(orders *order.Store, id *identity.Manager) *OrdersHandler {
	return &OrdersHandler{
		orders:   orders,
		identity: id,
	}
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// List returns the signed-in user's order history.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.identity.Current()
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "sign in to see your orders")
		return
	}

	orders := h.orders.ByUser(user.Email)
	if orders == nil {
		orders = []order.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.ByID(chi.URLParam(r, "id"))
	if errors.Is(err, order.ErrOrderNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get order")
		return
	}

	respondJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	err := h.orders.UpdateStatus(r.Context(), orderID, order.Status(req.Status))
	switch {
	case errors.Is(err, order.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
		return
	case errors.Is(err, order.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", "order cannot move to that status")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update order")
		return
	}

	o, err := h.orders.ByID(orderID)
	if errors.Is(err, order.ErrOrderNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get order")
		return
	}

	respondJSON(w, http.StatusOK, o)
}
