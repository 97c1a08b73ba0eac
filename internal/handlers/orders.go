package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/arnavk09/quickkart-backend/internal/models"
	"github.com/arnavk09/quickkart-backend/internal/store"
)

type CancelOrderRequest struct {
	OrderID    string `json:"OrderId"`
	CancelDate string `json:"CancelDate"`
}

// PlaceOrder appends an order record to the caller's Orders array. A missing
// OrderId is filled with a generated one so cancellation always has a key to
// match on.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if order.OrderID == "" {
		order.OrderID = uuid.New().String()
	}
	if order.OrderStatus == "" {
		order.OrderStatus = models.OrderStatusOrdered
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	pushed, err := h.store.AppendOrder(ctx, id.UserID, order)
	if err != nil {
		log.Printf("PlaceOrder: %v", err)
		writeInternalError(w)
		return
	}
	if pushed {
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Order placed", "success": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "User not found", "success": false})
}

// ListOrders returns the caller's order records as a bare array.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	user, err := h.store.FindByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
			return
		}
		log.Printf("ListOrders: lookup failed: %v", err)
		writeInternalError(w)
		return
	}

	orders := user.Orders
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// CancelOrder flips the matched order to Cancelled in place. Orders move
// Ordered -> Cancelled one way; an unknown OrderId leaves the document
// untouched and reports success:false.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req CancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	cancelled, err := h.store.CancelOrder(ctx, id.UserID, req.OrderID, req.CancelDate)
	if err != nil {
		log.Printf("CancelOrder: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error", "success": false})
		return
	}
	if cancelled {
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Order cancelled successfully", "success": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Order not found or already cancelled", "success": false})
}
