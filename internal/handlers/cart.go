package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/arnavk09/quickkart-backend/internal/models"
	"github.com/arnavk09/quickkart-backend/internal/store"
)

type AddToCartRequest struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ProductImg string  `json:"productImg"`
}

type RemoveFromCartRequest struct {
	ProductID string `json:"productId"`
}

type CheckoutRequest struct {
	Cart []models.CartItem `json:"cart"`
}

type CheckoutResponse struct {
	Message     string   `json:"message"`
	FailedItems []string `json:"failedItems,omitempty"`
}

// AddToCart increments an existing line's quantity or appends a new line with
// quantity 1. Calling it twice with the same productId yields one line with
// quantity 2, never two lines.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if req.ProductID == "" {
		writeEnvelope(w, http.StatusBadRequest, false, "productId is required")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	item := models.CartItem{
		ProductID:  req.ProductID,
		Name:       req.Name,
		Price:      req.Price,
		ProductImg: req.ProductImg,
	}
	if err := h.store.AddToCart(ctx, id.UserID, item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeEnvelope(w, http.StatusNotFound, false, "User not found")
			return
		}
		log.Printf("AddToCart: %v", err)
		writeEnvelope(w, http.StatusInternalServerError, false, "")
		return
	}

	writeEnvelope(w, http.StatusOK, true, "")
}

// CartPage returns the caller's cart as a bare array, the shape the cart page
// already consumes.
func (h *Handler) CartPage(w http.ResponseWriter, r *http.Request) {
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
		log.Printf("CartPage: lookup failed: %v", err)
		writeInternalError(w)
		return
	}

	cart := user.Cart
	if cart == nil {
		cart = []models.CartItem{}
	}
	writeJSON(w, http.StatusOK, cart)
}

// RemoveFromCart pulls one line from the caller's own cart. The document is
// addressed by the authenticated id; any username in the body is ignored.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req RemoveFromCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	removed, err := h.store.RemoveFromCart(ctx, id.UserID, req.ProductID)
	if err != nil {
		log.Printf("RemoveFromCart: %v", err)
		writeInternalError(w)
		return
	}
	if removed {
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Item removed from cart", "success": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Item not found in cart", "success": false})
}

// EmptyCart replaces the caller's cart with an empty array.
func (h *Handler) EmptyCart(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	emptied, err := h.store.EmptyCart(ctx, id.UserID)
	if err != nil {
		log.Printf("EmptyCart: %v", err)
		writeInternalError(w)
		return
	}
	if emptied {
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Cart Is Empty", "success": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Error during Emptying the Cart", "success": false})
}

// Checkout sets each supplied line's quantity absolutely from the client's
// cart. The per-item loop is not transactional; lines that matched nothing
// are reported back instead of being silently skipped.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	failed, err := h.store.SetCartQuantities(ctx, id.UserID, req.Cart)
	if err != nil {
		log.Printf("Checkout: %v", err)
		writeJSON(w, http.StatusInternalServerError, CheckoutResponse{Message: "Error updating cart"})
		return
	}
	if len(failed) > 0 {
		writeJSON(w, http.StatusOK, CheckoutResponse{Message: "Some items were not in the cart", FailedItems: failed})
		return
	}
	writeJSON(w, http.StatusOK, CheckoutResponse{Message: "Cart updated successfully"})
}
