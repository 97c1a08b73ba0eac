package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arnavk09/quickkart-backend/internal/models"
)

// AddAddress appends an address record to the caller's own document. An empty
// id is filled with a generated one; it is the match key for edit/delete.
func (h *Handler) AddAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var addr models.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	added, err := h.store.AddAddress(ctx, id.UserID, addr)
	if err != nil {
		log.Printf("AddAddress: %v", err)
		writeInternalError(w)
		return
	}
	if added {
		writeEnvelope(w, http.StatusOK, true, "Address Added Successfully")
		return
	}
	writeEnvelope(w, http.StatusOK, false, "Error Occured")
}

// EditAddress replaces the address element matching the path id, scoped to the
// caller's own document.
func (h *Handler) EditAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	addressID := chi.URLParam(r, "id")

	var addr models.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	matched, err := h.store.EditAddress(ctx, id.UserID, addressID, addr)
	if err != nil {
		log.Printf("EditAddress: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error updating address"})
		return
	}
	if !matched {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Address not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Address updated successfully"})
}

// DeleteAddress pulls the address element matching the path id from the
// caller's own document. Missing ids are just "not found", never an error.
func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	addressID := chi.URLParam(r, "id")

	ctx, cancel := storeContext(r)
	defer cancel()

	removed, err := h.store.DeleteAddress(ctx, id.UserID, addressID)
	if err != nil {
		log.Printf("DeleteAddress: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	if !removed {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Address not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Address deleted successfully"})
}
