package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/arnavk09/quickkart-backend/internal/models"
	"github.com/arnavk09/quickkart-backend/internal/store"
)

// Profile returns the caller's own document, password stripped.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	user, err := h.store.FindByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeEnvelope(w, http.StatusNotFound, false, "User not found")
			return
		}
		log.Printf("Profile: lookup failed: %v", err)
		writeInternalError(w)
		return
	}

	safe := user.Sanitized()
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, User: &safe})
}

// UpdateProfile sets the editable profile fields after checking the new email
// is not held by some other account.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.PhoneNumber == "" {
		writeEnvelope(w, http.StatusOK, false, "All fields are required")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	taken, err := h.store.EmailTakenByOther(ctx, req.Email, id.UserID)
	if err != nil {
		log.Printf("UpdateProfile: email check failed: %v", err)
		writeInternalError(w)
		return
	}
	if taken {
		writeEnvelope(w, http.StatusOK, false, "This email already exists!")
		return
	}

	modified, err := h.store.UpdateProfile(ctx, id.UserID, req)
	if err != nil {
		log.Printf("UpdateProfile: update failed: %v", err)
		writeInternalError(w)
		return
	}
	if modified {
		writeEnvelope(w, http.StatusOK, true, "Profile updated successfully")
		return
	}
	writeEnvelope(w, http.StatusOK, true, "No changes detected")
}
