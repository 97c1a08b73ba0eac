package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// Diagnostic handlers. The routes serving these are only registered when the
// server is not running in production.

// DumpUsers returns the entire collection.
func (h *Handler) DumpUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()

	users, err := h.store.DumpAll(ctx)
	if err != nil {
		log.Printf("DumpUsers: %v", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// RawInsert stores the request body as-is.
func (h *Handler) RawInsert(w http.ResponseWriter, r *http.Request) {
	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	id, err := h.store.RawInsert(ctx, doc)
	if err != nil {
		log.Printf("RawInsert: %v", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "result": id})
}
