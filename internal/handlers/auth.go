package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/arnavk09/quickkart-backend/internal/auth"
	"github.com/arnavk09/quickkart-backend/internal/models"
	"github.com/arnavk09/quickkart-backend/internal/store"
	"github.com/arnavk09/quickkart-backend/pkg/utils"
)

// tokenTTL is how long a session token and its cookie stay valid.
const tokenTTL = 7 * 24 * time.Hour

type SignupRequest struct {
	Username    string           `json:"Username"`
	Name        string           `json:"Name"`
	Email       string           `json:"Email"`
	Password    string           `json:"Password"`
	Gender      string           `json:"Gender"`
	PhoneNumber string           `json:"Phone_Number"`
	Address     []models.Address `json:"Address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// setSessionCookie applies the session cookie with explicit attributes.
// Secure is only set in production so local http frontends keep working.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup registers a new account, hashes the password and issues a session
// token. Email uniqueness is a write-time existence check, not an index
// constraint.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeEnvelope(w, http.StatusBadRequest, false, "Username, email and password are required")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	taken, err := h.store.EmailTaken(ctx, req.Email)
	if err != nil {
		log.Printf("Signup: email check failed: %v", err)
		writeInternalError(w)
		return
	}
	if taken {
		writeEnvelope(w, http.StatusConflict, false, "Email already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Signup: hash failed: %v", err)
		writeInternalError(w)
		return
	}

	user := models.User{
		Username:    req.Username,
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Cart:        []models.CartItem{},
		Orders:      []models.Order{},
		CreatedAt:   time.Now(),
	}

	id, err := h.store.Insert(ctx, &user)
	if err != nil {
		log.Printf("Signup: insert failed: %v", err)
		writeInternalError(w)
		return
	}

	token, err := auth.Issue(id, user.Email, h.cfg.JWTSecret, tokenTTL)
	if err != nil {
		log.Printf("Signup: token issue failed: %v", err)
		writeInternalError(w)
		return
	}
	h.setSessionCookie(w, token)

	safe := user.Sanitized()
	writeJSON(w, http.StatusCreated, AuthResponse{Success: true, User: &safe})
}

// Login verifies credentials and issues a fresh session token. Wrong email
// and wrong password are indistinguishable to the caller.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	user, err := h.store.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeEnvelope(w, http.StatusUnauthorized, false, "Invalid credentials")
			return
		}
		log.Printf("Login: lookup failed: %v", err)
		writeInternalError(w)
		return
	}

	match, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil || !match {
		writeEnvelope(w, http.StatusUnauthorized, false, "Invalid credentials")
		return
	}

	token, err := auth.Issue(user.ID.Hex(), user.Email, h.cfg.JWTSecret, tokenTTL)
	if err != nil {
		log.Printf("Login: token issue failed: %v", err)
		writeInternalError(w)
		return
	}
	h.setSessionCookie(w, token)

	safe := user.Sanitized()
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, User: &safe})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeEnvelope(w, http.StatusOK, true, "")
}
