package handler

import (
	"log"
	"net/http"

	"github.com/parisxmas/featuredesk/internal/auth"
)

// AuthHandler checks configured credentials and issues the JWT the admin
// views require. Users and hashes come from config, resolved once at start.
type AuthHandler struct {
	users     map[string]string
	jwtSecret string
}

func NewAuthHandler(users map[string]string, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, ok := h.users[req.Username]
	if !ok || !auth.CheckPassword(req.Password, hash) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, req.Username)
	if err != nil {
		log.Printf("token generation failed for %q: %v", req.Username, err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "success",
		"token":    token,
		"username": req.Username,
	})
}
