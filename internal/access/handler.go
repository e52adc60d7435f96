package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"contentdesk/internal/access/gate"
	"contentdesk/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

type VerifyRequest struct {
	Code string `json:"code"`
}

type VerifyResponse struct {
	Token string `json:"token"`
}

type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

type AccessHandler struct {
	Gate *gate.AccessGate
}

func NewAccessHandler(gate *gate.AccessGate) *AccessHandler {
	return &AccessHandler{Gate: gate}
}

func (h *AccessHandler) VerifyAccess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Empty submissions are rejected here; the gate itself treats them
	// as any other non-matching candidate.
	if strings.TrimSpace(req.Code) == "" {
		http.Error(w, "Access code is required", http.StatusBadRequest)
		return
	}

	if !h.Gate.Verify(req.Code) {
		http.Error(w, "Invalid access code", http.StatusUnauthorized)
		return
	}

	h.Gate.SetAuthenticated(true)

	token, err := issueSessionToken()
	if err != nil {
		logger.Sugar.Errorf("Handler: Failed to issue session token: %v", err)
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VerifyResponse{Token: token})
}

func (h *AccessHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.Gate.Logout()

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Logged out"))
}

func (h *AccessHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SessionResponse{Authenticated: h.Gate.IsAuthenticated()})
}

func issueSessionToken() (string, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		logger.Sugar.Error("FATAL: SESSION_SECRET environment variable not set.")
		return "", jwt.ErrInvalidKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(secret))
}
