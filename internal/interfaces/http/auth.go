package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"mybudget/internal/domain/user"
	"mybudget/internal/shared/auth"
)

type AuthHandler struct {
	users user.Repository
}

func NewAuthHandler(users user.Repository) *AuthHandler {
	return &AuthHandler{users: users}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID  int64  `json:"UserID"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new user with a hashed password and their
// default wallet.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password during registration: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	u, err := h.users.Create(r.Context(), user.CreateParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, user.ErrEmailTaken) {
		respondError(w, http.StatusBadRequest, "A user with this email already exists")
		return
	}
	if err != nil {
		log.Printf("Error creating user %s: %v", req.Email, err)
		respondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		UserID:  u.ID,
		Message: "User created",
	})
}

// HandleLogin authenticates a user with email and password. Unknown email
// and wrong password produce the same response.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if errors.Is(err, user.ErrNotFound) {
		respondError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}
	if err != nil {
		log.Printf("Error fetching user by email: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if err := auth.VerifyPassword(u.PasswordHash, req.Password); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	respondJSON(w, http.StatusOK, u)
}
