package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/auth"
	"resume-matcher/internal/storage"
)

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CollegeCode string `json:"collegeCode"`
	Type        string `json:"type"` // student or company
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and display fields the
// dashboard keeps client-side.
type LoginResponse struct {
	Token       string `json:"token"`
	UserType    string `json:"userType"`
	CollegeCode string `json:"collegeCode"`
	UserID      string `json:"userId"`
}

// RegisterHandler creates a new student or company account
// @Summary Register account
// @Description Create a student or company account scoped to a college code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} storage.User
// @Failure 400 {object} map[string]string
// @Router /register [post]
func (a *API) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.CollegeCode == "" {
		writeError(w, http.StatusBadRequest, "name, email, password and collegeCode are required")
		return
	}
	if req.Type != "student" && req.Type != "company" {
		writeError(w, http.StatusBadRequest, "type must be student or company")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	user := &storage.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CollegeCode:  req.CollegeCode,
		Type:         req.Type,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.users.CreateUser(r.Context(), user); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// LoginHandler authenticates an account and issues a session token
// @Summary Log in
// @Description Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (a *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := a.users.UserByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := a.tokenGen.GenerateToken(user.ID, a.tokenTTL)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:       token,
		UserType:    user.Type,
		CollegeCode: user.CollegeCode,
		UserID:      user.ID,
	})
}
