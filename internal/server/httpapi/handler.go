package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pulsedash/pulsedash/internal/common"
	"github.com/pulsedash/pulsedash/internal/server/users"
)

// Response messages are part of the API contract and must stay stable.
const (
	msgSignupFieldsRequired = "All fields are required"
	msgLoginFieldsRequired  = "Email and password are required"
	msgUserRegistered       = "User registered successfully"
	msgLoginSuccessful      = "Login successful"
	msgDashboardUnavailable = "Unable to fetch dashboard data"
	msgInternalError        = "internal error"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string            `json:"message"`
	User    *users.PublicUser `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Server is running....."))
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgSignupFieldsRequired)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgSignupFieldsRequired)
		return
	}

	user, err := s.users.SignUp(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, common.ErrEmailTaken.Error())
			return
		}
		s.logger.Error(ctx, "signup failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	s.logger.Info(ctx, "user registered", "email", user.Email)
	writeJSON(w, http.StatusCreated, authResponse{Message: msgUserRegistered, User: user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgLoginFieldsRequired)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgLoginFieldsRequired)
		return
	}

	user, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, common.ErrInvalidCredentials.Error())
			return
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	s.logger.Info(ctx, "user logged in", "email", user.Email)
	writeJSON(w, http.StatusOK, authResponse{Message: msgLoginSuccessful, User: user})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := s.dashboard.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "dashboard payload unavailable", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgDashboardUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
