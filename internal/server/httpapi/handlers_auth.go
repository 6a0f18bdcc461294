package httpapi

import (
	"errors"
	"net/http"

	"github.com/mahinuralam/Color-Paletters/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *HTTPServer) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Color palette service"})
}

func (s *HTTPServer) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) RegisterUser(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	var req registerRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, accessToken, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyExists) {
			writeError(w, http.StatusConflict, "username already taken")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, registerResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		AccessToken: accessToken,
	})
}

func (s *HTTPServer) Login(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accessToken, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken, TokenType: "Bearer"})
}
