package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dento-health/dento-portal/backend/internal/api/middleware"
	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/pkg/config"
)

// AuthHandler handles registration, login and session endpoints
type AuthHandler struct {
	service *services.AuthService
	session config.SessionConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *services.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		session: session,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		UserType string `json:"user_type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := &entities.User{
		Username: payload.Username,
		Password: payload.Password,
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		UserType: entities.UserType(payload.UserType),
	}

	if err := h.service.Register(r.Context(), user); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.session.TTLHours * int(time.Hour.Seconds()),
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	respondWithJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.session.CookieName); err == nil {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			respondWithAppError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	user, err := h.service.CurrentUser(r.Context(), session.Token)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}
