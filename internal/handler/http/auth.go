package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/calmora/internal/app"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/utils"
	"github.com/MKhiriev/calmora/models"
)

func (h *Handler) sessionStatus(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetSessionEmailFromContext(r.Context())
	utils.WriteJSON(w, models.SessionStatus{LoggedIn: ok, Email: email}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, log, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.AuthService.Register(ctx, req); err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteMessage(w, app.MsgUserRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, log, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	sessionID, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, log, err)
		return
	}

	setSessionCookie(w, sessionID)
	utils.WriteMessage(w, app.MsgLoginSuccessful, http.StatusOK)
}

// logout always succeeds: an unknown or missing session is already logged out.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err = h.services.AuthService.Logout(ctx, cookie.Value); err != nil {
			writeError(w, log, err)
			return
		}
	}

	clearSessionCookie(w)
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}
