package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/calmora/internal/app"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/utils"
)

const (
	sessionCookieName = "session"
	sessionMaxAge     = 31 * 24 * 60 * 60
)

// withSession resolves the session cookie, when present, to the account
// email and stores it in the request context under
// [utils.SessionEmailCtxKey]. Unknown or stale session ids are ignored.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		email, err := h.services.AuthService.SessionEmail(r.Context(), cookie.Value)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("session cookie not accepted")
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionEmailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession rejects requests that withSession could not authenticate
// with 401 and the service's unauthorized message.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionEmailFromContext(r.Context()); !ok {
			logger.FromRequest(r).Err(ErrNoSessionCookie).Send()
			utils.WriteMessage(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
