package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/calmora/internal/app"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/service"
	"github.com/MKhiriev/calmora/internal/utils"
	"github.com/MKhiriev/calmora/internal/validators"
)

// clientErrors are the failures reported back with their own text as the
// message. Anything else becomes a 500 with a generic message.
var clientErrors = []struct {
	target error
	status int
}{
	{validators.ErrRegistrationFieldsRequired, http.StatusBadRequest},
	{validators.ErrInvalidEmail, http.StatusBadRequest},
	{validators.ErrPasswordTooShort, http.StatusBadRequest},
	{validators.ErrPasswordsDoNotMatch, http.StatusBadRequest},
	{validators.ErrCredentialsRequired, http.StatusBadRequest},
	{validators.ErrEmptyChatMessage, http.StatusBadRequest},
	{service.ErrEmailAlreadyRegistered, http.StatusBadRequest},
	{service.ErrInvalidEmailOrPassword, http.StatusUnauthorized},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},
}

// statusFromError returns the status code and client message for err.
func statusFromError(err error) (int, string) {
	for _, e := range clientErrors {
		if errors.Is(err, e.target) {
			message := e.target.Error()
			if e.target == ErrInvalidJSON {
				message = app.MsgInvalidDataProvided
			}
			return e.status, message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	status, message := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
