package service

import (
	"errors"

	"github.com/MKhiriev/calmora/internal/app"
)

// Server-side business errors. The text of each is the message returned to
// the client.
var (
	ErrEmailAlreadyRegistered = errors.New(app.MsgEmailAlreadyRegistered)
	ErrInvalidEmailOrPassword = errors.New(app.MsgInvalidEmailOrPassword)
	ErrUnauthorized           = errors.New(app.MsgUnauthorized)
)
