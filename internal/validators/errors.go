package validators

import (
	"errors"

	"github.com/MKhiriev/calmora/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Validation failures. The text of each error is the message returned to the
// client.
var (
	ErrRegistrationFieldsRequired = errors.New(app.MsgAllRegistrationFieldsRequired)
	ErrInvalidEmail               = errors.New(app.MsgInvalidEmail)
	ErrPasswordTooShort           = errors.New(app.MsgPasswordTooShort)
	ErrPasswordsDoNotMatch        = errors.New(app.MsgPasswordsDoNotMatch)
	ErrCredentialsRequired        = errors.New(app.MsgEmailAndPasswordRequired)
	ErrEmptyChatMessage           = errors.New(app.MsgInvalidChatMessage)
)
