package validators

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/calmora/internal/app"
	"github.com/MKhiriev/calmora/models"
)

const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldMessage         = "message"
)

var emailPattern = regexp.MustCompile(`^\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}\b`)

// AccountValidator checks registration, login and chat payloads. Values are
// trimmed before every check.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(ctx, value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegistration applies the checks in a fixed order: presence of all
// fields, email format, password length, password confirmation.
func (v *AccountValidator) validateRegistration(_ context.Context, req models.RegistrationRequest, fields ...string) error {
	if err := checkFields(fields, FieldName, FieldEmail, FieldPassword, FieldConfirmPassword); err != nil {
		return err
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	confirm := strings.TrimSpace(req.ConfirmPassword)

	if len(fields) == 0 {
		if name == "" || email == "" || password == "" || confirm == "" {
			return ErrRegistrationFieldsRequired
		}
	}

	if wants(fields, FieldName) && name == "" {
		return ErrRegistrationFieldsRequired
	}
	if wants(fields, FieldEmail) && !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	if wants(fields, FieldPassword) && len(password) < app.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if wants(fields, FieldConfirmPassword) && password != confirm {
		return ErrPasswordsDoNotMatch
	}

	return nil
}

func (v *AccountValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if err := checkFields(fields, FieldEmail, FieldPassword); err != nil {
		return err
	}

	if wants(fields, FieldEmail) && strings.TrimSpace(creds.Email) == "" {
		return ErrCredentialsRequired
	}
	if wants(fields, FieldPassword) && strings.TrimSpace(creds.Password) == "" {
		return ErrCredentialsRequired
	}

	return nil
}

func (v *AccountValidator) validateChatRequest(_ context.Context, req models.ChatRequest, fields ...string) error {
	if err := checkFields(fields, FieldMessage); err != nil {
		return err
	}

	if strings.TrimSpace(req.Message) == "" {
		return ErrEmptyChatMessage
	}

	return nil
}

// IsValidEmail reports whether email looks like an address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// wants reports whether field is in scope; an empty scope selects all fields.
func wants(fields []string, field string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}

func checkFields(fields []string, known ...string) error {
	for _, f := range fields {
		if !slices.Contains(known, f) {
			return ErrUnknownField
		}
	}
	return nil
}
