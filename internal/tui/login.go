// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/calmora/internal/controller"
	"github.com/MKhiriev/calmora/models"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel renders the credentials form. Field values are mirrored into the
// controller's login form after every keystroke; submission goes through
// [controller.SessionController.Login] and empty fields are sent as they are.
type LoginModel struct {
	ctrl *controller.SessionController
	form form
}

// NewLoginModel creates a [LoginModel] with the email field focused and a
// masked password field.
func NewLoginModel(ctrl *controller.SessionController) *LoginModel {
	return &LoginModel{
		ctrl: ctrl,
		form: newForm(
			newTextInput("email", false),
			newTextInput("password", true),
		),
	}
}

// Update handles:
//   - tab / shift+tab  moves focus between fields.
//   - ctrl+n           switches to the register view.
//   - enter            submits the form unless a session call is pending.
//
// Everything else goes to the focused input.
func (m *LoginModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return nil
		case key.Matches(keyMsg, keys.switchView):
			_ = m.ctrl.SwitchView(models.ViewRegister)
			return nil
		case key.Matches(keyMsg, keys.enter):
			if m.ctrl.Busy() {
				return nil
			}
			return m.ctrl.Login(m.credentials())
		}
	}

	cmd := m.form.update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.ctrl.SetLoginForm(m.credentials())
	}
	return cmd
}

func (m *LoginModel) Reset() {
	m.form.reset()
}

func (m *LoginModel) Title() string {
	return "CALMORA · SIGN IN"
}

func (m *LoginModel) HotKeys() string {
	return "tab: next field │ enter: sign in │ ctrl+n: create account"
}

// Body renders the form as a two-column table.
func (m *LoginModel) Body(state controller.State) string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.form.inputs[loginEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.form.inputs[loginPassword].View())
	b.WriteString("]\n")

	if state.Busy {
		b.WriteString("\n[Sign in...]")
	} else {
		b.WriteString("\n[Sign in]")
	}

	return b.String()
}

func (m *LoginModel) credentials() models.Credentials {
	return models.Credentials{
		Email:    m.form.value(loginEmail),
		Password: m.form.value(loginPassword),
	}
}
