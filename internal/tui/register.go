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
	registerName = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel renders the account creation form. Nothing is checked
// locally: password confirmation is left to the service.
type RegisterModel struct {
	ctrl *controller.SessionController
	form form
}

func NewRegisterModel(ctrl *controller.SessionController) *RegisterModel {
	return &RegisterModel{
		ctrl: ctrl,
		form: newForm(
			newTextInput("name", false),
			newTextInput("email", false),
			newTextInput("password", true),
			newTextInput("confirm password", true),
		),
	}
}

// Update handles tab / shift+tab, esc (back to sign in) and enter (submit).
func (m *RegisterModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return nil
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.switchView):
			_ = m.ctrl.SwitchView(models.ViewLogin)
			return nil
		case key.Matches(keyMsg, keys.enter):
			if m.ctrl.Busy() {
				return nil
			}
			return m.ctrl.Register(m.request())
		}
	}

	cmd := m.form.update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.ctrl.SetRegisterForm(m.request())
	}
	return cmd
}

func (m *RegisterModel) Reset() {
	m.form.reset()
}

func (m *RegisterModel) Title() string {
	return "CALMORA · CREATE ACCOUNT"
}

func (m *RegisterModel) HotKeys() string {
	return "tab: next field │ enter: register │ esc: back to sign in"
}

func (m *RegisterModel) Body(state controller.State) string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────────────\n")

	labels := []string{"Name             │ [", "Email            │ [", "Password         │ [", "Confirm password │ ["}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if state.Busy {
		b.WriteString("\n[Register...]")
	} else {
		b.WriteString("\n[Register]")
	}

	return b.String()
}

func (m *RegisterModel) request() models.RegistrationRequest {
	return models.RegistrationRequest{
		Name:            m.form.value(registerName),
		Email:           m.form.value(registerEmail),
		Password:        m.form.value(registerPassword),
		ConfirmPassword: m.form.value(registerConfirm),
	}
}
