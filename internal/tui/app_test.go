package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/calmora/internal/adapter"
	"github.com/MKhiriev/calmora/internal/app"
	"github.com/MKhiriev/calmora/internal/controller"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/mock"
	"github.com/MKhiriev/calmora/internal/service"
	"github.com/MKhiriev/calmora/models"
)

type tuiFixture struct {
	ctrl *controller.SessionController
	auth *mock.MockClientAuthService
	chat *mock.MockClientChatService
}

func newFixture(t *testing.T) tuiFixture {
	t.Helper()
	mc := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(mc)
	chat := mock.NewMockClientChatService(mc)

	ctrl := controller.NewSessionController(context.Background(), &service.ClientServices{
		AuthService: auth,
		ChatService: chat,
	}, logger.Nop())

	return tuiFixture{ctrl: ctrl, auth: auth, chat: chat}
}

// loggedIn applies a successful bootstrap before the root model is built.
func (f tuiFixture) loggedIn(t *testing.T) RootModel {
	t.Helper()
	f.auth.EXPECT().SessionStatus(gomock.Any()).Return(models.SessionStatus{LoggedIn: true, Email: "ann@example.com"}, nil)
	f.ctrl.Update(f.ctrl.Bootstrap()())
	require.Equal(t, models.ViewChat, f.ctrl.View())
	return f.root()
}

func (f tuiFixture) root() RootModel {
	return NewRootModel(f.ctrl, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), "notty")
}

func send(t *testing.T, r RootModel, msg tea.Msg) RootModel {
	t.Helper()
	next, _ := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root
}

func typeText(t *testing.T, r RootModel, text string) RootModel {
	t.Helper()
	return send(t, r, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestRootModel_StartsOnLogin(t *testing.T) {
	f := newFixture(t)
	r := f.root()

	view := r.View()
	assert.Contains(t, view, "SIGN IN")
	assert.Contains(t, view, "[Sign in]")
}

func TestRootModel_LoginFlow(t *testing.T) {
	f := newFixture(t)
	r := f.root()

	r = typeText(t, r, "ann@example.com")
	r = send(t, r, tea.KeyMsg{Type: tea.KeyTab})
	r = typeText(t, r, "secret1")

	assert.Equal(t, models.Credentials{Email: "ann@example.com", Password: "secret1"}, f.ctrl.Snapshot().LoginForm)

	f.auth.EXPECT().Login(gomock.Any(), models.Credentials{Email: "ann@example.com", Password: "secret1"}).Return(nil)
	cmd := r.login.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Contains(t, r.View(), "[Sign in...]")

	r = send(t, r, cmd())

	assert.Equal(t, models.ViewChat, f.ctrl.View())
	assert.Empty(t, r.login.form.value(loginEmail))
	view := r.View()
	assert.Contains(t, view, app.MsgLoginSuccessful)
	assert.Contains(t, view, "Signed in as ann@example.com")
	assert.Contains(t, view, "Hello, how are you feeling?")
}

func TestRootModel_LoginFailureKeepsForm(t *testing.T) {
	f := newFixture(t)
	r := f.root()
	r = typeText(t, r, "ann@example.com")

	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&adapter.ResponseError{StatusCode: 401, Message: "Invalid email or password."})
	r = send(t, r, r.login.Update(tea.KeyMsg{Type: tea.KeyEnter})())

	assert.Equal(t, models.ViewLogin, f.ctrl.View())
	assert.Equal(t, "ann@example.com", r.login.form.value(loginEmail))
	assert.Contains(t, r.View(), "Invalid email or password.")
}

func TestRootModel_SwitchViewKeepsStatusAndResetsForms(t *testing.T) {
	f := newFixture(t)
	r := f.root()

	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: refused", adapter.ErrTransport))
	r = send(t, r, r.login.Update(tea.KeyMsg{Type: tea.KeyEnter})())
	r = typeText(t, r, "typed")

	r = send(t, r, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, models.ViewRegister, f.ctrl.View())
	assert.Empty(t, r.login.form.value(loginEmail))
	assert.Contains(t, r.View(), "CREATE ACCOUNT")
	assert.Contains(t, r.View(), app.MsgLoginError)

	r = send(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, models.ViewLogin, f.ctrl.View())
	assert.Contains(t, r.View(), app.MsgLoginError)
}

func TestRootModel_RegisterSuccessReturnsToLogin(t *testing.T) {
	f := newFixture(t)
	r := f.root()
	r = send(t, r, tea.KeyMsg{Type: tea.KeyCtrlN})

	r = typeText(t, r, "Ann")
	for _, text := range []string{"ann@example.com", "secret1", "secret1"} {
		r = send(t, r, tea.KeyMsg{Type: tea.KeyTab})
		r = typeText(t, r, text)
	}

	want := models.RegistrationRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1"}
	f.auth.EXPECT().Register(gomock.Any(), want).Return(nil)
	r = send(t, r, r.register.Update(tea.KeyMsg{Type: tea.KeyEnter})())

	assert.Equal(t, models.ViewLogin, f.ctrl.View())
	assert.Empty(t, r.register.form.value(registerName))
	assert.Contains(t, r.View(), app.MsgRegistrationSuccessful)
}

func TestRootModel_ChatSend(t *testing.T) {
	f := newFixture(t)
	r := f.loggedIn(t)

	r = typeText(t, r, "hi")
	assert.Equal(t, "hi", f.ctrl.Conversation().Draft())

	f.chat.EXPECT().Send(gomock.Any(), "hi").Return("I understand.", nil)
	cmd := r.chat.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	r = send(t, r, cmd())

	assert.Equal(t, []models.ConversationTurn{
		models.AdvisorTurn(app.MsgChatGreeting),
		models.UserTurn("hi"),
		models.AdvisorTurn("I understand."),
	}, f.ctrl.Conversation().Turns())
	assert.Empty(t, r.chat.input.Value())
	assert.Contains(t, r.View(), "I understand.")
}

func TestRootModel_ChatTransportFailureKeepsDraft(t *testing.T) {
	f := newFixture(t)
	r := f.loggedIn(t)
	r = typeText(t, r, "hi")

	f.chat.EXPECT().Send(gomock.Any(), "hi").Return("", fmt.Errorf("%w: timeout", adapter.ErrTransport))
	r = send(t, r, r.chat.Update(tea.KeyMsg{Type: tea.KeyEnter})())

	assert.Equal(t, "hi", r.chat.input.Value())
	assert.Contains(t, r.View(), app.MsgChatUnavailable)
}

func TestRootModel_BlankSendIsNoop(t *testing.T) {
	f := newFixture(t)
	r := f.loggedIn(t)
	r = typeText(t, r, "   ")

	assert.Nil(t, r.chat.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Len(t, f.ctrl.Conversation().Turns(), 1)
}

func TestRootModel_Logout(t *testing.T) {
	f := newFixture(t)
	r := f.loggedIn(t)
	r = typeText(t, r, "unsent")

	f.auth.EXPECT().Logout(gomock.Any()).Return("Logged out successfully.", nil)
	cmd := r.chat.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	require.NotNil(t, cmd)
	r = send(t, r, cmd())

	assert.Equal(t, models.ViewLogin, f.ctrl.View())
	assert.Empty(t, f.ctrl.Conversation().Turns())
	assert.Empty(t, r.chat.input.Value())
	assert.Contains(t, r.View(), "Logged out successfully.")
}

func TestRootModel_CopyWithoutReply(t *testing.T) {
	f := newFixture(t)
	r := f.loggedIn(t)
	f.ctrl.Conversation().Reset()

	cmd := r.chat.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)

	msg, ok := cmd().(copyFailedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.err, ErrNothingToCopy)

	r = send(t, r, msg)
	assert.Contains(t, r.chat.note, "Copy failed")

	r = send(t, r, clearNoteMsg{})
	assert.Empty(t, r.chat.note)
}

func TestRootModel_BuildInfoOverlay(t *testing.T) {
	f := newFixture(t)
	r := f.root()

	r = send(t, r, tea.KeyMsg{Type: tea.KeyCtrlV})
	view := r.View()
	assert.Contains(t, view, "Calmora")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	// keys are swallowed while the overlay is open
	r = typeText(t, r, "x")
	assert.Empty(t, r.login.form.value(loginEmail))

	r = send(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, r.View(), "SIGN IN")
}

func TestRootModel_Quit(t *testing.T) {
	f := newFixture(t)
	r := f.root()

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRootModel_Resize(t *testing.T) {
	f := newFixture(t)
	r := f.loggedIn(t)

	r = send(t, r, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 112, r.chat.viewport.Width)
	assert.Equal(t, 26, r.chat.viewport.Height)

	r = send(t, r, tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.Equal(t, 20, r.chat.viewport.Width)
	assert.Equal(t, 3, r.chat.viewport.Height)
}

func TestValueOrNA(t *testing.T) {
	assert.Equal(t, "N/A", valueOrNA("  "))
	assert.Equal(t, "v1", valueOrNA(" v1 "))
}
