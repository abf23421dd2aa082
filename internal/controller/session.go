package controller

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/calmora/internal/adapter"
	"github.com/MKhiriev/calmora/internal/app"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/service"
	"github.com/MKhiriev/calmora/models"
)

// SessionController owns the active view, the status message and the form
// buffers, and mediates every session call to the service. It is not safe
// for concurrent use; drive it from one event loop.
type SessionController struct {
	ctx          context.Context
	auth         service.ClientAuthService
	conversation *ConversationController
	logger       *logger.Logger

	view   models.ViewState
	status string
	email  string

	loginForm    models.Credentials
	registerForm models.RegistrationRequest

	// inflight counts session calls whose result has not been applied yet.
	inflight int
}

// State is a read-only copy of everything the views render.
type State struct {
	View         models.ViewState
	Status       string
	Email        string
	Turns        []models.ConversationTurn
	Draft        string
	LoginForm    models.Credentials
	RegisterForm models.RegistrationRequest
	Busy         bool
}

func NewSessionController(ctx context.Context, services *service.ClientServices, log *logger.Logger) *SessionController {
	return &SessionController{
		ctx:          ctx,
		auth:         services.AuthService,
		conversation: NewConversationController(ctx, services.ChatService, log),
		logger:       log,
		view:         models.ViewLogin,
	}
}

// Bootstrap probes the session status. Its result may move the controller
// from Login to Chat; a failure is only logged.
func (s *SessionController) Bootstrap() tea.Cmd {
	s.inflight++
	ctx, auth := s.ctx, s.auth
	return func() tea.Msg {
		status, err := auth.SessionStatus(ctx)
		return bootstrapResultMsg{status: status, err: err}
	}
}

// Login submits creds as entered. It returns nil outside the login view.
func (s *SessionController) Login(creds models.Credentials) tea.Cmd {
	if s.view != models.ViewLogin {
		s.logger.Warn().Str("view", s.view.String()).Msg("login ignored outside the login view")
		return nil
	}
	s.loginForm = creds
	s.inflight++

	ctx, auth := s.ctx, s.auth
	return func() tea.Msg {
		return loginResultMsg{email: creds.Email, err: auth.Login(ctx, creds)}
	}
}

// Register submits req as entered. It returns nil outside the register view.
func (s *SessionController) Register(req models.RegistrationRequest) tea.Cmd {
	if s.view != models.ViewRegister {
		s.logger.Warn().Str("view", s.view.String()).Msg("register ignored outside the register view")
		return nil
	}
	s.registerForm = req
	s.inflight++

	ctx, auth := s.ctx, s.auth
	return func() tea.Msg {
		return registerResultMsg{err: auth.Register(ctx, req)}
	}
}

// Logout ends the session. It returns nil outside the chat view.
func (s *SessionController) Logout() tea.Cmd {
	if s.view != models.ViewChat {
		s.logger.Warn().Str("view", s.view.String()).Msg("logout ignored outside the chat view")
		return nil
	}
	s.inflight++

	ctx, auth := s.ctx, s.auth
	return func() tea.Msg {
		message, err := auth.Logout(ctx)
		return logoutResultMsg{message: message, err: err}
	}
}

// SwitchView moves between Login and Register. The status message is kept and
// both form buffers are discarded.
func (s *SessionController) SwitchView(target models.ViewState) error {
	if s.view == models.ViewChat || target == models.ViewChat {
		return ErrInvalidTransition
	}
	if target != models.ViewLogin && target != models.ViewRegister {
		return ErrInvalidTransition
	}
	if target == s.view {
		return nil
	}

	s.view = target
	s.clearForms()
	return nil
}

// Send forwards to the conversation. It returns nil outside the chat view.
func (s *SessionController) Send(text string) tea.Cmd {
	if s.view != models.ViewChat {
		return nil
	}
	return s.conversation.Send(text)
}

// Update applies a result message produced by one of the commands above.
// Messages of other types are ignored.
func (s *SessionController) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case bootstrapResultMsg:
		s.done()
		s.applyBootstrap(msg)
	case loginResultMsg:
		s.done()
		s.applyLogin(msg)
	case registerResultMsg:
		s.done()
		s.applyRegister(msg)
	case logoutResultMsg:
		s.done()
		s.applyLogout(msg)
	case chatReplyMsg:
		s.conversation.applyReply(msg)
	}
	return nil
}

func (s *SessionController) applyBootstrap(msg bootstrapResultMsg) {
	if msg.err != nil {
		s.logger.Warn().Err(msg.err).Msg("session status probe failed")
		return
	}
	if !msg.status.LoggedIn {
		s.logger.Debug().Msg("no active session")
		return
	}
	if s.view != models.ViewLogin {
		return
	}

	s.email = msg.status.Email
	s.enterChat()
}

func (s *SessionController) applyLogin(msg loginResultMsg) {
	if msg.err != nil {
		s.status = failureStatus(msg.err, app.MsgLoginFailed, app.MsgLoginError)
		s.logFailure(msg.err, "login")
		return
	}

	s.status = app.MsgLoginSuccessful
	if s.view != models.ViewLogin {
		return
	}

	s.email = strings.TrimSpace(msg.email)
	s.enterChat()
}

func (s *SessionController) applyRegister(msg registerResultMsg) {
	if msg.err != nil {
		s.status = failureStatus(msg.err, app.MsgRegistrationFailed, app.MsgRegistrationError)
		s.logFailure(msg.err, "register")
		return
	}

	s.status = app.MsgRegistrationSuccessful
	if s.view != models.ViewRegister {
		return
	}

	s.view = models.ViewLogin
	s.clearForms()
}

func (s *SessionController) applyLogout(msg logoutResultMsg) {
	if msg.err != nil {
		s.status = failureStatus(msg.err, app.MsgLogoutFailed, app.MsgLogoutError)
		s.logFailure(msg.err, "logout")
		return
	}

	s.status = msg.message
	if s.view != models.ViewChat {
		return
	}

	s.view = models.ViewLogin
	s.email = ""
	s.conversation.Reset()
}

func (s *SessionController) done() {
	if s.inflight > 0 {
		s.inflight--
	}
}

func (s *SessionController) enterChat() {
	s.view = models.ViewChat
	s.clearForms()
	s.conversation.OnEnterChat()
	s.logger.Info().Str("email", s.email).Msg("entered chat")
}

func (s *SessionController) clearForms() {
	s.loginForm = models.Credentials{}
	s.registerForm = models.RegistrationRequest{}
}

func (s *SessionController) logFailure(err error, op string) {
	if adapter.IsTransport(err) {
		s.logger.Err(err).Str("op", op).Msg("transport failure")
		return
	}
	s.logger.Warn().Err(err).Str("op", op).Msg("rejected by service")
}

// failureStatus picks the status for a failed call: the service's message,
// the fallback when the service gave none, or the transport message when no
// response was received.
func failureStatus(err error, fallback, transport string) string {
	if text, ok := adapter.ServiceMessage(err); ok {
		return text
	}
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return fallback
	}
	return transport
}

func (s *SessionController) SetLoginForm(creds models.Credentials) {
	s.loginForm = creds
}

func (s *SessionController) SetRegisterForm(req models.RegistrationRequest) {
	s.registerForm = req
}

func (s *SessionController) Conversation() *ConversationController {
	return s.conversation
}

func (s *SessionController) View() models.ViewState {
	return s.view
}

func (s *SessionController) Status() string {
	return s.status
}

func (s *SessionController) Email() string {
	return s.email
}

// Busy reports whether a session call is still awaiting its result.
func (s *SessionController) Busy() bool {
	return s.inflight > 0
}

// Snapshot copies the current state.
func (s *SessionController) Snapshot() State {
	return State{
		View:         s.view,
		Status:       s.status,
		Email:        s.email,
		Turns:        s.conversation.Turns(),
		Draft:        s.conversation.Draft(),
		LoginForm:    s.loginForm,
		RegisterForm: s.registerForm,
		Busy:         s.inflight > 0,
	}
}
