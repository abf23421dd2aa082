package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/calmora/internal/controller"
	"github.com/MKhiriev/calmora/models"
)

// page is one of the three views.
type page interface {
	Update(msg tea.Msg) tea.Cmd
	Reset()
	Title() string
	HotKeys() string
	Body(state controller.State) string
}

// RootModel is the TUI router:
// 1) feeds every message to the session controller first
// 2) handles global hotkeys (quit, build info)
// 3) delegates the message to the page of the controller's current view
// 4) resets form pages whenever the view changes
type RootModel struct {
	ctrl *controller.SessionController

	login    *LoginModel
	register *RegisterModel
	chat     *ChatModel

	lastView      models.ViewState
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel builds the pages around ctrl. The starting page follows the
// controller's view, so a bootstrap applied beforehand opens the chat.
func NewRootModel(ctrl *controller.SessionController, buildInfo models.AppBuildInfo, markdownStyle string) RootModel {
	r := RootModel{
		ctrl:      ctrl,
		login:     NewLoginModel(ctrl),
		register:  NewRegisterModel(ctrl),
		chat:      NewChatModel(ctrl, markdownStyle),
		lastView:  ctrl.View(),
		buildInfo: buildInfo,
	}
	r.chat.Sync()
	return r
}

func (r RootModel) Init() tea.Cmd {
	return textinput.Blink
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		r.chat.Resize(size.Width, size.Height)
	}

	cmds := []tea.Cmd{r.ctrl.Update(msg)}
	r.syncView()

	cmds = append(cmds, r.activePage().Update(msg))
	r.syncView()
	r.chat.Sync()

	return r, tea.Batch(cmds...)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	state := r.ctrl.Snapshot()
	p := r.activePage()
	return appStyle.Render(renderPage(p.Title(), p.Body(state), state.Status, p.HotKeys()))
}

func (r RootModel) activePage() page {
	switch r.ctrl.View() {
	case models.ViewRegister:
		return r.register
	case models.ViewChat:
		return r.chat
	default:
		return r.login
	}
}

// syncView discards the form inputs when the controller changed view.
func (r *RootModel) syncView() {
	view := r.ctrl.View()
	if view == r.lastView {
		return
	}

	r.login.Reset()
	r.register.Reset()
	if view != models.ViewChat {
		r.chat.Reset()
	}
	r.lastView = view
}
