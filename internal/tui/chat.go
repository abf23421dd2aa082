// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/calmora/internal/controller"
	"github.com/MKhiriev/calmora/models"
)

const (
	chatDefaultWidth  = 80
	chatDefaultHeight = 16
	noteTTL           = 2 * time.Second
)

// ChatModel renders the conversation log in a scrollable viewport with the
// draft input below it. The draft lives in the controller; the input mirrors
// it in both directions.
type ChatModel struct {
	ctrl     *controller.SessionController
	input    textinput.Model
	viewport viewport.Model
	markdown *markdownRenderer

	note      string
	turnCount int
}

func NewChatModel(ctrl *controller.SessionController, markdownStyle string) *ChatModel {
	input := textinput.New()
	input.Placeholder = "Type your message"
	input.CharLimit = 2000
	input.Width = chatDefaultWidth - 4
	input.Focus()

	return &ChatModel{
		ctrl:     ctrl,
		input:    input,
		viewport: viewport.New(chatDefaultWidth, chatDefaultHeight),
		markdown: newMarkdownRenderer(markdownStyle),
	}
}

// Update handles:
//   - enter          sends the draft.
//   - ctrl+l         logs out.
//   - ctrl+y         copies the latest Advisor reply.
//   - up/down, pgup/pgdown scroll the log.
//
// Everything else edits the draft.
func (m *ChatModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case copiedMsg:
		m.note = "Copied to clipboard."
		return clearNoteAfter(noteTTL)
	case copyFailedMsg:
		m.note = fmt.Sprintf("Copy failed: %v", msg.err)
		return clearNoteAfter(noteTTL)
	case clearNoteMsg:
		m.note = ""
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter):
			return m.ctrl.Conversation().SendDraft()
		case key.Matches(msg, keys.logout):
			return m.ctrl.Logout()
		case key.Matches(msg, keys.copy):
			return m.cmdCopy()
		case key.Matches(msg, keys.up), key.Matches(msg, keys.down):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.ctrl.Conversation().SetDraft(m.input.Value())
	}
	return cmd
}

// Sync pulls the draft and the log from the controller. The viewport follows
// the newest turn whenever the log grows.
func (m *ChatModel) Sync() {
	conv := m.ctrl.Conversation()
	if draft := conv.Draft(); m.input.Value() != draft {
		m.input.SetValue(draft)
	}

	turns := conv.Turns()
	m.viewport.SetContent(m.renderTurns(turns))
	if len(turns) != m.turnCount {
		m.turnCount = len(turns)
		m.viewport.GotoBottom()
	}
}

// Resize fits the viewport into a terminal of the given size, leaving room
// for the page frame and the input line.
func (m *ChatModel) Resize(width, height int) {
	m.viewport.Width = max(width-8, 20)
	m.viewport.Height = max(height-14, 3)
	m.input.Width = max(width-12, 10)
	m.Sync()
}

func (m *ChatModel) Reset() {
	m.note = ""
	m.turnCount = 0
	m.input.SetValue("")
	m.viewport.GotoTop()
}

func (m *ChatModel) Title() string {
	return "CALMORA · CHAT"
}

func (m *ChatModel) HotKeys() string {
	return "enter: send │ ↑/↓: scroll │ ctrl+y: copy reply │ ctrl+l: log out"
}

func (m *ChatModel) Body(state controller.State) string {
	var b strings.Builder

	if state.Email != "" {
		b.WriteString("Signed in as ")
		b.WriteString(state.Email)
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n\n> ")
	b.WriteString(m.input.View())

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.note))
	}

	return b.String()
}

func (m *ChatModel) renderTurns(turns []models.ConversationTurn) string {
	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(senderStyle.Render(string(turn.Sender) + ":"))
		if turn.Sender == models.SenderAdvisor {
			b.WriteString("\n")
			b.WriteString(m.markdown.render(turn.Text, m.viewport.Width))
			continue
		}
		b.WriteString(" ")
		b.WriteString(turn.Text)
	}
	return b.String()
}

func (m *ChatModel) cmdCopy() tea.Cmd {
	text, ok := m.ctrl.Conversation().LastAdvisorTurn()
	if !ok {
		return func() tea.Msg { return copyFailedMsg{err: ErrNothingToCopy} }
	}

	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clearNoteAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoteMsg{}
	})
}
