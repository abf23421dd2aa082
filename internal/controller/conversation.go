package controller

import (
	"context"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/calmora/internal/adapter"
	"github.com/MKhiriev/calmora/internal/app"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/service"
	"github.com/MKhiriev/calmora/models"
)

// ConversationController owns the ordered chat log and the draft input. It
// accepts sends only between OnEnterChat and Reset.
type ConversationController struct {
	ctx    context.Context
	chat   service.ClientChatService
	logger *logger.Logger

	turns  []models.ConversationTurn
	draft  string
	active bool

	// epoch is bumped by Reset; replies carrying an older epoch are dropped.
	epoch uint64
}

func NewConversationController(ctx context.Context, chat service.ClientChatService, log *logger.Logger) *ConversationController {
	return &ConversationController{
		ctx:    ctx,
		chat:   chat,
		logger: log,
	}
}

// OnEnterChat activates the conversation and seeds the greeting when the log
// is empty. Calling it again with a non-empty log changes nothing.
func (c *ConversationController) OnEnterChat() {
	c.active = true
	if len(c.turns) == 0 {
		c.turns = append(c.turns, models.AdvisorTurn(app.MsgChatGreeting))
	}
}

// Reset empties the log, deactivates the conversation and invalidates every
// reply still in flight.
func (c *ConversationController) Reset() {
	c.turns = nil
	c.draft = ""
	c.active = false
	c.epoch++
}

// Send appends text as the user's turn and returns the command that delivers
// it. Blank text, or a send outside the chat view, returns nil and changes
// nothing. Sends are not serialized: every call is dispatched on its own.
func (c *ConversationController) Send(text string) tea.Cmd {
	if !c.active || strings.TrimSpace(text) == "" {
		return nil
	}

	c.turns = append(c.turns, models.UserTurn(text))

	ctx, chat, epoch := c.ctx, c.chat, c.epoch
	return func() tea.Msg {
		reply, err := chat.Send(ctx, text)
		return chatReplyMsg{epoch: epoch, reply: reply, err: err}
	}
}

// SendDraft sends the current draft.
func (c *ConversationController) SendDraft() tea.Cmd {
	return c.Send(c.draft)
}

func (c *ConversationController) SetDraft(text string) {
	c.draft = text
}

func (c *ConversationController) Draft() string {
	return c.draft
}

// Turns returns a copy of the log in display order.
func (c *ConversationController) Turns() []models.ConversationTurn {
	return slices.Clone(c.turns)
}

// LastAdvisorTurn returns the text of the most recent Advisor turn.
func (c *ConversationController) LastAdvisorTurn() (string, bool) {
	for i := len(c.turns) - 1; i >= 0; i-- {
		if c.turns[i].Sender == models.SenderAdvisor {
			return c.turns[i].Text, true
		}
	}
	return "", false
}

func (c *ConversationController) Active() bool {
	return c.active
}

// applyReply appends the outcome of one send. A received reply, or a
// service error carrying a message, clears the draft; anything else appends
// the placeholder and keeps the draft.
func (c *ConversationController) applyReply(msg chatReplyMsg) {
	if msg.epoch != c.epoch || !c.active {
		c.logger.Debug().Uint64("epoch", msg.epoch).Msg("dropping chat reply for a closed conversation")
		return
	}

	if msg.err == nil {
		c.turns = append(c.turns, models.AdvisorTurn(msg.reply))
		c.draft = ""
		return
	}

	if text, ok := adapter.ServiceMessage(msg.err); ok {
		c.logger.Warn().Err(msg.err).Msg("chat rejected by service")
		c.turns = append(c.turns, models.AdvisorTurn(text))
		c.draft = ""
		return
	}

	c.logger.Err(msg.err).Msg("chat request failed")
	c.turns = append(c.turns, models.AdvisorTurn(app.MsgChatUnavailable))
}
