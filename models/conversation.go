// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Sender attributes a [ConversationTurn] to one side of the dialogue.
type Sender string

const (
	// SenderUser marks turns typed by the local user.
	SenderUser Sender = "You"
	// SenderAdvisor marks turns produced by the remote responder, including
	// the synthetic greeting and error placeholders.
	SenderAdvisor Sender = "Advisor"
)

// ConversationTurn is one entry of the chat log. The log is append-only and
// its order is the display order.
type ConversationTurn struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// UserTurn builds a turn attributed to [SenderUser].
func UserTurn(text string) ConversationTurn {
	return ConversationTurn{Sender: SenderUser, Text: text}
}

// AdvisorTurn builds a turn attributed to [SenderAdvisor].
func AdvisorTurn(text string) ConversationTurn {
	return ConversationTurn{Sender: SenderAdvisor, Text: text}
}
