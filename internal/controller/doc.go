// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller holds the client's session and conversation state.
//
// [SessionController] owns the active view, the status message and the
// login/register form buffers. [ConversationController] owns the chat log and
// the draft. Both are single-writer aggregates: operations that talk to the
// service return a tea.Cmd that performs the call off the event loop and
// yields a result message, and all state changes happen in Update when that
// message comes back. Results arriving out of order are applied in the order
// they are received.
package controller
