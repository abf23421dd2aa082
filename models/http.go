// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionStatus is the body of a successful session-status response.
type SessionStatus struct {
	// LoggedIn reports whether the ambient session credential identifies an
	// authenticated user.
	LoggedIn bool `json:"logged_in"`

	// Email of the authenticated user. Empty when LoggedIn is false or the
	// service does not report it.
	Email string `json:"email,omitempty"`
}

// MessageResponse is the generic `{ "message": "..." }` body used by the
// login, register, logout and chat operations, on success and on failure.
//
// Message is a pointer so that an absent field can be told apart from an
// empty string.
type MessageResponse struct {
	Message *string `json:"message,omitempty"`
}

// Text returns the message or an empty string when it is absent.
func (m MessageResponse) Text() string {
	if m.Message == nil {
		return ""
	}
	return *m.Message
}

// ChatRequest is the body of a chat request.
type ChatRequest struct {
	Message string `json:"message"`
}
