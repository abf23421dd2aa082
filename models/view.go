// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ViewState identifies which of the three mutually exclusive client views is
// active. The zero value is [ViewLogin].
type ViewState int

const (
	// ViewLogin is the credentials form. It is the initial view unless the
	// bootstrap probe reports an active session.
	ViewLogin ViewState = iota
	// ViewRegister is the account creation form. Reachable only from ViewLogin.
	ViewRegister
	// ViewChat is the conversation with the Advisor. Reachable only from
	// ViewLogin (bootstrap or successful login).
	ViewChat
)

// String returns a lower-case label for v, suitable for logs.
func (v ViewState) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewChat:
		return "chat"
	default:
		return "unknown"
	}
}
