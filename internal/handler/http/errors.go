// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSessionCookie is logged when a request reaches a protected route
	// without the session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidJSON is logged when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
