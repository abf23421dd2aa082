// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Calmora service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]) that carries the session through an explicit
// cookie jar ([SessionJar]) instead of a bearer token.
//
// Failures come in two tiers. A response that was received with a non-2xx
// status is a [*ResponseError] carrying the body's message; everything else
// (dial errors, timeouts, malformed bodies) wraps [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/calmora/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Calmora
// service. The session credential is attached by the implementation on
// every call; callers never see it.
type ServerAdapter interface {
	// SessionStatus reports whether the ambient session is authenticated.
	SessionStatus(ctx context.Context) (models.SessionStatus, error)

	// Login authenticates with email and password. The success body is
	// ignored; the session is established through the cookie the service
	// sets.
	Login(ctx context.Context, creds models.Credentials) error

	// Register creates an account. It never authenticates the session.
	Register(ctx context.Context, req models.RegistrationRequest) error

	// Logout ends the session and returns the service's confirmation text.
	Logout(ctx context.Context) (string, error)

	// Chat sends one user message and returns the responder's reply.
	Chat(ctx context.Context, message string) (string, error)
}
