// Package http implements the development stub of the Calmora service.
//
// It exposes the session-status, register, login, logout and chat endpoints
// over chi. Sessions are carried in an HttpOnly cookie; request tracing,
// access logging and response compression are handled by middleware before
// requests reach the service layer.
package http
