// Package server runs the development stub of the Calmora service.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
