// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It resolves the initial view with a session-status probe and then hands
// the terminal over to the UI for the rest of the process lifetime.
package client
