// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end started once the initial view is known.
type UI interface {
	// Run renders the controller's current view and blocks until the user
	// quits or ctx is done.
	Run(ctx context.Context) error
}
