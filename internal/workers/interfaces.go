// Package workers runs the client's background maintenance jobs next to the
// interactive session. A Worker blocks until its context is cancelled.
package workers

import "context"

// Worker is a background job. Run must return once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
