// Package workers runs background jobs of the environment server.
// It defines the Worker interface and a Workers aggregate that starts
// every configured worker in one call.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutine and stop
// when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
