// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution and returns immediately; workers spawn
// their goroutines internally. Stop requests shutdown and blocks until the
// worker's goroutine has exited.
type Worker interface {
	Run()
	Stop()
}
