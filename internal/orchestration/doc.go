// Package orchestration runs a plan of engine operations concurrently, pairs
// every engine result with its exact counterpart and aggregates the outcome
// into an exit code. It decouples business logic from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
