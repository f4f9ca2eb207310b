// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner executes a single recipe line as a subprocess.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Runner interface {
	// Run executes one command line, blocking until it exits, and returns
	// its exit code. Standard output and error pass through to the invoking
	// environment. The error is reserved for failures to start the command
	// at all; a command that ran and exited nonzero is not an error here.
	Run(ctx context.Context, commandLine string) (int, error)
}
