package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args, feeding input on stdin, and returns stdout.
	Execute(ctx context.Context, input string, name string, args ...string) (string, error)
}
