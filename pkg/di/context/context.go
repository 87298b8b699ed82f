package shortcontext

import (
	"context"
	"os/signal"
	"syscall"
)

// New returns the root context for the process, cancelled on SIGINT/SIGTERM.
func New() (context.Context, func()) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
}
