package parallel

import (
	"time"

	"go.uber.org/zap"
)

// RunOptions configures a Coordinator. The zero value behaves like
// DefaultRunOptions: a nil Logger is replaced by a no-op logger and a
// zero RoundTimeout sets no deadline.
type RunOptions struct {
	// Logger receives structured round-transition and send/recv
	// tracing. Defaults to a no-op logger.
	Logger *zap.Logger
	// RoundTimeout bounds each round's Send/Recv pair. Zero means no
	// per-round deadline beyond the caller's own context.
	RoundTimeout time.Duration
}

// DefaultRunOptions returns a RunOptions with a no-op logger and no
// round timeout.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Logger:       zap.NewNop(),
		RoundTimeout: 0,
	}
}

func (o RunOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
