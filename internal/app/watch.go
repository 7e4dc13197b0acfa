package app

import (
	"context"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/infrastructure/ports"
)

// runGate executes the gate once, and in watch mode keeps re-running it on
// artifact changes until interrupted. The returned exit code is the last
// completed run's code; single-shot mode is the contract CI relies on.
func runGate(ctx context.Context, watch bool, artifact string, debounce time.Duration, logger ports.Logger, run func(context.Context) int) int {
	var last atomic.Int32
	last.Store(int32(run(ctx)))

	if !watch {
		return int(last.Load())
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := filesystem.NewWatcher(artifact, debounce, logger, func() {
		last.Store(int32(run(ctx)))
	})
	if err != nil {
		logger.Error("failed to watch artifact", "path", artifact, "error", err)
		return 1
	}
	watcher.Start()
	defer watcher.Stop()

	logger.Info("watching artifact for changes", "path", artifact)
	<-ctx.Done()
	logger.Info("shutting down")
	return int(last.Load())
}
