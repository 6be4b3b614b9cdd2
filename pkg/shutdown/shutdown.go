package shutdown

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// CreateGracefulShutdownChannel returns a channel notified on SIGINT or SIGTERM
func CreateGracefulShutdownChannel() chan os.Signal {
	gracefulShutdownNotifier := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdownNotifier, syscall.SIGINT, syscall.SIGTERM)
	return gracefulShutdownNotifier
}

// ListenForShutdown blocks until a signal arrives or done is closed. On a signal it runs
// the callback and then waits up to timeout for done to be closed before returning.
func ListenForShutdown(
	notifier chan os.Signal,
	done chan bool,
	callback func(),
	timeout time.Duration,
	l *zap.Logger,
) {
	select {
	case sig := <-notifier:
		l.Sugar().Infow("Received shutdown signal", "signal", sig.String())
		callback()
	case <-done:
		l.Sugar().Infow("Process completed, shutting down")
		return
	}

	select {
	case <-done:
		l.Sugar().Infow("Graceful shutdown complete")
	case <-time.After(timeout):
		l.Sugar().Warnw("Graceful shutdown timed out", "timeout", timeout)
	}
}
