package shutdown

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestListenForShutdown_SignalRunsCallback(t *testing.T) {
	l := zaptest.NewLogger(t)
	notifier := make(chan os.Signal, 1)
	done := make(chan bool)

	called := false
	notifier <- syscall.SIGTERM
	ListenForShutdown(notifier, done, func() {
		called = true
		close(done)
	}, time.Second, l)

	assert.True(t, called)
}

func TestListenForShutdown_DoneWithoutSignal(t *testing.T) {
	l := zaptest.NewLogger(t)
	notifier := make(chan os.Signal, 1)
	done := make(chan bool)
	close(done)

	called := false
	ListenForShutdown(notifier, done, func() { called = true }, time.Second, l)
	assert.False(t, called)
}

func TestListenForShutdown_Timeout(t *testing.T) {
	l := zaptest.NewLogger(t)
	notifier := make(chan os.Signal, 1)
	done := make(chan bool)
	notifier <- syscall.SIGINT

	start := time.Now()
	ListenForShutdown(notifier, done, func() {}, 50*time.Millisecond, l)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
