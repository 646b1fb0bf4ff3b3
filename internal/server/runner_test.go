package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_ServesAndStops(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	runner := NewRunner(handler, Config{ShutdownTimeout: time.Second}, testLogger())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- runner.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	// Cancel and wait for clean shutdown
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
}

func TestRunner_Run_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	runner := NewRunner(http.NotFoundHandler(), Config{Addr: ln.Addr().String()}, testLogger())

	err = runner.Run(context.Background())
	assert.ErrorContains(t, err, "listen")
}

func TestNewRunner_DefaultLogger(t *testing.T) {
	// Should not panic with nil logger
	runner := NewRunner(http.NotFoundHandler(), Config{}, nil)
	require.NotNil(t, runner)
	require.NotNil(t, runner.logger)
}

func TestRunner_ConfigDefaults(t *testing.T) {
	runner := NewRunner(http.NotFoundHandler(), Config{Addr: ":0"}, nil)

	require.Equal(t, ":0", runner.config.Addr)
	require.Equal(t, defaultShutdownTimeout, runner.config.ShutdownTimeout)
}
