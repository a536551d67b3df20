package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	startErr  error
	block     chan struct{}
	shutdowns int
}

func (f *fakeServer) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.block
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.shutdowns++
	close(f.block)
	return nil
}

func TestRun_StartFailureIsReturned(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := &fakeServer{startErr: errors.New("listen tcp :8080: bind: address already in use")}

	err := run(context.Background(), logger, srv)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
	assert.Zero(t, srv.shutdowns)
}

func TestRun_ShutdownOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := &fakeServer{block: make(chan struct{})}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, run(ctx, logger, srv))
	assert.Equal(t, 1, srv.shutdowns)
}

func TestServeCommand_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)

	t.Setenv("SERVER_PORT", port)
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "serve.db"))

	rootCmd.SetArgs([]string{"serve"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server failed")
}
