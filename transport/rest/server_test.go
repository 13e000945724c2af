package rest

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRouter_Ping(t *testing.T) {
	// Given: a router with a dummy websocket handler
	router := NewRouter(testLogger(), http.NotFoundHandler())

	// When: /ping is requested
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Then: pong is returned
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestRouter_WebSocketRoute(t *testing.T) {
	// Given: a router whose websocket handler records the call
	called := false
	ws := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})
	router := NewRouter(testLogger(), ws)

	// When: /ws is requested
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ws", nil))

	// Then: the request reaches the websocket handler
	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := NewRouter(testLogger(), http.NotFoundHandler())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/ping", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	// Given: a free local port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// When: the server is started and the context cancelled
	go func() {
		done <- Start(ctx, addr, NewRouter(testLogger(), http.NotFoundHandler()))
	}()

	require.Eventually(t, func() bool {
		resp, getErr := http.Get("http://" + addr + "/ping") //nolint: noctx // test helper
		if getErr != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()

	// Then: Start returns without error
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
