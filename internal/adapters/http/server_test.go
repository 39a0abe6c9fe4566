package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/vinhson/vinhson-web/internal/adapters/http"
	"github.com/vinhson/vinhson-web/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// startServer serves handler on a free loopback port and returns the
// server with its base URL. Shutdown is registered as cleanup.
func startServer(t *testing.T, handler http.Handler) (*adapthttp.Server, string) {
	t.Helper()

	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	s := adapthttp.NewServer(cfg, handler, discardLogger())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, s.Shutdown(ctx))
		assert.NoError(t, <-errCh, "Serve returns nil after graceful shutdown")
	})

	require.Eventually(t, func() bool { return s.Addr() == ln.Addr().String() }, time.Second, 5*time.Millisecond)
	return s, "http://" + ln.Addr().String()
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil)

	require.NotNil(t, s)
}

func TestServer_AddrBeforeStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
		want string
	}{
		{name: "ipv4", host: "127.0.0.1", want: "127.0.0.1:3000"},
		{name: "all interfaces", host: "", want: ":3000"},
		{name: "ipv6 is bracketed", host: "::1", want: "[::1]:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: 3000}, http.NotFoundHandler(), discardLogger())
			assert.Equal(t, tt.want, s.Addr())
		})
	}
}

func TestServer_ServesPages(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, `<html lang="vi"><title>Vĩnh Sơn</title>`+r.URL.Path+`</html>`)
	})

	_, base := startServer(t, handler)

	resp, err := http.Get(base + "/vi/gioi-thieu")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Vĩnh Sơn")
	assert.Contains(t, string(body), "/vi/gioi-thieu")
}

func TestServer_RejectsOversizedHeaders(t *testing.T) {
	t.Parallel()

	_, base := startServer(t, http.NotFoundHandler())

	req, err := http.NewRequest(http.MethodGet, base+"/vi", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Cookie", "preview="+strings.Repeat("x", 100<<10))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestHeaderFieldsTooLarge, resp.StatusCode)
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), discardLogger())

	err = s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}

func TestServer_ShutdownDefaultTimeout(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	require.Eventually(t, func() bool { return s.Addr() != "127.0.0.1:0" }, time.Second, 5*time.Millisecond)

	// No deadline on the context: the default timeout applies.
	require.NoError(t, s.Shutdown(context.Background()))
	require.NoError(t, <-errCh)
}
