package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandHandled(t *testing.T) {
	m := New()

	m.CommandHandled("!meme", OutcomeOK)
	m.CommandHandled("!meme", OutcomeOK)
	m.CommandHandled("!meme", OutcomeError)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Commands.WithLabelValues("!meme", OutcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Commands.WithLabelValues("!meme", OutcomeError)), 0)
}

func TestBackendRequest(t *testing.T) {
	m := New()

	m.BackendRequest(http.MethodGet, "/meme", http.StatusUnauthorized)

	assert.InDelta(t, 1, testutil.ToFloat64(m.BackendRequests.WithLabelValues("GET", "/meme", "401")), 0)
	assert.Len(t, m.Collectors(), 2)
}

func TestServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	m := New()
	m.CommandHandled("!hello", OutcomeOK)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- m.Serve(ctx, addr)
	}()

	var body []byte
	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer res.Body.Close()
		body, err = io.ReadAll(res.Body)
		return err == nil && res.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	assert.Contains(t, string(body), "gamerbot_commands_total")

	cancel()
	require.NoError(t, <-done)
}
