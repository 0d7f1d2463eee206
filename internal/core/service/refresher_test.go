package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockRefresher struct {
	calls atomic.Int32
	err   error
}

func (m *mockRefresher) Refresh(_ context.Context) error {
	m.calls.Add(1)
	return m.err
}

func TestTokenRefresher_Disabled(t *testing.T) {
	backend := &mockRefresher{}

	done := make(chan struct{})
	go func() {
		NewTokenRefresher(backend, 0).Run(t.Context())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return immediately when disabled")
	}
	assert.Equal(t, int32(0), backend.calls.Load())
}

func TestTokenRefresher_Run(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "refresh succeeds"},
		{name: "refresh keeps running after errors", err: errors.New("401")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			backend := &mockRefresher{err: tc.err}
			ctx, cancel := context.WithCancel(t.Context())

			done := make(chan struct{})
			go func() {
				NewTokenRefresher(backend, 5*time.Millisecond).Run(ctx)
				close(done)
			}()

			assert.Eventually(t, func() bool {
				return backend.calls.Load() >= 2
			}, time.Second, 5*time.Millisecond)

			cancel()
			<-done
		})
	}
}

func TestPruneEvery(t *testing.T) {
	th := NewThrottle(time.Millisecond, 1)
	th.Allow("u1")

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		PruneEvery(ctx, th, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		th.mutex.Lock()
		defer th.mutex.Unlock()
		return len(th.authors) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
