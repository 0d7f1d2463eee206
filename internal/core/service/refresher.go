package service

import (
	"context"
	"gamerbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type TokenRefresher struct {
	backend  port.TokenRefresher
	interval time.Duration
}

func NewTokenRefresher(backend port.TokenRefresher, interval time.Duration) *TokenRefresher {
	return &TokenRefresher{backend: backend, interval: interval}
}

// Run refreshes the backend token every interval until ctx is done. It returns immediately when the
// interval is not positive.
func (r *TokenRefresher) Run(ctx context.Context) {
	if r.interval <= 0 {
		log.Debug().Msg("token refresh disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		log.Debug().Dur("interval", r.interval).Msg("running token refresh timer")
		select {
		case <-ticker.C:
			err := r.backend.Refresh(ctx)
			if err != nil {
				log.Err(err).Msg("failed to refresh backend token")
				continue
			}
			log.Info().Msg("refreshed backend token")
		case <-ctx.Done():
			log.Debug().Msg("stopping token refresh")
			return
		}
	}
}

// PruneEvery prunes the throttle on every interval until ctx is done.
func PruneEvery(ctx context.Context, t *Throttle, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := t.Prune(); n > 0 {
				log.Debug().Int("pruned", n).Msg("pruned idle author limiters")
			}
		case <-ctx.Done():
			return
		}
	}
}
