// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
)

const defaultSweepInterval = 10 * time.Minute

type expiredIdentityPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// IdentitySweeper deletes expired disposable identities on a fixed interval.
type IdentitySweeper struct {
	purger   expiredIdentityPurger
	interval time.Duration
	logger   *logger.Logger
}

// NewIdentitySweeper creates a sweeper that runs every interval. A zero or
// negative interval defaults to 10 minutes.
func NewIdentitySweeper(purger expiredIdentityPurger, interval time.Duration, logger *logger.Logger) *IdentitySweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &IdentitySweeper{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *IdentitySweeper) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

func (s *IdentitySweeper) sweep(ctx context.Context) {
	removed, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("func", "IdentitySweeper.sweep").Msg("failed to purge expired identities")
		}
		return
	}
	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("expired identities purged")
	}
}
