// Package workers runs the background maintenance of the server.
//
// Workers aggregates everything implementing [Worker]. The only worker today
// is the [Janitor], a robfig/cron scheduler that evicts idle chat histories,
// sweeps expired gate bans and refreshes the gRPC health status.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Run must not block: implementations spawn their own goroutines. Stop
// blocks until running jobs have finished.
type Worker interface {
	Run()
	Stop()
}

// HistoryEvictor drops conversation histories idle for longer than idleFor
// and returns how many were removed.
type HistoryEvictor interface {
	EvictIdle(idleFor time.Duration) int
}

// Sweeper removes expired entries and returns how many were removed.
type Sweeper interface {
	Sweep() int
}

// HealthRefresher probes dependencies and publishes the serving status.
type HealthRefresher interface {
	Refresh(ctx context.Context)
}
