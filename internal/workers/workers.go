package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
)

type Workers struct {
	workers []Worker
}

// Dependencies lists what the janitor maintains. Nil fields are skipped.
type Dependencies struct {
	Conversations HistoryEvictor
	Gate          Sweeper
	Health        HealthRefresher
}

// NewWorkers builds the janitor over deps on the configured schedule.
func NewWorkers(deps Dependencies, cfg *config.StructuredConfig, logger *logger.Logger) (*Workers, error) {
	var tasks []Task

	if deps.Conversations != nil {
		idleFor := cfg.Chat.HistoryIdleTTL
		tasks = append(tasks, Task{Name: "evict_idle_histories", Run: func(context.Context) int {
			return deps.Conversations.EvictIdle(idleFor)
		}})
	}
	if deps.Gate != nil {
		tasks = append(tasks, Task{Name: "sweep_gate", Run: func(context.Context) int {
			return deps.Gate.Sweep()
		}})
	}
	if deps.Health != nil {
		tasks = append(tasks, Task{Name: "refresh_health", Run: func(ctx context.Context) int {
			deps.Health.Refresh(ctx)
			return 0
		}})
	}

	janitor, err := NewJanitor(cfg.Workers.JanitorSchedule, tasks, time.Minute, logger)
	if err != nil {
		return nil, err
	}

	return &Workers{workers: []Worker{janitor}}, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
