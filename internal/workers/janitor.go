// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/robfig/cron/v3"
)

// Task is one maintenance step. Run returns the number of entries it
// removed.
type Task struct {
	Name string
	Run  func(ctx context.Context) int
}

// Janitor runs its tasks sequentially on a cron schedule. A tick is skipped
// while the previous one is still running.
type Janitor struct {
	cron    *cron.Cron
	tasks   []Task
	timeout time.Duration

	logger *logger.Logger
}

// NewJanitor parses schedule (standard cron spec or a descriptor such as
// "@every 5m") and registers the tasks. Each tick is bounded by timeout.
func NewJanitor(schedule string, tasks []Task, timeout time.Duration, log *logger.Logger) (*Janitor, error) {
	log = log.Component("janitor")
	cronLog := cronLogger{logger: log}

	j := &Janitor{
		cron: cron.New(cron.WithLogger(cronLog), cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		)),
		tasks:   tasks,
		timeout: timeout,
		logger:  log,
	}

	if _, err := j.cron.AddFunc(schedule, j.tick); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, schedule, err)
	}

	return j, nil
}

// Run starts the scheduler in its own goroutine.
func (j *Janitor) Run() {
	j.logger.Info().Int("tasks", len(j.tasks)).Msg("janitor started")
	j.cron.Start()
}

// Stop stops the scheduler and waits for a running tick.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("janitor stopped")
}

// Sweep runs every task once and returns the total number of removed
// entries.
func (j *Janitor) Sweep(ctx context.Context) int {
	total := 0
	for _, task := range j.tasks {
		removed := task.Run(ctx)
		if removed > 0 {
			j.logger.Debug().Str("task", task.Name).Int("removed", removed).Msg("janitor task done")
		}
		total += removed
	}
	return total
}

func (j *Janitor) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if removed := j.Sweep(ctx); removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("janitor sweep finished")
	}
}

// cronLogger adapts the zerolog logger to cron.Logger.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
