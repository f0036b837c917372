// Package worker runs the background sweep that re-attempts
// classification of usage records still waiting for a verdict.
package worker

import (
	"context"
	"log"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/being-saiful/productivity-tracker1/internal/repository"
	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

const (
	DefaultInterval    = time.Minute
	DefaultBatchSize   = 20
	DefaultMaxAttempts = 10

	recordTimeout = 30 * time.Second
)

// Resolver re-runs the full remote-plus-heuristic classification for
// one record.
type Resolver interface {
	ResolveRecord(ctx context.Context, rec *entity.UsageRecord) error
}

type Sweeper struct {
	usageRepo   repository.UsageRepositoryI
	resolver    Resolver
	logger      *slog.Logger
	interval    time.Duration
	batchSize   int
	maxAttempts int

	running atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

type SweeperOpts struct {
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
}

func NewSweeper(usageRepo repository.UsageRepositoryI, resolver Resolver, logger *slog.Logger, opts SweeperOpts) *Sweeper {
	if usageRepo == nil || resolver == nil {
		log.Fatal("on sweeper provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	return &Sweeper{
		usageRepo:   usageRepo,
		resolver:    resolver,
		logger:      logger,
		interval:    opts.Interval,
		batchSize:   opts.BatchSize,
		maxAttempts: opts.MaxAttempts,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start runs one sweep immediately, then one per interval, until Stop.
func (s *Sweeper) Start() {
	go func() {
		defer close(s.done)
		s.Sweep(context.Background())
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(context.Background())
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

// Sweep selects one batch of eligible records and re-classifies them
// sequentially. A tick that arrives while the previous sweep is still
// running is skipped, so no record is ever processed by two sweeps at
// once and attempt counters bump at most once per pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debug("previous sweep still running, skipping tick")
		return
	}
	defer s.running.Store(false)

	pending, err := s.usageRepo.ListRetryable(ctx, time.Now(), s.maxAttempts, s.batchSize)
	if err != nil {
		s.logger.Error("classification sweep failed to list records", slog.String("error", err.Error()))
		return
	}
	for _, rec := range pending {
		recCtx, cancel := context.WithTimeout(ctx, recordTimeout)
		err := s.resolver.ResolveRecord(recCtx, rec)
		cancel()
		if err != nil {
			// One record failing must not abort the batch
			s.logger.Warn("sweep classify error",
				slog.String("app", rec.AppName),
				slog.String("date", rec.Date),
				slog.String("error", err.Error()))
		}
	}
}
