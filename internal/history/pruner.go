package history

import (
	"context"
	"time"
)

// defaultPruneInterval is how often the retention sweep runs.
const defaultPruneInterval = 6 * time.Hour

// Pruner deletes history entries older than the retention window.
//
// It runs as a background sweep: once at startup, then periodically
// until the context is cancelled. Sweep failures are logged and the
// loop keeps running; retention is best-effort like the rest of the
// history store.
type Pruner struct {
	repo      Repository
	retention time.Duration
	interval  time.Duration
	logger    Logger
}

// NewPruner creates a retention sweep keeping entries younger than
// retention.
func NewPruner(repo Repository, retention time.Duration) *Pruner {
	return &Pruner{
		repo:      repo,
		retention: retention,
		interval:  defaultPruneInterval,
		logger:    noopLogger{},
	}
}

// SetLogger sets the logger for sweep results.
func (p *Pruner) SetLogger(logger Logger) {
	p.logger = logger
}

// Run blocks until the context is cancelled, pruning immediately and
// then once per interval.
func (p *Pruner) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.prune(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

// prune runs one retention sweep.
func (p *Pruner) prune(ctx context.Context) {
	deleted, err := p.repo.Prune(ctx, p.retention)
	if err != nil {
		p.logger.Warn("pruning property history failed", "error", err)
		return
	}
	if deleted > 0 {
		p.logger.Info("pruned property history",
			"deleted", deleted,
			"retention", p.retention,
		)
	}
}
