package history

import (
	"context"
	"time"

	"github.com/openspim/spim-core/internal/property"
)

// recordTimeout bounds each history write so a slow disk cannot stall
// the accessor's observer chain.
const recordTimeout = 5 * time.Second

// Logger defines the logging interface used by the Recorder and Pruner.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Info(string, ...any) {}
func (noopLogger) Warn(string, ...any) {}

// Recorder persists property changes as they happen.
//
// It implements property.ChangeObserver; register it on the accessor
// and every successful set is written to the repository. Write failures
// are logged and dropped: history is best-effort and must never block
// or fail a property operation.
type Recorder struct {
	repo   Repository
	source string
	logger Logger
}

// NewRecorder creates a change recorder writing to repo.
//
// Each entry is tagged with the change's Origin (set per surface via
// accessor.WithOrigin); source is the fallback for changes that carry
// no origin (SourceAPI, SourceMQTT, SourceSim).
func NewRecorder(repo Repository, source string) *Recorder {
	return &Recorder{
		repo:   repo,
		source: source,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for write failures.
func (r *Recorder) SetLogger(logger Logger) {
	r.logger = logger
}

// PropertyChanged records a property change. Implements
// property.ChangeObserver.
func (r *Recorder) PropertyChanged(change property.Change) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	source := change.Origin
	if source == "" {
		source = r.source
	}

	entry := Entry{
		Role:      change.Role.String(),
		Label:     change.Label,
		Key:       change.Key.String(),
		Value:     change.Value,
		Source:    source,
		ChangedAt: change.At,
	}

	if err := r.repo.Record(ctx, entry); err != nil {
		r.logger.Warn("recording property change failed",
			"role", entry.Role,
			"key", entry.Key,
			"error", err,
		)
	}
}
