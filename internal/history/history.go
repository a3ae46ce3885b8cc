package history

import (
	"context"
	"errors"
	"time"
)

// Change sources recorded with each entry.
const (
	// SourceAPI marks changes made through the HTTP API.
	SourceAPI = "api"

	// SourceMQTT marks changes made through the MQTT command bridge.
	SourceMQTT = "mqtt"

	// SourceSim marks changes made by the simulation runtime itself.
	SourceSim = "sim"
)

// Domain errors for the history package.
var (
	// ErrInvalidEntry is returned when an entry is missing required fields.
	ErrInvalidEntry = errors.New("history: invalid entry")
)

// Entry is one recorded property change.
type Entry struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Label     string    `json:"label"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Source    string    `json:"source"`
	ChangedAt time.Time `json:"changed_at"`
}

// Repository is the storage contract for property history.
//
// Implementations must be safe for concurrent use.
type Repository interface {
	// Record persists a property change entry.
	Record(ctx context.Context, entry Entry) error

	// GetByRole returns recent entries for a device role, newest first.
	// limit <= 0 uses the default; oversized limits are clamped.
	GetByRole(ctx context.Context, role string, limit int) ([]Entry, error)

	// Prune deletes entries older than the given duration and returns
	// the number of rows removed.
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}
