package device

import (
	"fmt"
	"sync"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry maps rig roles to runtime device labels.
//
// Assignments come from the devices section of config.yaml at startup
// and may change at runtime during rig commissioning. Roles without an
// assignment are legal: a single-sided rig leaves the B-path roles
// unassigned and callers use ignore-missing semantics.
//
// All public methods are thread-safe.
type Registry struct {
	assignments map[Role]string
	mu          sync.RWMutex
	logger      Logger
}

// NewRegistry creates a role registry from configured assignments.
//
// Keys are role ids (e.g. "galvo_a"), values are runtime device labels
// (e.g. "Scanner:AB:33"). Unknown role ids and empty labels are skipped
// with a warning once a logger is set; they never fail construction so a
// partially miswired config still brings the service up.
func NewRegistry(assignments map[string]string) *Registry {
	r := &Registry{
		assignments: make(map[Role]string, len(assignments)),
		logger:      noopLogger{},
	}
	for roleID, label := range assignments {
		role := Role(roleID)
		if !role.IsValid() || label == "" {
			continue
		}
		r.assignments[role] = label
	}
	return r
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Label returns the device label assigned to a role.
//
// This is the lenient lookup: it never errors, returning ok=false when
// the role is unknown or unassigned.
func (r *Registry) Label(role Role) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	label, ok := r.assignments[role]
	return label, ok
}

// ResolveLabel returns the device label assigned to a role.
//
// This is the strict lookup: it returns ErrUnknownRole for roles outside
// the known set and ErrNotAssigned for known roles without a label.
func (r *Registry) ResolveLabel(role Role) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	label, ok := r.assignments[role]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotAssigned, role)
	}
	return label, nil
}

// Assign maps a role to a runtime device label.
//
// Used during rig commissioning. Returns ErrUnknownRole for roles outside
// the known set and ErrInvalidLabel for empty labels.
func (r *Registry) Assign(role Role, label string) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	if label == "" {
		return fmt.Errorf("%w: empty label for role %s", ErrInvalidLabel, role)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.assignments[role] = label
	r.logger.Info("device role assigned", "role", role, "label", label)
	return nil
}

// Unassign removes the label assignment for a role.
// Unassigning a role that has no assignment is a no-op.
func (r *Registry) Unassign(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assignments[role]; ok {
		delete(r.assignments, role)
		r.logger.Info("device role unassigned", "role", role)
	}
	return nil
}

// Assignments returns a copy of the current role -> label table.
func (r *Registry) Assignments() map[Role]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[Role]string, len(r.assignments))
	for role, label := range r.assignments {
		out[role] = label
	}
	return out
}
