package property

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/openspim/spim-core/internal/core"
	"github.com/openspim/spim-core/internal/device"
)

// Change describes a successful property set.
//
// Observers receive the value as the wire string actually written, so
// history, MQTT state, and telemetry all see exactly what the runtime
// saw. Origin names the surface that drove the set (see WithOrigin);
// it is empty on an accessor without an origin.
type Change struct {
	Role   device.Role
	Label  string
	Key    Key
	Value  string
	Origin string
	At     time.Time
}

// ChangeObserver receives a payload-carrying event for every successful
// property set. Unlike Listeners, observers are wired once at startup
// (history recorder, MQTT bridge, WebSocket hub, telemetry) and are not
// removable.
type ChangeObserver interface {
	PropertyChanged(change Change)
}

// Accessor provides typed, never-failing access to device properties.
//
// It resolves rig roles to runtime labels, translates symbolic keys and
// values to wire strings, and delegates to the runtime core. Failures
// go to the injected Reporter; operations always return normally with a
// zero default.
//
// All methods are safe for concurrent use.
type Accessor struct {
	devices  *device.Registry
	runtime  core.Core
	reporter Reporter
	origin   string
	state    *accessorState
}

// accessorState holds the listener and observer registrations shared by
// an accessor and all its WithOrigin views.
type accessorState struct {
	listeners  []Listener
	listenerMu sync.Mutex

	observers  []ChangeObserver
	observerMu sync.RWMutex
}

// NewAccessor creates a property accessor.
//
// All three collaborators are required: the role registry resolves
// devices, the runtime core executes property access, and the reporter
// receives failures. Pass NewLogReporter(log) for production use.
func NewAccessor(devices *device.Registry, runtime core.Core, reporter Reporter) *Accessor {
	return &Accessor{
		devices:  devices,
		runtime:  runtime,
		reporter: reporter,
		state:    &accessorState{},
	}
}

// WithOrigin returns a view of the accessor whose changes carry the
// given origin (e.g. "api", "mqtt"). The view shares the underlying
// listener and observer registrations, so each surface gets its own
// tagged handle while events still fan out to every registered
// observer.
func (a *Accessor) WithOrigin(origin string) *Accessor {
	return &Accessor{
		devices:  a.devices,
		runtime:  a.runtime,
		reporter: a.reporter,
		origin:   origin,
		state:    a.state,
	}
}

// AddObserver registers a change observer.
// Observers are invoked synchronously, in registration order, after
// every successful set.
func (a *Accessor) AddObserver(o ChangeObserver) {
	if o == nil {
		return
	}
	a.state.observerMu.Lock()
	defer a.state.observerMu.Unlock()
	a.state.observers = append(a.state.observers, o)
}

// Has reports whether the device filling a role exposes the property.
//
// Unassigned role with ignoreMissing=true: returns false silently.
// Unassigned role with ignoreMissing=false: reported, returns false.
func (a *Accessor) Has(role device.Role, key Key, ignoreMissing bool) bool {
	label, ok := a.resolve(role, ignoreMissing)
	if !ok {
		return false
	}
	name, ok := a.wireName(key)
	if !ok {
		return false
	}
	return a.runtime.HasProperty(label, name)
}

// GetString reads a property value as its raw wire string.
// Failures are reported and default to "".
func (a *Accessor) GetString(role device.Role, key Key, ignoreMissing bool) string {
	label, ok := a.resolve(role, ignoreMissing)
	if !ok {
		return ""
	}
	name, ok := a.wireName(key)
	if !ok {
		return ""
	}

	value, err := a.runtime.GetProperty(label, name)
	if err != nil {
		a.reporter.Report(fmt.Errorf("get %s on %s (%s): %w", name, role, label, err))
		return ""
	}
	return value
}

// GetInt reads a property value as an integer.
//
// Parsing is locale-tolerant: decimal strings with either "." or ","
// separators are rounded. Failures are reported and default to 0. An
// empty value defaults to 0 silently under ignoreMissing: a present but
// blank property is treated like a missing one.
func (a *Accessor) GetInt(role device.Role, key Key, ignoreMissing bool) int {
	label, ok := a.resolve(role, ignoreMissing)
	if !ok {
		return 0
	}
	name, ok := a.wireName(key)
	if !ok {
		return 0
	}

	raw, err := a.runtime.GetProperty(label, name)
	if err != nil {
		a.reporter.Report(fmt.Errorf("get %s on %s (%s): %w", name, role, label, err))
		return 0
	}
	if raw == "" {
		if !ignoreMissing {
			a.reporter.Report(fmt.Errorf("get %s on %s (%s): %w: empty value", name, role, label, ErrParseFailed))
		}
		return 0
	}

	n, err := parseIntTolerant(raw)
	if err != nil {
		a.reporter.Report(fmt.Errorf("get %s on %s (%s): %w", name, role, label, err))
		return 0
	}
	return n
}

// GetFloat reads a property value as a float.
//
// Parsing is locale-tolerant: both "." and "," decimal separators are
// accepted. Failures are reported and default to 0. An empty value
// defaults to 0 silently under ignoreMissing, like GetInt.
func (a *Accessor) GetFloat(role device.Role, key Key, ignoreMissing bool) float64 {
	label, ok := a.resolve(role, ignoreMissing)
	if !ok {
		return 0
	}
	name, ok := a.wireName(key)
	if !ok {
		return 0
	}

	raw, err := a.runtime.GetProperty(label, name)
	if err != nil {
		a.reporter.Report(fmt.Errorf("get %s on %s (%s): %w", name, role, label, err))
		return 0
	}
	if raw == "" {
		if !ignoreMissing {
			a.reporter.Report(fmt.Errorf("get %s on %s (%s): %w: empty value", name, role, label, ErrParseFailed))
		}
		return 0
	}

	f, err := parseFloatTolerant(raw)
	if err != nil {
		a.reporter.Report(fmt.Errorf("get %s on %s (%s): %w", name, role, label, err))
		return 0
	}
	return f
}

// SetString sets a property to a raw wire string.
// Failures are reported; the call always returns normally.
func (a *Accessor) SetString(role device.Role, key Key, value string, ignoreMissing bool) {
	label, ok := a.resolve(role, ignoreMissing)
	if !ok {
		return
	}
	name, ok := a.wireName(key)
	if !ok {
		return
	}

	if err := a.runtime.SetProperty(label, name, value); err != nil {
		a.reporter.Report(fmt.Errorf("set %s=%q on %s (%s): %w", name, value, role, label, err))
		return
	}
	a.emitChange(role, label, key, value)
}

// SetValue sets a property to an enumerated value.
// An unknown value is reported and nothing is written.
func (a *Accessor) SetValue(role device.Role, key Key, value Value, ignoreMissing bool) {
	wire, ok := value.WireString()
	if !ok {
		a.reporter.Report(fmt.Errorf("%w: %s", ErrUnknownValue, value))
		return
	}
	a.SetString(role, key, wire, ignoreMissing)
}

// SetInt sets an integer-valued property.
func (a *Accessor) SetInt(role device.Role, key Key, value int, ignoreMissing bool) {
	label, ok := a.resolve(role, ignoreMissing)
	if !ok {
		return
	}
	name, ok := a.wireName(key)
	if !ok {
		return
	}

	if err := a.runtime.SetPropertyInt(label, name, value); err != nil {
		a.reporter.Report(fmt.Errorf("set %s=%d on %s (%s): %w", name, value, role, label, err))
		return
	}
	a.emitChange(role, label, key, fmt.Sprintf("%d", value))
}

// SetFloat sets a float-valued property.
func (a *Accessor) SetFloat(role device.Role, key Key, value float64, ignoreMissing bool) {
	label, ok := a.resolve(role, ignoreMissing)
	if !ok {
		return
	}
	name, ok := a.wireName(key)
	if !ok {
		return
	}

	if err := a.runtime.SetPropertyFloat(label, name, value); err != nil {
		a.reporter.Report(fmt.Errorf("set %s=%v on %s (%s): %w", name, value, role, label, err))
		return
	}
	a.emitChange(role, label, key, formatFloat(value))
}

// resolve maps a role to its runtime label.
//
// An unassigned role is silent when ignoreMissing is set; every other
// failure (including unknown roles) is always reported.
func (a *Accessor) resolve(role device.Role, ignoreMissing bool) (string, bool) {
	label, err := a.devices.ResolveLabel(role)
	if err != nil {
		if ignoreMissing && errors.Is(err, device.ErrNotAssigned) {
			return "", false
		}
		a.reporter.Report(err)
		return "", false
	}
	return label, true
}

// wireName maps a key to its wire-level property name, reporting
// unknown keys.
func (a *Accessor) wireName(key Key) (string, bool) {
	name, ok := key.WireName()
	if !ok {
		a.reporter.Report(fmt.Errorf("%w: %s", ErrUnknownKey, key))
		return "", false
	}
	return name, ok
}

// emitChange delivers a change event to every registered observer.
// Observer panics are reported and do not affect other observers.
func (a *Accessor) emitChange(role device.Role, label string, key Key, value string) {
	change := Change{
		Role:   role,
		Label:  label,
		Key:    key,
		Value:  value,
		Origin: a.origin,
		At:     time.Now().UTC(),
	}

	a.state.observerMu.RLock()
	snapshot := make([]ChangeObserver, len(a.state.observers))
	copy(snapshot, a.state.observers)
	a.state.observerMu.RUnlock()

	for _, o := range snapshot {
		a.emitOne(o, change)
	}
}

// emitOne invokes a single observer with panic isolation.
func (a *Accessor) emitOne(o ChangeObserver, change Change) {
	defer func() {
		if r := recover(); r != nil {
			a.reporter.Report(fmt.Errorf("property: observer panic: %v", r))
		}
	}()
	o.PropertyChanged(change)
}
