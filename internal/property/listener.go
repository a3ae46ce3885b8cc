package property

import "fmt"

// Listener is notified when property-backed state should be refreshed.
//
// Listeners carry no payload: they are a coarse "something changed,
// re-read what you care about" signal, typically driven after a batch
// of sets. For per-change payloads, use a ChangeObserver instead.
type Listener interface {
	PropertiesChanged()
}

// ListenerFunc adapts a function to the Listener interface.
//
// Note: each ListenerFunc value wraps a distinct function value, so
// RemoveListener only works with the same *stored* adapter, not a fresh
// wrap of the same function. Prefer struct-based listeners when removal
// matters.
type ListenerFunc func()

// PropertiesChanged calls f().
func (f ListenerFunc) PropertiesChanged() {
	f()
}

// AddListener appends a listener to the notification list.
//
// Listeners are invoked in registration order. Duplicates are allowed;
// a listener registered twice is invoked twice.
func (a *Accessor) AddListener(l Listener) {
	if l == nil {
		return
	}
	a.state.listenerMu.Lock()
	defer a.state.listenerMu.Unlock()
	a.state.listeners = append(a.state.listeners, l)
}

// RemoveListener removes the first registered listener equal to l.
// Removing a listener that was never registered is a no-op.
func (a *Accessor) RemoveListener(l Listener) {
	a.state.listenerMu.Lock()
	defer a.state.listenerMu.Unlock()
	for i, registered := range a.state.listeners {
		if registered == l {
			a.state.listeners = append(a.state.listeners[:i], a.state.listeners[i+1:]...)
			return
		}
	}
}

// NotifyListeners invokes every registered listener synchronously, in
// registration order.
//
// Each invocation is isolated: a panicking listener is reported and the
// broadcast continues with the remaining listeners.
func (a *Accessor) NotifyListeners() {
	a.state.listenerMu.Lock()
	snapshot := make([]Listener, len(a.state.listeners))
	copy(snapshot, a.state.listeners)
	a.state.listenerMu.Unlock()

	for _, l := range snapshot {
		a.notifyOne(l)
	}
}

// notifyOne invokes a single listener with panic isolation.
func (a *Accessor) notifyOne(l Listener) {
	defer func() {
		if r := recover(); r != nil {
			a.reporter.Report(fmt.Errorf("property: listener panic: %v", r))
		}
	}()
	l.PropertiesChanged()
}

// ListenerCount returns the number of registered listeners.
func (a *Accessor) ListenerCount() int {
	a.state.listenerMu.Lock()
	defer a.state.listenerMu.Unlock()
	return len(a.state.listeners)
}
