package property

import "testing"

// orderedListener records invocation order into a shared slice.
type orderedListener struct {
	id    int
	order *[]int
}

func (l *orderedListener) PropertiesChanged() {
	*l.order = append(*l.order, l.id)
}

// panickyListener always panics when notified.
type panickyListener struct{}

func (*panickyListener) PropertiesChanged() {
	panic("listener exploded")
}

func TestNotifyListeners_Order(t *testing.T) {
	props, _, _ := newTestAccessor(t)

	var order []int
	first := &orderedListener{id: 1, order: &order}
	second := &orderedListener{id: 2, order: &order}
	third := &orderedListener{id: 3, order: &order}

	props.AddListener(first)
	props.AddListener(second)
	props.AddListener(third)

	props.NotifyListeners()

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("notified %d listeners, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("notification order = %v, want %v", order, want)
			break
		}
	}
}

func TestRemoveListener(t *testing.T) {
	props, _, _ := newTestAccessor(t)

	var order []int
	first := &orderedListener{id: 1, order: &order}
	second := &orderedListener{id: 2, order: &order}

	props.AddListener(first)
	props.AddListener(second)
	props.RemoveListener(first)

	props.NotifyListeners()

	if len(order) != 1 || order[0] != 2 {
		t.Errorf("notified = %v, want [2]", order)
	}
}

func TestRemoveListener_AbsentIsNoop(t *testing.T) {
	props, _, _ := newTestAccessor(t)

	var order []int
	registered := &orderedListener{id: 1, order: &order}
	never := &orderedListener{id: 9, order: &order}

	props.AddListener(registered)
	props.RemoveListener(never) // no-op

	if props.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d, want 1", props.ListenerCount())
	}
}

func TestAddListener_DuplicatesAllowed(t *testing.T) {
	props, _, _ := newTestAccessor(t)

	var order []int
	l := &orderedListener{id: 1, order: &order}

	props.AddListener(l)
	props.AddListener(l)
	props.NotifyListeners()

	if len(order) != 2 {
		t.Errorf("duplicate listener notified %d times, want 2", len(order))
	}

	// RemoveListener removes only the first match
	props.RemoveListener(l)
	if props.ListenerCount() != 1 {
		t.Errorf("ListenerCount() after removal = %d, want 1", props.ListenerCount())
	}
}

func TestNotifyListeners_PanicIsolated(t *testing.T) {
	props, reporter, _ := newTestAccessor(t)

	var order []int
	before := &orderedListener{id: 1, order: &order}
	after := &orderedListener{id: 2, order: &order}

	props.AddListener(before)
	props.AddListener(&panickyListener{})
	props.AddListener(after)

	props.NotifyListeners()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("notified = %v, want [1 2] despite panic in between", order)
	}
	if reporter.count() != 1 {
		t.Errorf("reports = %d, want 1 (the panic)", reporter.count())
	}
}

func TestAddListener_NilIgnored(t *testing.T) {
	props, _, _ := newTestAccessor(t)

	props.AddListener(nil)
	if props.ListenerCount() != 0 {
		t.Errorf("ListenerCount() after nil add = %d, want 0", props.ListenerCount())
	}
}
