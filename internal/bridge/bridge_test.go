package bridge

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/openspim/spim-core/internal/core"
	"github.com/openspim/spim-core/internal/device"
	"github.com/openspim/spim-core/internal/property"
)

// fakeClient captures subscriptions and published messages.
type fakeClient struct {
	subscribed   map[string]func(topic string, payload []byte) error
	unsubscribed []string
	published    map[string][]byte
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		subscribed: make(map[string]func(string, []byte) error),
		published:  make(map[string][]byte),
	}
}

func (f *fakeClient) Subscribe(topic string, _ byte, handler func(string, []byte) error) error {
	f.subscribed[topic] = handler
	return nil
}

func (f *fakeClient) Unsubscribe(topic string) error {
	f.unsubscribed = append(f.unsubscribed, topic)
	return nil
}

func (f *fakeClient) PublishRetained(topic string, payload []byte) error {
	f.published[topic] = payload
	return nil
}

// deliver simulates the broker delivering a message to the wildcard
// command subscription.
func (f *fakeClient) deliver(t *testing.T, topic string, payload string) {
	t.Helper()
	handler, ok := f.subscribed["spimcore/command/property/+/+"]
	if !ok {
		t.Fatal("bridge did not subscribe to command topics")
	}
	if err := handler(topic, []byte(payload)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
}

func newTestBridge(t *testing.T) (*Bridge, *fakeClient, *core.SimCore) {
	t.Helper()

	runtime := core.NewSimCoreFromSeed(map[string]map[string]string{
		"Scanner:AB:33": {
			"BeamEnabled": "No",
		},
	})
	devices := device.NewRegistry(map[string]string{
		"galvo_a": "Scanner:AB:33",
	})
	accessor := property.NewAccessor(devices, runtime, property.ReporterFunc(func(error) {}))

	client := newFakeClient()
	b := New(client, accessor, 1)
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return b, client, runtime
}

func TestBridge_CommandSetsProperty(t *testing.T) {
	_, client, runtime := newTestBridge(t)

	client.deliver(t, "spimcore/command/property/galvo_a/beam_enabled", `{"value":"Yes"}`)

	got, err := runtime.GetProperty("Scanner:AB:33", "BeamEnabled")
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if got != "Yes" {
		t.Errorf("BeamEnabled = %q after command, want %q", got, "Yes")
	}
}

func TestBridge_CommandChangesCarryMQTTOrigin(t *testing.T) {
	runtime := core.NewSimCoreFromSeed(map[string]map[string]string{
		"Scanner:AB:33": {"BeamEnabled": "No"},
	})
	devices := device.NewRegistry(map[string]string{
		"galvo_a": "Scanner:AB:33",
	})
	accessor := property.NewAccessor(devices, runtime, property.ReporterFunc(func(error) {}))

	var changes []property.Change
	accessor.AddObserver(changeObserverFunc(func(c property.Change) {
		changes = append(changes, c)
	}))

	// Wired as in main: the bridge drives a view tagged with the MQTT
	// origin so history records the true source of the change.
	client := newFakeClient()
	b := New(client, accessor.WithOrigin("mqtt"), 1)
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	client.deliver(t, "spimcore/command/property/galvo_a/beam_enabled", `{"value":"Yes"}`)

	if len(changes) != 1 {
		t.Fatalf("observed changes = %d, want 1", len(changes))
	}
	if changes[0].Origin != "mqtt" {
		t.Errorf("change origin = %q, want %q", changes[0].Origin, "mqtt")
	}
}

// changeObserverFunc adapts a function to property.ChangeObserver.
type changeObserverFunc func(property.Change)

func (f changeObserverFunc) PropertyChanged(c property.Change) { f(c) }

func TestBridge_DropsMalformedCommands(t *testing.T) {
	_, client, runtime := newTestBridge(t)

	client.deliver(t, "spimcore/command/property/galvo_a/beam_enabled", `not json`)
	client.deliver(t, "spimcore/command/property/galvo_a/beam_enabled", `{}`)
	client.deliver(t, "spimcore/command/property/bogus_role/beam_enabled", `{"value":"Yes"}`)
	client.deliver(t, "spimcore/command/property/galvo_a/bogus_key", `{"value":"Yes"}`)

	got, _ := runtime.GetProperty("Scanner:AB:33", "BeamEnabled")
	if got != "No" {
		t.Errorf("BeamEnabled = %q after malformed commands, want %q", got, "No")
	}
}

func TestBridge_PublishesRetainedState(t *testing.T) {
	b, client, _ := newTestBridge(t)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b.PropertyChanged(property.Change{
		Role:  device.RoleGalvoA,
		Label: "Scanner:AB:33",
		Key:   property.KeyBeamEnabled,
		Value: "Yes",
		At:    at,
	})

	payload, ok := client.published["spimcore/state/property/galvo_a/beam_enabled"]
	if !ok {
		t.Fatalf("no state published; published topics: %v", keys(client.published))
	}

	var state statePayload
	if err := json.Unmarshal(payload, &state); err != nil {
		t.Fatalf("unmarshalling state payload: %v", err)
	}
	if state.Value != "Yes" || state.Label != "Scanner:AB:33" {
		t.Errorf("state = %+v", state)
	}
	if !strings.HasPrefix(state.ChangedAt, "2026-03-01T12:00:00") {
		t.Errorf("state.ChangedAt = %q", state.ChangedAt)
	}
}

func TestBridge_Stop(t *testing.T) {
	b, client, _ := newTestBridge(t)

	if err := b.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if len(client.unsubscribed) != 1 || client.unsubscribed[0] != "spimcore/command/property/+/+" {
		t.Errorf("unsubscribed = %v", client.unsubscribed)
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
