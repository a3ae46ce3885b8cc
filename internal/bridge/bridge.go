package bridge

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openspim/spim-core/internal/device"
	"github.com/openspim/spim-core/internal/infrastructure/mqtt"
	"github.com/openspim/spim-core/internal/property"
)

// commandTopicParts is the segment count of a property command topic:
// spimcore/command/property/{role}/{key}.
const commandTopicParts = 5

// Client is the MQTT surface the bridge needs.
//
// *mqtt.Client satisfies Publisher directly; Subscribe needs a thin
// adapter in main because the concrete client uses its own handler type.
type Client interface {
	Subscribe(topic string, qos byte, handler func(topic string, payload []byte) error) error
	Unsubscribe(topic string) error
	PublishRetained(topic string, payload []byte) error
}

// Logger defines the logging interface used by the Bridge.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// commandPayload is the JSON body of a property set command.
type commandPayload struct {
	Value string `json:"value"`
}

// statePayload is the JSON body published on property state topics.
type statePayload struct {
	Role      string `json:"role"`
	Label     string `json:"label"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	ChangedAt string `json:"changed_at"`
}

// Bridge connects the property accessor to the MQTT broker.
//
// It subscribes to property command topics and implements
// property.ChangeObserver to publish retained state.
type Bridge struct {
	client   Client
	accessor *property.Accessor
	qos      byte
	topics   mqtt.Topics
	logger   Logger
}

// New creates an MQTT property bridge.
func New(client Client, accessor *property.Accessor, qos byte) *Bridge {
	return &Bridge{
		client:   client,
		accessor: accessor,
		qos:      qos,
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the bridge.
func (b *Bridge) SetLogger(logger Logger) {
	b.logger = logger
}

// Start subscribes to all property command topics.
func (b *Bridge) Start() error {
	if err := b.client.Subscribe(b.topics.AllPropertyCommands(), b.qos, b.handleCommand); err != nil {
		return fmt.Errorf("subscribing to property commands: %w", err)
	}
	return nil
}

// Stop unsubscribes from the command topics.
func (b *Bridge) Stop() error {
	if err := b.client.Unsubscribe(b.topics.AllPropertyCommands()); err != nil {
		return fmt.Errorf("unsubscribing from property commands: %w", err)
	}
	return nil
}

// handleCommand processes one property set command.
//
// Malformed topics and payloads are dropped with a warning; property
// failures go through the accessor's reporter. The returned error is
// always nil because MQTT offers no reply channel for commands.
func (b *Bridge) handleCommand(topic string, payload []byte) error {
	role, key, ok := b.parseCommandTopic(topic)
	if !ok {
		return nil
	}

	var cmd commandPayload
	if err := json.Unmarshal(payload, &cmd); err != nil {
		b.logger.Warn("dropping malformed property command",
			"topic", topic,
			"error", err,
		)
		return nil
	}
	if cmd.Value == "" {
		b.logger.Warn("dropping property command without value", "topic", topic)
		return nil
	}

	b.logger.Debug("property command received",
		"role", role,
		"key", key,
		"value", cmd.Value,
	)
	b.accessor.SetString(role, key, cmd.Value, false)
	return nil
}

// parseCommandTopic extracts role and key from a command topic.
func (b *Bridge) parseCommandTopic(topic string) (device.Role, property.Key, bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != commandTopicParts || parts[1] != "command" || parts[2] != "property" {
		b.logger.Warn("dropping command on unexpected topic", "topic", topic)
		return "", "", false
	}

	role := device.Role(parts[3])
	if !role.IsValid() {
		b.logger.Warn("dropping command for unknown role", "topic", topic, "role", parts[3])
		return "", "", false
	}

	key, ok := property.KeyFromID(parts[4])
	if !ok {
		b.logger.Warn("dropping command for unknown key", "topic", topic, "key", parts[4])
		return "", "", false
	}

	return role, key, true
}

// PropertyChanged publishes retained state for a property change.
// Implements property.ChangeObserver.
func (b *Bridge) PropertyChanged(change property.Change) {
	payload, err := json.Marshal(statePayload{
		Role:      change.Role.String(),
		Label:     change.Label,
		Key:       change.Key.String(),
		Value:     change.Value,
		ChangedAt: change.At.UTC().Format(time.RFC3339),
	})
	if err != nil {
		b.logger.Error("marshalling property state", "error", err)
		return
	}

	topic := b.topics.PropertyState(change.Role.String(), change.Key.String())
	if err := b.client.PublishRetained(topic, payload); err != nil {
		b.logger.Warn("publishing property state failed",
			"topic", topic,
			"error", err,
		)
	}
}
