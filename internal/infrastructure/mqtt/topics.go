package mqtt

import "fmt"

// Topic prefixes for the SPIM Core MQTT surface.
//
// Property topics use the flat scheme: spimcore/{category}/property/{role}/{key}
// where role is a device role id (e.g. "galvo_a") and key is a symbolic
// property key (e.g. "beam_enabled").
const (
	// TopicPrefix is the base for all SPIM Core topics.
	TopicPrefix = "spimcore"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "spimcore/system"
)

// Topics provides builders for SPIM Core MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	stateTopic := topics.PropertyState("galvo_a", "beam_enabled")
//	// Returns: "spimcore/state/property/galvo_a/beam_enabled"
type Topics struct{}

// PropertyState returns the retained state topic for a device property.
//
// Example: spimcore/state/property/galvo_a/beam_enabled
func (Topics) PropertyState(role, key string) string {
	return fmt.Sprintf("%s/state/property/%s/%s", TopicPrefix, role, key)
}

// PropertyCommand returns the command topic for setting a device property.
//
// Example: spimcore/command/property/galvo_a/beam_enabled
func (Topics) PropertyCommand(role, key string) string {
	return fmt.Sprintf("%s/command/property/%s/%s", TopicPrefix, role, key)
}

// SystemStatus returns the system status topic.
//
// Example: spimcore/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllPropertyCommands returns a pattern matching all property set commands.
//
// Pattern: spimcore/command/property/+/+
func (Topics) AllPropertyCommands() string {
	return fmt.Sprintf("%s/command/property/+/+", TopicPrefix)
}

// AllPropertyStates returns a pattern matching all retained property states.
//
// Pattern: spimcore/state/property/+/+
func (Topics) AllPropertyStates() string {
	return fmt.Sprintf("%s/state/property/+/+", TopicPrefix)
}

// AllTopics returns a pattern matching all SPIM Core topics.
// Use with caution - this receives ALL traffic.
//
// Pattern: spimcore/#
func (Topics) AllTopics() string {
	return "spimcore/#"
}
