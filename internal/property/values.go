package property

// Value is a symbolic identifier for an enumerated property value.
//
// Each value pairs 1:1 with the exact wire string the runtime expects,
// including the numbered menu strings the controller firmware uses
// ("0 - none", "22 - right wheel"). Free-form values (numbers, axis
// letters, serial commands) do not appear here; they go through the
// typed set operations instead.
type Value string

// Known property values.
const (
	// Generic yes/no switches (BeamEnabled, JoystickEnabled, ...).
	ValueYes Value = "yes"
	ValueNo  Value = "no"

	// Joystick input routing.
	ValueJoystickNone Value = "joystick_none"
	ValueJoystickX    Value = "joystick_x"
	ValueJoystickY    Value = "joystick_y"
	ValueRightWheel   Value = "right_wheel"
	ValueLeftWheel    Value = "left_wheel"

	// SPIM state machine states.
	ValueSPIMArmed   Value = "spim_armed"
	ValueSPIMRunning Value = "spim_running"
	ValueSPIMIdle    Value = "spim_idle"

	// Single-axis mode and pattern.
	ValueSingleAxisDisabled Value = "single_axis_disabled"
	ValueSingleAxisEnabled  Value = "single_axis_enabled"
	ValueTrianglePattern    Value = "triangle_pattern"

	// Card maintenance actions.
	ValueDoIt         Value = "do_it"
	ValueSaveSettings Value = "save_settings"

	// Camera trigger sources.
	ValueTriggerInternal Value = "trigger_internal"
	ValueTriggerExternal Value = "trigger_external"
)

// valueWireStrings pairs each value with its exact wire string.
// Constant lookup table: no reflection, no runtime registration.
var valueWireStrings = map[Value]string{
	ValueYes: "Yes",
	ValueNo:  "No",

	ValueJoystickNone: "0 - none",
	ValueJoystickX:    "2 - joystick X",
	ValueJoystickY:    "3 - joystick Y",
	ValueRightWheel:   "22 - right wheel",
	ValueLeftWheel:    "23 - left wheel",

	ValueSPIMArmed:   "Armed",
	ValueSPIMRunning: "Running",
	ValueSPIMIdle:    "Idle",

	ValueSingleAxisDisabled: "0 - Disabled",
	ValueSingleAxisEnabled:  "1 - Enabled",
	ValueTrianglePattern:    "1 - Triangle",

	ValueDoIt:         "Do it",
	ValueSaveSettings: "Z - save settings to card (partial)",

	ValueTriggerInternal: "INTERNAL",
	ValueTriggerExternal: "EXTERNAL",
}

// WireString returns the exact wire string for a value.
// ok is false for values outside the known set.
func (v Value) WireString() (string, bool) {
	s, ok := valueWireStrings[v]
	return s, ok
}

// IsValid reports whether the value is part of the known set.
func (v Value) IsValid() bool {
	_, ok := valueWireStrings[v]
	return ok
}

// String returns the symbolic value id.
func (v Value) String() string {
	return string(v)
}

// AllValues returns every known value in stable order.
func AllValues() []Value {
	return []Value{
		ValueYes,
		ValueNo,
		ValueJoystickNone,
		ValueJoystickX,
		ValueJoystickY,
		ValueRightWheel,
		ValueLeftWheel,
		ValueSPIMArmed,
		ValueSPIMRunning,
		ValueSPIMIdle,
		ValueSingleAxisDisabled,
		ValueSingleAxisEnabled,
		ValueTrianglePattern,
		ValueDoIt,
		ValueSaveSettings,
		ValueTriggerInternal,
		ValueTriggerExternal,
	}
}
