package property

// Key is a symbolic identifier for a device property.
//
// Each key pairs 1:1 with the exact wire-level property name the
// runtime understands (ASI Tiger-style names, including the unit
// suffixes and the one space-containing name). The pairing is fixed at
// compile time; wire names never change for the process lifetime.
type Key string

// Known property keys.
const (
	// Joystick routing.
	KeyJoystickEnabled Key = "joystick_enabled"
	KeyJoystickInput   Key = "joystick_input"
	KeyJoystickInputX  Key = "joystick_input_x"
	KeyJoystickInputY  Key = "joystick_input_y"

	// SPIM acquisition state machine on the galvo card.
	KeySPIMNumSides          Key = "spim_num_sides"
	KeySPIMNumSlices         Key = "spim_num_slices"
	KeySPIMNumRepeats        Key = "spim_num_repeats"
	KeySPIMNumScansPerSlice  Key = "spim_num_scans_per_slice"
	KeySPIMDelayBeforeSideMs Key = "spim_delay_before_side_ms"
	KeySPIMDelayBeforeSlice  Key = "spim_delay_before_slice_ms"
	KeySPIMFirstSide         Key = "spim_first_side"
	KeySPIMState             Key = "spim_state"

	// Single-axis sweep parameters (piezo stages use um, galvos use deg).
	KeySingleAxisXPeriodMs     Key = "single_axis_x_period_ms"
	KeySingleAxisAmplitudeUm   Key = "single_axis_amplitude_um"
	KeySingleAxisOffsetUm      Key = "single_axis_offset_um"
	KeySingleAxisXAmplitudeDeg Key = "single_axis_x_amplitude_deg"
	KeySingleAxisXOffsetDeg    Key = "single_axis_x_offset_deg"
	KeySingleAxisXOffsetUm     Key = "single_axis_x_offset_um"
	KeySingleAxisXMode         Key = "single_axis_x_mode"
	KeySingleAxisXPattern      Key = "single_axis_x_pattern"
	KeySingleAxisYAmplitudeDeg Key = "single_axis_y_amplitude_deg"
	KeySingleAxisYOffsetDeg    Key = "single_axis_y_offset_deg"
	KeySingleAxisYOffsetUm     Key = "single_axis_y_offset_um"

	// Axis and serial plumbing on the controller.
	KeyAxisLetter          Key = "axis_letter"
	KeySerialOnlyOnChange  Key = "serial_only_on_change"
	KeySerialCommand       Key = "serial_command"
	KeySerialComPort       Key = "serial_com_port"
	KeyMaxDeflectionXDeg   Key = "max_deflection_x_deg"
	KeyMinDeflectionXDeg   Key = "min_deflection_x_deg"
	KeyBeamEnabled         Key = "beam_enabled"
	KeySaveCardSettings    Key = "save_card_settings"
	KeyCameraTriggerSource Key = "camera_trigger_source"
)

// keyWireNames pairs each key with its exact wire-level property name.
// Constant lookup table: no reflection, no runtime registration.
var keyWireNames = map[Key]string{
	KeyJoystickEnabled: "JoystickEnabled",
	KeyJoystickInput:   "JoystickInput",
	KeyJoystickInputX:  "JoystickInputX",
	KeyJoystickInputY:  "JoystickInputY",

	KeySPIMNumSides:          "SPIMNumSides",
	KeySPIMNumSlices:         "SPIMNumSlices",
	KeySPIMNumRepeats:        "SPIMNumRepeats",
	KeySPIMNumScansPerSlice:  "SPIMNumScansPerSlice",
	KeySPIMDelayBeforeSideMs: "SPIMDelayBeforeSide(ms)",
	KeySPIMDelayBeforeSlice:  "SPIMDelayBeforeSlice(ms)",
	KeySPIMFirstSide:         "SPIMFirstSide",
	KeySPIMState:             "SPIMState",

	KeySingleAxisXPeriodMs:     "SingleAxisXPeriod(ms)",
	KeySingleAxisAmplitudeUm:   "SingleAxisAmplitude(um)",
	KeySingleAxisOffsetUm:      "SingleAxisOffset(um)",
	KeySingleAxisXAmplitudeDeg: "SingleAxisXAmplitude(deg)",
	KeySingleAxisXOffsetDeg:    "SingleAxisXOffset(deg)",
	KeySingleAxisXOffsetUm:     "SingleAxisXOffset(um)",
	KeySingleAxisXMode:         "SingleAxisXMode",
	KeySingleAxisXPattern:      "SingleAxisXPattern",
	KeySingleAxisYAmplitudeDeg: "SingleAxisYAmplitude(deg)",
	KeySingleAxisYOffsetDeg:    "SingleAxisYOffset(deg)",
	KeySingleAxisYOffsetUm:     "SingleAxisYOffset(um)",

	KeyAxisLetter:          "AxisLetter",
	KeySerialOnlyOnChange:  "OnlySendSerialCommandOnChange",
	KeySerialCommand:       "SerialCommand",
	KeySerialComPort:       "SerialComPort",
	KeyMaxDeflectionXDeg:   "MaxDeflectionX(deg)",
	KeyMinDeflectionXDeg:   "MinDeflectionX(deg)",
	KeyBeamEnabled:         "BeamEnabled",
	KeySaveCardSettings:    "SaveCardSettings",
	KeyCameraTriggerSource: "TRIGGER SOURCE",
}

// WireName returns the exact wire-level property name for a key.
// ok is false for keys outside the known set.
func (k Key) WireName() (string, bool) {
	name, ok := keyWireNames[k]
	return name, ok
}

// IsValid reports whether the key is part of the known set.
func (k Key) IsValid() bool {
	_, ok := keyWireNames[k]
	return ok
}

// String returns the symbolic key id.
func (k Key) String() string {
	return string(k)
}

// AllKeys returns every known key in stable order.
func AllKeys() []Key {
	return []Key{
		KeyJoystickEnabled,
		KeyJoystickInput,
		KeyJoystickInputX,
		KeyJoystickInputY,
		KeySPIMNumSides,
		KeySPIMNumSlices,
		KeySPIMNumRepeats,
		KeySPIMNumScansPerSlice,
		KeySPIMDelayBeforeSideMs,
		KeySPIMDelayBeforeSlice,
		KeySPIMFirstSide,
		KeySPIMState,
		KeySingleAxisXPeriodMs,
		KeySingleAxisAmplitudeUm,
		KeySingleAxisOffsetUm,
		KeySingleAxisXAmplitudeDeg,
		KeySingleAxisXOffsetDeg,
		KeySingleAxisXOffsetUm,
		KeySingleAxisXMode,
		KeySingleAxisXPattern,
		KeySingleAxisYAmplitudeDeg,
		KeySingleAxisYOffsetDeg,
		KeySingleAxisYOffsetUm,
		KeyAxisLetter,
		KeySerialOnlyOnChange,
		KeySerialCommand,
		KeySerialComPort,
		KeyMaxDeflectionXDeg,
		KeyMinDeflectionXDeg,
		KeyBeamEnabled,
		KeySaveCardSettings,
		KeyCameraTriggerSource,
	}
}

// KeyFromID returns the Key for a symbolic id (e.g. from an MQTT topic
// or URL segment). ok is false when the id is not a known key.
func KeyFromID(id string) (Key, bool) {
	k := Key(id)
	return k, k.IsValid()
}
