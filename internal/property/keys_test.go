package property

import "testing"

func TestKeyWireNames_Complete(t *testing.T) {
	for _, key := range AllKeys() {
		name, ok := key.WireName()
		if !ok {
			t.Errorf("key %q has no wire name", key)
		}
		if name == "" {
			t.Errorf("key %q has empty wire name", key)
		}
	}

	if len(AllKeys()) != len(keyWireNames) {
		t.Errorf("AllKeys() returns %d keys, lookup table has %d", len(AllKeys()), len(keyWireNames))
	}
}

func TestKeyWireNames_Stable(t *testing.T) {
	// Wire strings must be identical across repeated reads.
	for _, key := range AllKeys() {
		first, _ := key.WireName()
		for i := 0; i < 3; i++ {
			got, _ := key.WireName()
			if got != first {
				t.Fatalf("key %q wire name changed: %q != %q", key, got, first)
			}
		}
	}
}

func TestKeyWireNames_ExactPairs(t *testing.T) {
	// Spot-check the exact wire names the controller firmware expects,
	// including unit suffixes and the space-containing name.
	tests := []struct {
		key  Key
		want string
	}{
		{KeyBeamEnabled, "BeamEnabled"},
		{KeySPIMNumSlices, "SPIMNumSlices"},
		{KeySingleAxisXPeriodMs, "SingleAxisXPeriod(ms)"},
		{KeySingleAxisXAmplitudeDeg, "SingleAxisXAmplitude(deg)"},
		{KeySingleAxisOffsetUm, "SingleAxisOffset(um)"},
		{KeySerialOnlyOnChange, "OnlySendSerialCommandOnChange"},
		{KeyCameraTriggerSource, "TRIGGER SOURCE"},
		{KeySPIMDelayBeforeSideMs, "SPIMDelayBeforeSide(ms)"},
	}

	for _, tt := range tests {
		got, ok := tt.key.WireName()
		if !ok {
			t.Errorf("key %q not in lookup table", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("key %q wire name = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromID(t *testing.T) {
	if k, ok := KeyFromID("beam_enabled"); !ok || k != KeyBeamEnabled {
		t.Errorf("KeyFromID(beam_enabled) = %q, %v", k, ok)
	}
	if _, ok := KeyFromID("bogus"); ok {
		t.Error("KeyFromID(bogus) ok = true, want false")
	}
}

func TestValueWireStrings_Complete(t *testing.T) {
	for _, value := range AllValues() {
		s, ok := value.WireString()
		if !ok {
			t.Errorf("value %q has no wire string", value)
		}
		if s == "" {
			t.Errorf("value %q has empty wire string", value)
		}
	}

	if len(AllValues()) != len(valueWireStrings) {
		t.Errorf("AllValues() returns %d values, lookup table has %d", len(AllValues()), len(valueWireStrings))
	}
}

func TestValueWireStrings_ExactPairs(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{ValueYes, "Yes"},
		{ValueNo, "No"},
		{ValueJoystickNone, "0 - none"},
		{ValueJoystickX, "2 - joystick X"},
		{ValueRightWheel, "22 - right wheel"},
		{ValueLeftWheel, "23 - left wheel"},
		{ValueSPIMArmed, "Armed"},
		{ValueSingleAxisEnabled, "1 - Enabled"},
		{ValueTrianglePattern, "1 - Triangle"},
		{ValueDoIt, "Do it"},
		{ValueSaveSettings, "Z - save settings to card (partial)"},
		{ValueTriggerInternal, "INTERNAL"},
		{ValueTriggerExternal, "EXTERNAL"},
	}

	for _, tt := range tests {
		got, ok := tt.value.WireString()
		if !ok {
			t.Errorf("value %q not in lookup table", tt.value)
			continue
		}
		if got != tt.want {
			t.Errorf("value %q wire string = %q, want %q", tt.value, got, tt.want)
		}
	}
}
