package core

import (
	"errors"
	"sync"
	"testing"
)

func TestSimCore_SetGetRoundTrip(t *testing.T) {
	c := NewSimCore()
	c.DefineProperty("Scanner:AB:33", "BeamEnabled", "No")

	if err := c.SetProperty("Scanner:AB:33", "BeamEnabled", "Yes"); err != nil {
		t.Fatalf("SetProperty() error = %v", err)
	}

	got, err := c.GetProperty("Scanner:AB:33", "BeamEnabled")
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if got != "Yes" {
		t.Errorf("GetProperty() = %q, want %q", got, "Yes")
	}
}

func TestSimCore_UnknownDevice(t *testing.T) {
	c := NewSimCore()

	if c.HasProperty("Missing:00", "BeamEnabled") {
		t.Error("HasProperty() on unknown device = true, want false")
	}

	_, err := c.GetProperty("Missing:00", "BeamEnabled")
	if !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("GetProperty() error = %v, want ErrUnknownDevice", err)
	}

	err = c.SetProperty("Missing:00", "BeamEnabled", "Yes")
	if !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("SetProperty() error = %v, want ErrUnknownDevice", err)
	}
}

func TestSimCore_UnknownProperty(t *testing.T) {
	c := NewSimCore()
	c.AddDevice("Scanner:AB:33")

	if c.HasProperty("Scanner:AB:33", "BeamEnabled") {
		t.Error("HasProperty() on undefined property = true, want false")
	}

	_, err := c.GetProperty("Scanner:AB:33", "BeamEnabled")
	if !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("GetProperty() error = %v, want ErrUnknownProperty", err)
	}

	err = c.SetProperty("Scanner:AB:33", "BeamEnabled", "Yes")
	if !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("SetProperty() error = %v, want ErrUnknownProperty", err)
	}
}

func TestSimCore_TypedSets(t *testing.T) {
	c := NewSimCore()
	c.DefineProperty("Scanner:AB:33", "SPIMNumSlices", "0")
	c.DefineProperty("Scanner:AB:33", "SingleAxisXAmplitude(deg)", "0")

	if err := c.SetPropertyInt("Scanner:AB:33", "SPIMNumSlices", 40); err != nil {
		t.Fatalf("SetPropertyInt() error = %v", err)
	}
	got, _ := c.GetProperty("Scanner:AB:33", "SPIMNumSlices")
	if got != "40" {
		t.Errorf("after SetPropertyInt, value = %q, want %q", got, "40")
	}

	if err := c.SetPropertyFloat("Scanner:AB:33", "SingleAxisXAmplitude(deg)", 2.5); err != nil {
		t.Fatalf("SetPropertyFloat() error = %v", err)
	}
	got, _ = c.GetProperty("Scanner:AB:33", "SingleAxisXAmplitude(deg)")
	if got != "2.5" {
		t.Errorf("after SetPropertyFloat, value = %q, want %q", got, "2.5")
	}
}

func TestNewSimCoreFromSeed(t *testing.T) {
	seed := map[string]map[string]string{
		"Scanner:AB:33": {
			"BeamEnabled":  "No",
			"SPIMNumSides": "2",
		},
		"PiezoStage:P:34": {
			"SingleAxisOffset(um)": "0",
		},
	}

	c := NewSimCoreFromSeed(seed)

	if len(c.Labels()) != 2 {
		t.Errorf("Labels() count = %d, want 2", len(c.Labels()))
	}
	got, err := c.GetProperty("Scanner:AB:33", "SPIMNumSides")
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if got != "2" {
		t.Errorf("seeded value = %q, want %q", got, "2")
	}
}

func TestSimCore_ConcurrentAccess(t *testing.T) {
	c := NewSimCore()
	c.DefineProperty("Scanner:AB:33", "SPIMState", "Idle")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.SetProperty("Scanner:AB:33", "SPIMState", "Running")
		}()
		go func() {
			defer wg.Done()
			_, _ = c.GetProperty("Scanner:AB:33", "SPIMState")
		}()
	}
	wg.Wait()
}
