package main

import (
	"testing"

	"github.com/openspim/spim-core/internal/property"
)

func TestGetConfigPath_Default(t *testing.T) {
	t.Setenv("SPIMCORE_CONFIG", "")
	if got := getConfigPath(); got != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", got, defaultConfigPath)
	}
}

func TestGetConfigPath_EnvOverride(t *testing.T) {
	t.Setenv("SPIMCORE_CONFIG", "/etc/spimcore/config.yaml")
	if got := getConfigPath(); got != "/etc/spimcore/config.yaml" {
		t.Errorf("getConfigPath() = %q, want env override", got)
	}
}

func TestPropertyTelemetry_SkipsNonNumeric(t *testing.T) {
	// A nil influx client would panic on write; non-numeric values must
	// be filtered out before reaching it.
	telemetry := &propertyTelemetry{}
	telemetry.PropertyChanged(property.Change{
		Key:   property.KeyBeamEnabled,
		Value: "Yes",
	})
}
