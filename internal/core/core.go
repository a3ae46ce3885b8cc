package core

import "errors"

// Domain errors for the core package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, core.ErrUnknownDevice) {
//	    // handle unknown device
//	}
var (
	// ErrUnknownDevice is returned when a device label is not known to the runtime.
	ErrUnknownDevice = errors.New("core: unknown device")

	// ErrUnknownProperty is returned when a device exists but does not expose the property.
	ErrUnknownProperty = errors.New("core: unknown property")

	// ErrInvalidValue is returned when the runtime rejects a property value.
	ErrInvalidValue = errors.New("core: invalid value")
)

// Core is the device-control runtime contract.
//
// Labels are runtime device labels (e.g. "Scanner:AB:33"); names are
// wire-level property names (e.g. "SingleAxisXAmplitude(deg)"). All
// values cross the boundary as strings; the typed set variants exist
// because some runtimes validate numeric properties natively.
//
// Implementations must be safe for concurrent use.
type Core interface {
	// HasProperty reports whether the device exposes the named property.
	// Unknown devices report false.
	HasProperty(label, name string) bool

	// GetProperty returns the current value of a property.
	GetProperty(label, name string) (string, error)

	// SetProperty sets a property to a string value.
	SetProperty(label, name, value string) error

	// SetPropertyInt sets an integer-valued property.
	SetPropertyInt(label, name string, value int) error

	// SetPropertyFloat sets a float-valued property.
	SetPropertyFloat(label, name string, value float64) error
}
