package property

import "errors"

// Domain errors for the property package.
//
// Accessor operations never return these directly; they reach callers
// through the Reporter, where they can be classified with errors.Is():
//
//	reporter := property.ReporterFunc(func(err error) {
//	    if errors.Is(err, device.ErrNotAssigned) {
//	        // resolution failure, not a runtime rejection
//	    }
//	})
var (
	// ErrUnknownKey is returned when a property key is not part of the known set.
	ErrUnknownKey = errors.New("property: unknown key")

	// ErrUnknownValue is returned when a property value is not part of the known set.
	ErrUnknownValue = errors.New("property: unknown value")

	// ErrParseFailed is returned when a property value cannot be parsed as a number.
	ErrParseFailed = errors.New("property: parse failed")
)
