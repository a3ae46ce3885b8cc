package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrNotAssigned) {
//	    // handle unassigned role
//	}
var (
	// ErrNotAssigned is returned when a role has no device label assigned.
	ErrNotAssigned = errors.New("device: role not assigned")

	// ErrUnknownRole is returned when a role id is not part of the known set.
	ErrUnknownRole = errors.New("device: unknown role")

	// ErrInvalidLabel is returned when an empty device label is assigned to a role.
	ErrInvalidLabel = errors.New("device: invalid label")
)
