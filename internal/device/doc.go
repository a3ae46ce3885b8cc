// Package device provides the device role registry for SPIM Core.
//
// A diSPIM-style rig is wired in terms of roles: the XY stage, the upper
// and lower Z drives, the two galvo scanners, the two piezo stages, the
// cameras, and the programmable logic card. Which physical device fills
// each role varies per rig, so roles are mapped to runtime device labels
// via configuration and resolved at call time.
//
// # Key Types
//
//   - Role: closed enumeration of rig roles (galvo_a, piezo_b, xy_stage, ...)
//   - Registry: thread-safe role -> label assignment table
//
// # Usage
//
//	registry := device.NewRegistry(cfg.Devices)
//	registry.SetLogger(log)
//
//	// Lenient lookup: ok=false when unassigned, never errors
//	label, ok := registry.Label(device.RoleGalvoA)
//
//	// Strict lookup: ErrNotAssigned when unassigned
//	label, err := registry.ResolveLabel(device.RoleGalvoA)
//	if errors.Is(err, device.ErrNotAssigned) {
//	    // role not wired on this rig
//	}
//
// # Thread Safety
//
// The Registry is safe for concurrent use. Assignments may change at
// runtime (rig commissioning); all operations are protected by a
// read-write mutex.
package device
