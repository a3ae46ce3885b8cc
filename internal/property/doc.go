// Package property provides typed access to device properties for SPIM Core.
//
// The device-control runtime addresses properties by exact wire-level
// names ("SingleAxisXAmplitude(deg)", "TRIGGER SOURCE") and enumerated
// string values ("Yes", "0 - none", "Armed"). This package pins both
// sides down as closed enumerations so the rest of the codebase never
// handles raw wire strings, and wraps runtime access in an Accessor
// whose error policy is: never fail the caller, report and default.
//
// # Architecture
//
//	┌───────────────────────────────────────────────────────────────────┐
//	│                         property.Accessor                         │
//	│                                                                   │
//	│  ┌────────────────┐   ┌────────────────┐   ┌──────────────────┐  │
//	│  │  Key / Value   │   │    Reporter    │   │    Listeners /   │  │
//	│  │  registries    │   │  (errors out-  │   │    Observers     │  │
//	│  │  (keys.go,     │   │   of-band)     │   │  (listener.go)   │  │
//	│  │   values.go)   │   │  (reporter.go) │   │                  │  │
//	│  └────────────────┘   └────────────────┘   └──────────────────┘  │
//	│           │                                                       │
//	└───────────│───────────────────────────────────────────────────────┘
//	            │resolve role, issue get/set
//	            ▼
//	┌──────────────────────┐      ┌──────────────────────┐
//	│   device.Registry    │      │      core.Core       │
//	│   (role -> label)    │      │  (runtime contract)  │
//	└──────────────────────┘      └──────────────────────┘
//
// # Error Policy
//
// Accessor operations never return errors. Every failure (unassigned
// role, unknown key, runtime rejection, unparseable value) is delivered
// to the injected Reporter and the operation returns its zero default
// (false, "", 0, 0.0). The ignoreMissing flag additionally silences
// reports for roles that are simply not wired on this rig, so shared
// code can probe optional hardware without log noise.
//
// # Usage
//
//	props := property.NewAccessor(devices, runtime, property.NewLogReporter(log))
//
//	props.SetValue(device.RoleGalvoA, property.KeyBeamEnabled, property.ValueYes, false)
//	amplitude := props.GetFloat(device.RoleGalvoA, property.KeySingleAxisXAmplitudeDeg, false)
//
//	// Optional hardware: no reports when the role is unassigned
//	if props.Has(device.RolePiezoB, property.KeySingleAxisOffsetUm, true) {
//	    // second imaging path present
//	}
//
// # Thread Safety
//
// The Accessor is safe for concurrent use. Listener and observer lists
// are mutex-guarded; runtime access inherits the Core implementation's
// guarantees.
package property
