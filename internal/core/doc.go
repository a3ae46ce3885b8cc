// Package core defines the runtime core contract for SPIM Core.
//
// The runtime core is the device-control layer that actually talks to
// hardware: it owns device labels and their property tables. SPIM Core
// drives it exclusively through the Core interface, so the property
// accessor and its surfaces never depend on a concrete runtime.
//
// # Key Types
//
//   - Core: the interface every runtime must implement (property
//     existence checks, string/int/float gets and sets)
//   - SimCore: an in-memory implementation used for tests and for
//     running the service without hardware attached
//
// # Usage
//
//	rt := core.NewSimCore()
//	rt.AddDevice("Scanner:AB:33")
//	rt.DefineProperty("Scanner:AB:33", "BeamEnabled", "No")
//
//	err := rt.SetProperty("Scanner:AB:33", "BeamEnabled", "Yes")
//	value, err := rt.GetProperty("Scanner:AB:33", "BeamEnabled")
//
// # Thread Safety
//
// SimCore is safe for concurrent use. Real runtime implementations must
// provide the same guarantee, as the HTTP and MQTT surfaces drive the
// accessor concurrently.
package core
