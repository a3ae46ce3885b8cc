// Package bridge exposes SPIM Core's property surface over MQTT.
//
// The bridge is bidirectional:
//
//   - Inbound: commands on spimcore/command/property/{role}/{key} invoke
//     the property accessor. Payloads are JSON: {"value":"Yes"}.
//   - Outbound: every successful property change (from any surface) is
//     published retained on spimcore/state/property/{role}/{key}, so a
//     subscriber joining mid-session immediately sees current state.
//
// The bridge never fails a command back to the broker: malformed topics
// and payloads are logged and dropped, and property-level failures
// follow the accessor's report-and-default policy.
//
// # Usage
//
//	b := bridge.New(client, accessor, 1)
//	b.SetLogger(log)
//	if err := b.Start(); err != nil {
//	    return err
//	}
//	accessor.AddObserver(b)
//	defer b.Stop()
package bridge
