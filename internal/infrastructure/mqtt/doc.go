// Package mqtt provides MQTT connectivity for SPIM Core.
//
// This package wraps the Eclipse Paho MQTT client with:
//   - Connection management with auto-reconnect and exponential backoff
//   - Last Will and Testament (LWT) for offline detection
//   - Tracked subscriptions restored automatically on reconnect
//   - Panic recovery around message handlers
//   - Topic builders for the spimcore topic hierarchy
//
// # Topic Hierarchy
//
//	spimcore/command/property/{role}/{key}   — property set commands (inbound)
//	spimcore/state/property/{role}/{key}     — retained property state (outbound)
//	spimcore/system/status                   — online/offline status (retained, LWT)
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	topics := mqtt.Topics{}
//	client.Subscribe(topics.AllPropertyCommands(), 1, handleCommand)
//	client.PublishRetained(topics.PropertyState("galvo_a", "beam_enabled"), payload)
package mqtt
