// Package influxdb provides time-series telemetry for SPIM Core.
//
// Numeric property changes are mirrored to InfluxDB as points so that
// galvo sweeps, piezo positions, and timing parameters can be graphed
// over an acquisition session.
//
// # Features
//
//   - Non-blocking writes with batching (write API buffers points)
//   - Async error delivery via callback
//   - Config-gated: when disabled, Connect returns ErrDisabled and the
//     service runs without telemetry
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if errors.Is(err, influxdb.ErrDisabled) {
//	    // telemetry off, continue without it
//	}
//	defer client.Close()
//
//	client.WritePropertyMetric("galvo_a", "single_axis_x_amplitude_deg", 2.5)
package influxdb
