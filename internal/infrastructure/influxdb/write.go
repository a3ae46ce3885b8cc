package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WritePropertyMetric writes a numeric device property value to InfluxDB.
//
// This is the primary method for recording property telemetry. The write
// is non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - role: Device role identifier (e.g., "galvo_a")
//   - key: Symbolic property key (e.g., "single_axis_x_amplitude_deg")
//   - value: The numeric value to record
//
// Example:
//
//	client.WritePropertyMetric("galvo_a", "single_axis_x_amplitude_deg", 2.5)
//	client.WritePropertyMetric("piezo_b", "single_axis_offset_um", -12.0)
func (c *Client) WritePropertyMetric(role string, key string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"property_metrics",
		map[string]string{
			"device_role":  role,
			"property_key": key,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}

// WritePointWithTime writes a custom point with a specific timestamp.
//
// Use this when the timestamp is not "now" (e.g., replayed data).
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
