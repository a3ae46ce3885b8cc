package core

import (
	"fmt"
	"strconv"
	"sync"
)

// SimCore is an in-memory runtime core.
//
// It holds a property table per device label and is used in two places:
// as the runtime when SPIM Core runs without hardware (sim mode), and as
// the collaborator in accessor tests. Devices and properties are created
// explicitly; setting an undefined property fails the same way a real
// runtime rejects unknown property names.
//
// All methods are thread-safe.
type SimCore struct {
	mu      sync.RWMutex
	devices map[string]map[string]string // label -> property name -> value
}

// NewSimCore creates an empty simulation core.
func NewSimCore() *SimCore {
	return &SimCore{
		devices: make(map[string]map[string]string),
	}
}

// NewSimCoreFromSeed creates a simulation core pre-populated with devices
// and their initial property values, as loaded from the sim section of
// config.yaml.
func NewSimCoreFromSeed(seed map[string]map[string]string) *SimCore {
	c := NewSimCore()
	for label, props := range seed {
		c.AddDevice(label)
		for name, value := range props {
			c.DefineProperty(label, name, value)
		}
	}
	return c
}

// AddDevice registers a device label with an empty property table.
// Adding an existing device is a no-op.
func (c *SimCore) AddDevice(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.devices[label]; !ok {
		c.devices[label] = make(map[string]string)
	}
}

// DefineProperty declares a property on a device with an initial value.
// The device is created if it does not exist yet.
func (c *SimCore) DefineProperty(label, name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	props, ok := c.devices[label]
	if !ok {
		props = make(map[string]string)
		c.devices[label] = props
	}
	props[name] = value
}

// Labels returns all registered device labels.
func (c *SimCore) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	labels := make([]string, 0, len(c.devices))
	for label := range c.devices {
		labels = append(labels, label)
	}
	return labels
}

// HasProperty reports whether the device exposes the named property.
func (c *SimCore) HasProperty(label, name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	props, ok := c.devices[label]
	if !ok {
		return false
	}
	_, ok = props[name]
	return ok
}

// GetProperty returns the current value of a property.
//
// Returns ErrUnknownDevice if the label is not registered, or
// ErrUnknownProperty if the device does not expose the property.
func (c *SimCore) GetProperty(label, name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	props, ok := c.devices[label]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownDevice, label)
	}
	value, ok := props[name]
	if !ok {
		return "", fmt.Errorf("%w: %s on %s", ErrUnknownProperty, name, label)
	}
	return value, nil
}

// SetProperty sets a property to a string value.
//
// Returns ErrUnknownDevice if the label is not registered, or
// ErrUnknownProperty if the property was never defined on the device.
func (c *SimCore) SetProperty(label, name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	props, ok := c.devices[label]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDevice, label)
	}
	if _, ok := props[name]; !ok {
		return fmt.Errorf("%w: %s on %s", ErrUnknownProperty, name, label)
	}
	props[name] = value
	return nil
}

// SetPropertyInt sets an integer-valued property.
func (c *SimCore) SetPropertyInt(label, name string, value int) error {
	return c.SetProperty(label, name, strconv.Itoa(value))
}

// SetPropertyFloat sets a float-valued property.
func (c *SimCore) SetPropertyFloat(label, name string, value float64) error {
	return c.SetProperty(label, name, strconv.FormatFloat(value, 'f', -1, 64))
}
