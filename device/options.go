package device

import (
	"fmt"

	"github.com/shimmeringbee/openhab-codegen/registry"
)

// resolve picks the first set option, device before type, then the fallback.
func resolve[T any](device *T, typ *T, fallback T) T {
	if device != nil {
		return *device
	}

	if typ != nil {
		return *typ
	}

	return fallback
}

func (d *Device) defaultTransition() int {
	// Relays switch instantly.
	if d.HasTag(registry.TagPlug) {
		return 0
	}

	return DefaultTransition
}

func (d *Device) TransitionSwitch() int {
	return resolve(d.cfg.TransitionSwitch, d.typ.TransitionSwitch, d.defaultTransition())
}

func (d *Device) TransitionBrightness() int {
	return resolve(d.cfg.TransitionBrightness, d.typ.TransitionBrightness, d.defaultTransition())
}

func (d *Device) DimMin() int {
	return resolve(d.cfg.DimMin, d.typ.DimMin, DefaultDimMin)
}

func (d *Device) DimMax() int {
	return resolve(d.cfg.DimMax, d.typ.DimMax, DefaultDimMax)
}

// CTMin and CTMax are the colour temperature limits in mired.
func (d *Device) CTMin() int {
	return resolve(d.cfg.CTMin, d.typ.CTMin, DefaultCTMin)
}

func (d *Device) CTMax() int {
	return resolve(d.cfg.CTMax, d.typ.CTMax, DefaultCTMax)
}

func (d *Device) CTAuto() bool {
	return resolve(d.cfg.CTAuto, nil, true)
}

func (d *Device) ProxyState() bool {
	return resolve(d.cfg.ProxyState, d.typ.ProxyState, false)
}

func (d *Device) ProxyStateRequest() bool {
	return resolve(d.cfg.ProxyStateRequest, d.typ.ProxyStateRequest, true)
}

// SimulatedBrightness is enabled by the type, unless the inventory config sets it globally.
func (d *Device) SimulatedBrightness() bool {
	return resolve(d.global.SimulatedBrightness, d.typ.SimulatedBrightness, false)
}

func (d *Device) ThermostatControlMode() string {
	if d.typ.ThermostatControlMode == "" {
		return registry.ControlModeSystem
	}

	return d.typ.ThermostatControlMode
}

func (d *Device) BatteryType() string {
	return d.typ.BatteryType
}

// PayloadKey returns the key a metric is published under by the device.
func (d *Device) PayloadKey(metric string, fallback string) string {
	if key, found := d.typ.MQTTRemap[metric]; found {
		return key
	}

	return fallback
}

// StateTopic is the zigbee2mqtt topic the device publishes to, addressed by friendly name
// unless pretty names are disabled.
func (d *Device) StateTopic() string {
	if d.global.ZigbeePrettyNameTopic {
		return fmt.Sprintf("%s/%s", d.global.MQTTTopic, d.id)
	}

	return fmt.Sprintf("%s/%s", d.global.MQTTTopic, d.Address())
}

func (d *Device) CommandTopic() string {
	return d.StateTopic() + "/set"
}
