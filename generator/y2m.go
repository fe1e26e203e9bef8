package generator

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shimmeringbee/openhab-codegen/device"
	"github.com/shimmeringbee/openhab-codegen/registry"
)

//go:embed templates/y2m_device.js.tmpl
var y2mTemplateFS embed.FS

var y2mTemplate = template.Must(template.ParseFS(y2mTemplateFS, "templates/y2m_device.js.tmpl"))

// Yandex2MQTT device types which are rendered, anything else is skipped.
const (
	Y2MLight      = "Light"
	Y2MThermostat = "Thermostat"
	Y2MShutter    = "Shutter"
	Y2MSensor     = "Sensor"
)

type y2mDevice struct {
	ID      string
	Name    string
	Room    string
	Type    string
	Subtype string
	Options []string
}

func quoteJS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// HasY2M reports if a device, or any of its channels, is exported to yandex2mqtt.
func HasY2M(d *device.Device) bool {
	if d.Y2M() != nil {
		return true
	}

	for _, ch := range d.Channels() {
		if ch.Y2M != nil {
			return true
		}
	}

	return false
}

func orDefault(s string, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}

// y2mDevices returns the yandex2mqtt declarations of a device. Multi channel devices are
// declared per channel, all other devices by their own y2m block.
func y2mDevices(d *device.Device) []y2mDevice {
	if len(d.Channels()) > 0 {
		var devices []y2mDevice

		for _, ch := range d.Channels() {
			if ch.Y2M == nil {
				continue
			}

			yd := y2mDevice{
				ID:      ch.ID,
				Name:    orDefault(ch.Y2M.Name, ch.Name),
				Room:    ch.Y2M.Room,
				Type:    orDefault(ch.Y2M.Type, Y2MLight),
				Subtype: orDefault(ch.Y2M.Subtype, "LIGHT.SW"),
			}

			if d.IsTasmota() {
				yd.Options = append(yd.Options, "sw: ''")
			}

			devices = append(devices, yd)
		}

		return devices
	}

	cfg := d.Y2M()
	if cfg == nil {
		return nil
	}

	yd := y2mDevice{
		ID:      d.ID(),
		Name:    orDefault(cfg.Name, d.Name()),
		Room:    cfg.Room,
		Type:    cfg.Type,
		Subtype: orDefault(cfg.Subtype, "LIGHT.DIM"),
	}

	if yd.Type == "" {
		switch {
		case d.HasTag(registry.TagLamp):
			yd.Type = Y2MLight

			if d.HasTag(registry.TagColourTemperature) {
				yd.Subtype = "LIGHT.CT"
			}

			if d.HasTag(registry.TagColour) {
				yd.Subtype = "LIGHT.RGB"
			}

			if d.ProxyState() {
				yd.Options = append(yd.Options, "proxy: true")
			}
		case d.HasTag(registry.TagCO2):
			yd.Type = Y2MSensor
			yd.Options = append(yd.Options, "co2: true")
		case d.HasTag(registry.TagTemperature):
			yd.Type = Y2MSensor
		}
	}

	return []y2mDevice{yd}
}

func renderable(yd y2mDevice) bool {
	switch yd.Type {
	case Y2MLight, Y2MThermostat, Y2MShutter, Y2MSensor:
		return true
	default:
		return false
	}
}

func renderY2MDevice(yd y2mDevice) ([]string, error) {
	if !renderable(yd) {
		return nil, nil
	}

	yd.Name = quoteJS(yd.Name)

	var b strings.Builder
	if err := y2mTemplate.ExecuteTemplate(&b, "y2m_device.js.tmpl", yd); err != nil {
		return nil, fmt.Errorf("failed to render yandex2mqtt device '%s': %w", yd.ID, err)
	}

	return strings.Split(strings.TrimRight(b.String(), "\n"), "\n"), nil
}

// Y2M renders the yandex2mqtt device module. Every room referenced by a rendered declaration
// must be in the room directory.
func Y2M(inv *Inventory) ([]string, error) {
	lines := []string{
		`const tpl = require("./yandex2mqtt.template")`,
		`const { LIGHT, LightGroup, Light, Thermostat, SensorClimate, SensorWindow, Shutter, Sensor } = tpl`,
		"const ROOMS = {",
	}

	for _, room := range inv.Rooms.Rooms() {
		lines = append(lines, fmt.Sprintf("  %s: '%s',", room.Identifier, quoteJS(room.Name)))
	}

	lines = append(lines, "}", "module.exports = {", "devices: [")

	for _, d := range inv.Devices() {
		if !HasY2M(d) {
			continue
		}

		for _, yd := range y2mDevices(d) {
			if !renderable(yd) {
				continue
			}

			if err := inv.Rooms.Require(yd.Room); err != nil {
				return nil, fmt.Errorf("yandex2mqtt device '%s': %w", yd.ID, err)
			}

			rendered, err := renderY2MDevice(yd)
			if err != nil {
				return nil, err
			}

			lines = append(lines, rendered...)
		}
	}

	return append(lines, "]", "}"), nil
}
