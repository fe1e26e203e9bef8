package generator

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type simulatedBrightness struct {
	Delta    int `yaml:"delta"`
	Interval int `yaml:"interval"`
}

type zigbeeDevice struct {
	FriendlyName        string               `yaml:"friendly_name"`
	SimulatedBrightness *simulatedBrightness `yaml:"simulated_brightness,omitempty"`
}

// ZigbeeDevices renders the zigbee2mqtt device registry of one inventory file, keyed by IEEE
// address. Keys are emitted sorted.
func ZigbeeDevices(file InventoryFile) ([]string, error) {
	devices := map[string]zigbeeDevice{}

	for _, d := range file.Devices {
		if !d.IsZigbee() {
			continue
		}

		entry := zigbeeDevice{FriendlyName: d.ID()}

		if d.SimulatedBrightness() {
			entry.SimulatedBrightness = &simulatedBrightness{Delta: 5, Interval: 100}
		}

		devices[d.Address()] = entry
	}

	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)

	if err := enc.Encode(devices); err != nil {
		return nil, fmt.Errorf("failed to encode zigbee devices of '%s': %w", file.ID, err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode zigbee devices of '%s': %w", file.ID, err)
	}

	return append(banner("#"), strings.Split(strings.TrimRight(b.String(), "\n"), "\n")...), nil
}
