package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBrokerID  = "openhab"
	DefaultMQTTTopic = "zigbee2mqtt"
)

// Global holds the options of the config stanza of an inventory file, shared by all of its
// devices.
type Global struct {
	MQTTBrokerID          string `yaml:"mqtt_broker_id"`
	MQTTTopic             string `yaml:"mqtt_topic"`
	ZigbeePrettyNameTopic bool   `yaml:"zigbee_pretty_name_topic"`
	SimulatedBrightness   *bool  `yaml:"simulated_brightness"`
}

func DefaultGlobal() Global {
	return Global{
		MQTTBrokerID:          DefaultBrokerID,
		MQTTTopic:             DefaultMQTTTopic,
		ZigbeePrettyNameTopic: true,
	}
}

type Inventory struct {
	ID   string `yaml:"-"`
	Path string `yaml:"-"`

	Config  Global   `yaml:"config"`
	Devices []Device `yaml:"devices"`
}

type Device struct {
	Type string `yaml:"type"`

	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	DeviceID string `yaml:"device_id"`
	ZigbeeID string `yaml:"zigbee_id"`

	Icon   string              `yaml:"icon"`
	Expire string              `yaml:"expire"`
	Groups map[string][]string `yaml:"groups"`
	Tags   []string            `yaml:"tags"`

	CTAuto               *bool `yaml:"ct_auto"`
	TransitionSwitch     *int  `yaml:"transition_sw"`
	TransitionBrightness *int  `yaml:"transition_brightness"`
	DimMin               *int  `yaml:"dim_min"`
	DimMax               *int  `yaml:"dim_max"`
	CTMin                *int  `yaml:"ct_min"`
	CTMax                *int  `yaml:"ct_max"`
	ProxyState           *bool `yaml:"proxy_state"`
	ProxyStateRequest    *bool `yaml:"proxy_state_request"`

	Channels Channels `yaml:"channels"`
	Y2M      *Y2M     `yaml:"y2m"`
}

type Channel struct {
	Key string `yaml:"-"`

	ID     string              `yaml:"id"`
	Name   string              `yaml:"name"`
	Expire string              `yaml:"expire"`
	Groups map[string][]string `yaml:"groups"`
	Y2M    *Y2M                `yaml:"y2m"`
}

// Channels is the per gang configuration of a multi channel device, kept in the order the
// channels were declared in.
type Channels []Channel

func (c *Channels) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return errors.New("channels node is nil")
	}

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("channels must be a mapping, line %d", value.Line)
	}

	channels := make(Channels, 0, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]

		var ch Channel
		if err := valueNode.Decode(&ch); err != nil {
			return fmt.Errorf("decode channel '%s': %w", keyNode.Value, err)
		}

		ch.Key = keyNode.Value
		channels = append(channels, ch)
	}

	*c = channels
	return nil
}

func (c Channels) Get(key string) (Channel, bool) {
	for _, ch := range c {
		if ch.Key == key {
			return ch, true
		}
	}

	return Channel{}, false
}

type Y2M struct {
	Name    string `yaml:"name"`
	Room    string `yaml:"room"`
	Type    string `yaml:"type"`
	Subtype string `yaml:"subtype"`
}

type Room struct {
	ID   string
	Name string
}

// Rooms is the room directory of the yandex2mqtt integration, in declaration order.
type Rooms []Room

func (r *Rooms) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return errors.New("rooms node is nil")
	}

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("rooms must be a mapping, line %d", value.Line)
	}

	rooms := make(Rooms, 0, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		var name string
		if err := value.Content[i+1].Decode(&name); err != nil {
			return fmt.Errorf("decode room '%s': %w", value.Content[i].Value, err)
		}

		rooms = append(rooms, Room{ID: value.Content[i].Value, Name: name})
	}

	*r = rooms
	return nil
}

type Y2MConfig struct {
	Rooms Rooms `yaml:"rooms"`
}

type y2mFile struct {
	Y2M Y2MConfig `yaml:"y2m"`
}

// ParseInventory decodes an inventory file, options missing from its config stanza keep their
// defaults.
func ParseInventory(id string, data []byte) (Inventory, error) {
	inv := Inventory{
		ID:     id,
		Config: DefaultGlobal(),
	}

	if err := yaml.Unmarshal(data, &inv); err != nil {
		return Inventory{}, fmt.Errorf("failed to parse inventory '%s': %w", id, err)
	}

	return inv, nil
}

func ParseY2M(data []byte) (Y2MConfig, error) {
	var f y2mFile

	if err := yaml.Unmarshal(data, &f); err != nil {
		return Y2MConfig{}, fmt.Errorf("failed to parse y2m configuration: %w", err)
	}

	return f.Y2M, nil
}
