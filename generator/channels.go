package generator

import (
	"fmt"

	"github.com/shimmeringbee/openhab-codegen/device"
	"github.com/shimmeringbee/openhab-codegen/openhab"
	"github.com/shimmeringbee/openhab-codegen/registry"
)

type channelEmitter struct {
	name    string
	applies func(*device.Device) bool
	emit    func(*device.Device) ([]openhab.Channel, error)
}

type protocol struct {
	name     string
	applies  func(*device.Device) bool
	emitters []channelEmitter
}

func always(*device.Device) bool {
	return true
}

func tagged(tags ...string) func(*device.Device) bool {
	return func(d *device.Device) bool {
		return d.HasAnyTag(tags...)
	}
}

func regexJSONPath(key string) string {
	return fmt.Sprintf(`REGEX:(.*"%s".*)∩JSONPATH:$.%s`, key, key)
}

func regexScript(key string, script string) string {
	return fmt.Sprintf(`REGEX:(.*"%s".*)∩JS:%s`, key, script)
}

func publishFormat(key string) string {
	return fmt.Sprintf(`{"%s": "%%s"}`, key)
}

func activityChannel(topic string) openhab.Channel {
	return openhab.Channel{
		Kind: openhab.KindDateTime,
		ID:   "activity",
		Params: []openhab.Param{
			openhab.String("stateTopic", topic),
			openhab.String("transformationPattern", "JS:codegen-activity.js"),
		},
	}
}

func wifiChannels(topic string) []openhab.Channel {
	return []openhab.Channel{
		{
			Kind: openhab.KindNumber,
			ID:   "rssi",
			Params: []openhab.Param{
				openhab.String("stateTopic", topic),
				openhab.String("transformationPattern", "JSONPATH:$.Wifi.RSSI"),
			},
		},
		{
			Kind: openhab.KindString,
			ID:   "bssid",
			Params: []openhab.Param{
				openhab.String("stateTopic", topic),
				openhab.String("transformationPattern", "JSONPATH:$.Wifi.BSSId"),
			},
		},
	}
}

// Things returns the things of a device, one per protocol it speaks.
func Things(d *device.Device) ([]openhab.Thing, error) {
	var things []openhab.Thing

	for _, p := range protocols {
		if !p.applies(d) {
			continue
		}

		channels, err := emitChannels(d, p.emitters)
		if err != nil {
			return nil, fmt.Errorf("failed to emit %s channels for '%s': %w", p.name, d.ID(), err)
		}

		things = append(things, openhab.Thing{
			BrokerID: d.BrokerID(),
			ID:       d.ID(),
			Name:     d.Name(),
			Channels: channels,
		})
	}

	return things, nil
}

func emitChannels(d *device.Device, emitters []channelEmitter) ([]openhab.Channel, error) {
	var channels []openhab.Channel

	for _, e := range emitters {
		if !e.applies(d) {
			continue
		}

		emitted, err := e.emit(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.name, err)
		}

		channels = append(channels, emitted...)
	}

	return channels, nil
}

var protocols = []protocol{
	{name: registry.TagTasmota, applies: (*device.Device).IsTasmota, emitters: tasmotaChannels},
	{name: registry.TagZigbee, applies: (*device.Device).IsZigbee, emitters: zigbeeChannels},
	{name: registry.TagPetrows, applies: (*device.Device).IsPetrows, emitters: petrowsChannels},
}
