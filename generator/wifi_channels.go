package generator

import (
	"fmt"

	"github.com/shimmeringbee/openhab-codegen/device"
	"github.com/shimmeringbee/openhab-codegen/openhab"
	"github.com/shimmeringbee/openhab-codegen/registry"
)

func tasmotaTopic(prefix string, d *device.Device, suffix string) string {
	return fmt.Sprintf("%s/%s/%s", prefix, d.Address(), suffix)
}

var tasmotaChannels = []channelEmitter{
	{name: "status", applies: always, emit: tasmotaStatus},
	{name: "activity", applies: tagged(registry.TagActivity), emit: tasmotaActivity},
	{name: "outputs", applies: always, emit: tasmotaOutputs},
	{name: "sensors", applies: always, emit: tasmotaSensors},
}

func tasmotaStatus(d *device.Device) ([]openhab.Channel, error) {
	topic := tasmotaTopic("tele", d, "STATE")

	return append(wifiChannels(topic), openhab.Channel{
		Kind: openhab.KindNumber,
		ID:   "la",
		Params: []openhab.Param{
			openhab.String("stateTopic", topic),
			openhab.String("transformationPattern", "JSONPATH:$.LoadAvg"),
		},
	}), nil
}

func tasmotaActivity(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{activityChannel(tasmotaTopic("tele", d, "STATE"))}, nil
}

func tasmotaOutputs(d *device.Device) ([]openhab.Channel, error) {
	var channels []openhab.Channel

	for _, output := range d.Type().TasmotaChannels {
		params := []openhab.Param{
			openhab.String("stateTopic", tasmotaTopic("stat", d, "RESULT")),
			openhab.String("transformationPattern", "JSONPATH:$."+output.ID),
			openhab.String("commandTopic", tasmotaTopic("cmnd", d, output.ID)),
		}

		switch output.Kind {
		case registry.TasmotaSwitch:
			params = append(params, openhab.String("on", "ON"), openhab.String("off", "OFF"))
		case registry.TasmotaDimmer:
			params = append(params, openhab.Int("min", 1), openhab.Int("max", 100))
		}

		channels = append(channels, openhab.Channel{Kind: output.Kind, ID: output.ID, Params: params})
	}

	return channels, nil
}

func tasmotaSensors(d *device.Device) ([]openhab.Channel, error) {
	var channels []openhab.Channel

	for _, sensor := range d.Type().TasmotaSensors {
		channels = append(channels, openhab.Channel{
			Kind: openhab.KindNumber,
			ID:   sensor.ID,
			Params: []openhab.Param{
				openhab.String("stateTopic", tasmotaTopic("tele", d, "SENSOR")),
				openhab.String("transformationPattern", "JSONPATH:$"+sensor.Path),
			},
		})
	}

	return channels, nil
}

func petrowsTopic(d *device.Device) string {
	return fmt.Sprintf("petrows/%s/STATE", d.DeviceID())
}

var petrowsChannels = []channelEmitter{
	{name: "co2", applies: tagged(registry.TagCO2), emit: petrowsCO2},
	{name: "dht22", applies: tagged(registry.TagDHT22), emit: petrowsDHT22},
	{name: "wifi", applies: always, emit: petrowsWifi},
	{name: "activity", applies: tagged(registry.TagActivity), emit: petrowsActivity},
}

func petrowsCO2(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{
		{
			Kind: openhab.KindNumber,
			ID:   "co2",
			Params: []openhab.Param{
				openhab.String("stateTopic", petrowsTopic(d)),
				openhab.String("transformationPattern", "JSONPATH:$.S8.CO2"),
				openhab.String("unit", "ppm"),
			},
		},
		{
			Kind: openhab.KindSwitch,
			ID:   "co2_led",
			Params: []openhab.Param{
				openhab.String("stateTopic", petrowsTopic(d)),
				openhab.String("transformationPattern", "JSONPATH:$.S8.led"),
				openhab.String("on", "1"),
				openhab.String("off", "0"),
			},
		},
	}, nil
}

func petrowsDHT22(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{
		{
			Kind: openhab.KindNumber,
			ID:   "temperature",
			Params: []openhab.Param{
				openhab.String("stateTopic", petrowsTopic(d)),
				openhab.String("transformationPattern", "JSONPATH:$.DHT22.Temperature"),
				openhab.String("unit", "°C"),
			},
		},
		{
			Kind: openhab.KindNumber,
			ID:   "humidity",
			Params: []openhab.Param{
				openhab.String("stateTopic", petrowsTopic(d)),
				openhab.String("transformationPattern", "JSONPATH:$.DHT22.Humidity"),
				openhab.String("unit", "%"),
			},
		},
	}, nil
}

func petrowsWifi(d *device.Device) ([]openhab.Channel, error) {
	return wifiChannels(petrowsTopic(d)), nil
}

func petrowsActivity(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{activityChannel(petrowsTopic(d))}, nil
}
