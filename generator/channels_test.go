package generator

import (
	"testing"

	"github.com/shimmeringbee/openhab-codegen/config"
	"github.com/shimmeringbee/openhab-codegen/device"
	"github.com/shimmeringbee/openhab-codegen/openhab"
	"github.com/shimmeringbee/openhab-codegen/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newDevice(t *testing.T, cfg config.Device, global config.Global) *device.Device {
	t.Helper()

	typ, err := registry.Default().Lookup(cfg.Type)
	require.NoError(t, err)

	d, err := device.New(cfg, typ, global)
	require.NoError(t, err)

	return d
}

func kitchenLamp() config.Device {
	return config.Device{
		Type:     "IKEA_TRADFRI_LAMP_CLEAR_806",
		ID:       "kitchen_lamp",
		Name:     "Kitchen lamp",
		ZigbeeID: "0x000b57fffe8f5669",
	}
}

func channelsOf(things []openhab.Thing) map[string]openhab.Channel {
	channels := map[string]openhab.Channel{}

	for _, thing := range things {
		for _, ch := range thing.Channels {
			channels[ch.ID] = ch
		}
	}

	return channels
}

func channelIDs(things []openhab.Thing) []string {
	var ids []string

	for _, thing := range things {
		for _, ch := range thing.Channels {
			ids = append(ids, ch.ID)
		}
	}

	return ids
}

func param(ch openhab.Channel, key string) string {
	for _, p := range ch.Params {
		if p.Key == key {
			return p.Value
		}
	}

	return ""
}

func countOf(haystack []string, needle string) int {
	n := 0

	for _, s := range haystack {
		if s == needle {
			n++
		}
	}

	return n
}

func TestThings(t *testing.T) {
	t.Run("lamp with colour temperature has switch, dimmer and one ct channel", func(t *testing.T) {
		d := newDevice(t, kitchenLamp(), config.DefaultGlobal())

		things, err := Things(d)
		require.NoError(t, err)
		require.Len(t, things, 1)

		ids := channelIDs(things)
		assert.Contains(t, ids, "state")
		assert.Contains(t, ids, "dim")
		assert.Contains(t, ids, "dim_fast")
		assert.Equal(t, 1, countOf(ids, "ct"))

		assert.Equal(t, `Thing mqtt:topic:openhab:kitchen_lamp "Kitchen lamp" (mqtt:broker:openhab) {`, things[0].Lines()[0])
	})

	t.Run("binds the thing to the configured broker", func(t *testing.T) {
		global := config.DefaultGlobal()
		global.MQTTBrokerID = "mosquitto"

		d := newDevice(t, kitchenLamp(), global)

		things, err := Things(d)
		require.NoError(t, err)
		assert.Equal(t, "mosquitto", things[0].BrokerID)
	})

	t.Run("zigbee channels use the pretty name topic", func(t *testing.T) {
		d := newDevice(t, kitchenLamp(), config.DefaultGlobal())

		things, err := Things(d)
		require.NoError(t, err)

		state := channelsOf(things)["state"]
		assert.Equal(t, "zigbee2mqtt/kitchen_lamp", param(state, "stateTopic"))
		assert.Equal(t, "zigbee2mqtt/kitchen_lamp/set", param(state, "commandTopic"))
		assert.Equal(t, "JS:codegen-cmd-value.js?f=state&t=1", param(state, "transformationPatternOut"))
	})

	t.Run("dimmer uses default dimming range", func(t *testing.T) {
		d := newDevice(t, kitchenLamp(), config.DefaultGlobal())

		things, err := Things(d)
		require.NoError(t, err)

		dim := channelsOf(things)["dim"]
		assert.Equal(t, "1", param(dim, "min"))
		assert.Equal(t, "254", param(dim, "max"))
		assert.Equal(t, `REGEX:(.*"brightness".*)∩JS:codegen-brightness.js`, param(dim, "transformationPattern"))
	})

	t.Run("thermostat emits setpoint, mode, preset and enable together", func(t *testing.T) {
		d := newDevice(t, config.Device{Type: "MOES_THERMOSTAT_BRT_100", ID: "bedroom_trv", Name: "Bedroom TRV", ZigbeeID: "0x0c4314fffe2a1b3c"}, config.DefaultGlobal())

		things, err := Things(d)
		require.NoError(t, err)

		channels := channelsOf(things)
		for _, id := range []string{"thermostat", "thermostat_mode", "thermostat_preset", "thermostat_enable", "local_temperature_calibration"} {
			assert.Contains(t, channels, id)
		}

		assert.Equal(t, "JS:codegen-cmd-thermostat-enable-5c.js", param(channels["thermostat_enable"], "transformationPatternOut"))
	})

	t.Run("system mode thermostats use the plain enable scripts", func(t *testing.T) {
		d := newDevice(t, config.Device{Type: "SITERWELL_THERMOSTAT_GS361A", ID: "hall_trv", Name: "Hall TRV", ZigbeeID: "0x0c4314fffe2a1b3d"}, config.DefaultGlobal())

		things, err := Things(d)
		require.NoError(t, err)

		assert.Equal(t, "JS:codegen-cmd-thermostat-enable.js", param(channelsOf(things)["thermostat_enable"], "transformationPatternOut"))
	})

	t.Run("battery voltage with a battery type selects the voltage script", func(t *testing.T) {
		d := newDevice(t, config.Device{Type: "SILVERCREST_THERMOSTAT_368308_2010", ID: "office_trv", Name: "Office TRV", ZigbeeID: "0x0c4314fffe2a1b3e"}, config.DefaultGlobal())

		things, err := Things(d)
		require.NoError(t, err)

		ids := channelIDs(things)
		assert.Equal(t, 1, countOf(ids, "battery_low"))
		assert.Contains(t, param(channelsOf(things)["battery_low"], "transformationPattern"), "codegen-lowbat-1xAA.js")
		assert.Equal(t, "mV", param(channelsOf(things)["battery_low"], "unit"))
	})

	t.Run("battery voltage takes precedence over battery percentage", func(t *testing.T) {
		typ := registry.TypeEntry{
			ID:          "TEST_BATTERY",
			Tags:        []string{registry.TagZigbee, registry.TagBattery, registry.TagBatteryVoltage},
			BatteryType: "1xAA",
		}

		d, err := device.New(config.Device{ID: "sensor", Name: "Sensor", ZigbeeID: "0x00158d0001a2b3c5"}, typ, config.DefaultGlobal())
		require.NoError(t, err)

		things, err := Things(d)
		require.NoError(t, err)

		assert.Equal(t, 1, countOf(channelIDs(things), "battery_low"))

		lowBattery := channelsOf(things)["battery_low"]
		assert.Equal(t, `REGEX:(.*"battery".*)∩JS:codegen-lowbat-1xAA.js`, param(lowBattery, "transformationPattern"))
		assert.Equal(t, "mV", param(lowBattery, "unit"))
	})

	t.Run("battery low only passes the boolean payload through", func(t *testing.T) {
		d := newDevice(t, config.Device{Type: "TUYA_THERMOSTAT_VALVE_3", ID: "study_trv", Name: "Study TRV", ZigbeeID: "0x0c4314fffe2a1b3f"}, config.DefaultGlobal())

		things, err := Things(d)
		require.NoError(t, err)

		assert.Equal(t, 1, countOf(channelIDs(things), "battery_low"))

		lowBattery := channelsOf(things)["battery_low"]
		assert.Equal(t, openhab.KindSwitch, lowBattery.Kind)
		assert.Equal(t, `REGEX:(.*"battery_low".*)∩JSONPATH:$.battery_low`, param(lowBattery, "transformationPattern"))
		assert.Equal(t, "true", param(lowBattery, "on"))
		assert.Equal(t, "false", param(lowBattery, "off"))
		assert.Empty(t, param(lowBattery, "unit"))
	})

	t.Run("battery percentage selects the percentage script", func(t *testing.T) {
		d := newDevice(t, config.Device{Type: "IKEA_TRADFRI_REMOTE", ID: "remote", Name: "Remote", ZigbeeID: "0x000b57fffe8f5670"}, config.DefaultGlobal())

		things, err := Things(d)
		require.NoError(t, err)

		assert.Equal(t, `REGEX:(.*"battery".*)∩JS:codegen-lowbat.js`, param(channelsOf(things)["battery_low"], "transformationPattern"))
	})

	t.Run("remote only has simulated brightness channels when enabled", func(t *testing.T) {
		cfg := config.Device{Type: "IKEA_TRADFRI_REMOTE", ID: "remote", Name: "Remote", ZigbeeID: "0x000b57fffe8f5670"}

		plain, err := Things(newDevice(t, cfg, config.DefaultGlobal()))
		require.NoError(t, err)
		assert.NotContains(t, channelIDs(plain), "action_dim")

		global := config.DefaultGlobal()
		global.SimulatedBrightness = ptr(true)

		simulated, err := Things(newDevice(t, cfg, global))
		require.NoError(t, err)
		assert.Contains(t, channelIDs(simulated), "action")
		assert.Contains(t, channelIDs(simulated), "dim")
		assert.Contains(t, channelIDs(simulated), "action_dim")
	})

	t.Run("multi gang blinds emit a set of channels per gang", func(t *testing.T) {
		cfg := config.Device{
			Type:     "BLINDS_MODULE_TS130F_2CH",
			ZigbeeID: "0xa4c138aabbccdd01",
			Channels: config.Channels{
				{Key: "l1", ID: "blinds_left", Name: "Left blinds"},
				{Key: "l2", ID: "blinds_right", Name: "Right blinds"},
			},
		}

		things, err := Things(newDevice(t, cfg, config.DefaultGlobal()))
		require.NoError(t, err)

		ids := channelIDs(things)
		assert.Contains(t, ids, "position_l1")
		assert.Contains(t, ids, "position_l2")
		assert.Equal(t, "JS:codegen-rpos.js?channel=position_l2", param(channelsOf(things)["position_l2"], "transformationPattern"))
	})

	t.Run("tasmota devices emit status, outputs and sensors on device topics", func(t *testing.T) {
		cfg := config.Device{
			Type: "TASMOTA_PWS_ROOM_SENSOR_V2",
			ID:   "room_sensor",
			Name: "Room sensor",
		}

		things, err := Things(newDevice(t, cfg, config.DefaultGlobal()))
		require.NoError(t, err)

		channels := channelsOf(things)
		assert.Equal(t, "tele/room_sensor/STATE", param(channels["rssi"], "stateTopic"))
		assert.Equal(t, "cmnd/room_sensor/POWER2", param(channels["POWER2"], "commandTopic"))
		assert.Equal(t, "JSONPATH:$.S8.CarbonDioxide", param(channels["co2"], "transformationPattern"))
		assert.Equal(t, "tele/room_sensor/SENSOR", param(channels["temperature"], "stateTopic"))
	})

	t.Run("petrows devices read the device state topic", func(t *testing.T) {
		cfg := config.Device{Type: "PETROWS_CO2_SENSOR", ID: "co2_sensor", Name: "CO2", DeviceID: "a1b2c3"}

		things, err := Things(newDevice(t, cfg, config.DefaultGlobal()))
		require.NoError(t, err)

		channels := channelsOf(things)
		assert.Equal(t, "petrows/a1b2c3/STATE", param(channels["co2"], "stateTopic"))
		assert.Equal(t, "JSONPATH:$.DHT22.Humidity", param(channels["humidity"], "transformationPattern"))
		assert.Equal(t, 1, countOf(channelIDs(things), "activity"))
	})

	t.Run("metric channels honour type payload remapping", func(t *testing.T) {
		typ := registry.TypeEntry{
			ID:        "TEST_LEAK",
			Tags:      []string{registry.TagZigbee, "leak"},
			MQTTRemap: map[string]string{"leak": "water_leak"},
		}

		d, err := device.New(config.Device{ID: "sink", Name: "Sink", ZigbeeID: "0x00158d0001a2b3c4"}, typ, config.DefaultGlobal())
		require.NoError(t, err)

		things, err := Things(d)
		require.NoError(t, err)

		leak := channelsOf(things)["leak"]
		assert.Equal(t, openhab.KindSwitch, leak.Kind)
		assert.Equal(t, `REGEX:(.*"water_leak".*)∩JSONPATH:$.water_leak`, param(leak, "transformationPattern"))
	})
}
