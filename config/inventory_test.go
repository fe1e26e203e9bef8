package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInventory(t *testing.T) {
	t.Run("errors if yaml is invalid", func(t *testing.T) {
		_, err := ParseInventory("broken", []byte("devices: [\n"))
		assert.Error(t, err)
	})

	t.Run("applies defaults when config stanza is missing", func(t *testing.T) {
		inv, err := ParseInventory("home", []byte("devices: []\n"))
		require.NoError(t, err)

		assert.Equal(t, "home", inv.ID)
		assert.Equal(t, DefaultBrokerID, inv.Config.MQTTBrokerID)
		assert.Equal(t, DefaultMQTTTopic, inv.Config.MQTTTopic)
		assert.True(t, inv.Config.ZigbeePrettyNameTopic)
		assert.Nil(t, inv.Config.SimulatedBrightness)
	})

	t.Run("keeps defaults for options missing from a partial config stanza", func(t *testing.T) {
		inv, err := ParseInventory("home", []byte("config:\n  mqtt_broker_id: mosquitto\n  simulated_brightness: false\n"))
		require.NoError(t, err)

		assert.Equal(t, "mosquitto", inv.Config.MQTTBrokerID)
		assert.Equal(t, DefaultMQTTTopic, inv.Config.MQTTTopic)
		require.NotNil(t, inv.Config.SimulatedBrightness)
		assert.False(t, *inv.Config.SimulatedBrightness)
	})

	t.Run("parses device fields", func(t *testing.T) {
		data := []byte(`
devices:
  - type: IKEA_TRADFRI_LAMP_CLEAR_806
    id: kitchen_lamp
    name: Kitchen lamp
    zigbee_id: 0x000b57fffe8f5669
    icon: kitchen
    expire: 10m
    ct_auto: false
    transition_sw: 3
    groups:
      sw: [g_kitchen]
    tags: [activity]
    y2m:
      room: kitchen
`)
		inv, err := ParseInventory("home", data)
		require.NoError(t, err)
		require.Len(t, inv.Devices, 1)

		d := inv.Devices[0]
		assert.Equal(t, "IKEA_TRADFRI_LAMP_CLEAR_806", d.Type)
		assert.Equal(t, "kitchen_lamp", d.ID)
		assert.Equal(t, "0x000b57fffe8f5669", d.ZigbeeID)
		assert.Equal(t, "10m", d.Expire)
		assert.Equal(t, []string{"g_kitchen"}, d.Groups["sw"])
		assert.Equal(t, []string{"activity"}, d.Tags)
		require.NotNil(t, d.CTAuto)
		assert.False(t, *d.CTAuto)
		require.NotNil(t, d.TransitionSwitch)
		assert.Equal(t, 3, *d.TransitionSwitch)
		require.NotNil(t, d.Y2M)
		assert.Equal(t, "kitchen", d.Y2M.Room)
	})

	t.Run("keeps channels in declaration order", func(t *testing.T) {
		data := []byte(`
devices:
  - type: TUYA_WALL_SWITCH_TS0601
    zigbee_id: "0x00124b0022aabbcc"
    channels:
      r:
        id: hall_right
        name: Hall right
      l:
        id: hall_left
        name: Hall left
        expire: 5m
      m:
        id: hall_middle
        name: Hall middle
`)
		inv, err := ParseInventory("home", data)
		require.NoError(t, err)

		channels := inv.Devices[0].Channels
		require.Len(t, channels, 3)
		assert.Equal(t, "r", channels[0].Key)
		assert.Equal(t, "hall_right", channels[0].ID)
		assert.Equal(t, "l", channels[1].Key)
		assert.Equal(t, "m", channels[2].Key)

		ch, found := channels.Get("l")
		assert.True(t, found)
		assert.Equal(t, "5m", ch.Expire)

		_, found = channels.Get("x")
		assert.False(t, found)
	})

	t.Run("errors if channels is not a mapping", func(t *testing.T) {
		_, err := ParseInventory("home", []byte("devices:\n  - type: X\n    channels: [a, b]\n"))
		assert.Error(t, err)
	})
}

func TestParseY2M(t *testing.T) {
	t.Run("keeps rooms in declaration order", func(t *testing.T) {
		cfg, err := ParseY2M([]byte("y2m:\n  rooms:\n    living: Living room\n    bedroom: Bedroom\n    attic: Attic\n"))
		require.NoError(t, err)

		assert.Equal(t, Rooms{
			{ID: "living", Name: "Living room"},
			{ID: "bedroom", Name: "Bedroom"},
			{ID: "attic", Name: "Attic"},
		}, cfg.Rooms)
	})

	t.Run("returns no rooms when the section is missing", func(t *testing.T) {
		cfg, err := ParseY2M([]byte("other: true\n"))
		require.NoError(t, err)

		assert.Empty(t, cfg.Rooms)
	})
}
