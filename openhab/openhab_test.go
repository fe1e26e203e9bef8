package openhab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannel_Line(t *testing.T) {
	t.Run("quotes strings and leaves numbers bare in insertion order", func(t *testing.T) {
		c := Channel{
			Kind: KindDimmer,
			ID:   "dim",
			Params: []Param{
				String("stateTopic", "zigbee2mqtt/lamp"),
				Int("min", 1),
				Int("max", 254),
			},
		}

		assert.Equal(t, "\t\tType dimmer : dim [stateTopic=\"zigbee2mqtt/lamp\", min=1, max=254]", c.Line())
	})

	t.Run("escapes double quotes in string values", func(t *testing.T) {
		c := Channel{Kind: KindSwitch, ID: "state_l1", Params: []Param{String("formatBeforePublish", `{"state_l1": "%s"}`)}}

		assert.Equal(t, `		Type switch : state_l1 [formatBeforePublish="{\"state_l1\": \"%s\"}"]`, c.Line())
	})
}

func TestThing_Lines(t *testing.T) {
	t.Run("wraps channels in a thing block", func(t *testing.T) {
		th := Thing{
			BrokerID: "openhab",
			ID:       "kitchen_lamp",
			Name:     "Kitchen lamp",
			Channels: []Channel{{Kind: KindSwitch, ID: "state", Params: []Param{String("stateTopic", "t")}}},
		}

		assert.Equal(t, []string{
			`Thing mqtt:topic:openhab:kitchen_lamp "Kitchen lamp" (mqtt:broker:openhab) {`,
			"\tChannels:",
			"\t\tType switch : state [stateTopic=\"t\"]",
			"}",
		}, th.Lines())
	})
}

func TestItem(t *testing.T) {
	t.Run("renders a bound item with icon and groups", func(t *testing.T) {
		i := Item{
			Type:      "Switch",
			ID:        "kitchen_lamp_sw",
			Label:     "Kitchen lamp",
			Icon:      "light",
			Groups:    []string{"g_all_sw", "g_kitchen"},
			BrokerID:  "openhab",
			ChannelID: "kitchen_lamp:state",
			Widget:    WidgetSwitch,
		}

		assert.Equal(t, `Switch kitchen_lamp_sw "Kitchen lamp" <light> (g_all_sw,g_kitchen) {channel="mqtt:topic:openhab:kitchen_lamp:state"}`, i.Line())
		assert.Equal(t, []string{"Switch item=kitchen_lamp_sw"}, i.SitemapLines())
	})

	t.Run("renders expiry", func(t *testing.T) {
		i := Item{Type: "Switch", ID: "a_sw", Label: "A", BrokerID: "openhab", ChannelID: "a:state", Expire: "10m,command=OFF"}

		assert.Equal(t, `Switch a_sw "A" {channel="mqtt:topic:openhab:a:state", expire="10m,command=OFF" [ignoreStateUpdates="true"]}`, i.Line())
	})

	t.Run("renders an unbound item without binding", func(t *testing.T) {
		i := Item{Type: "Switch", ID: "a_sw_proxy", Label: "A proxy", Icon: "light", Groups: []string{"g_all_sw"}}

		assert.Equal(t, `Switch a_sw_proxy "A proxy" <light> (g_all_sw)`, i.Line())
		assert.Empty(t, i.SitemapLines())
	})
}
