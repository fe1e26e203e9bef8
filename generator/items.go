package generator

import (
	"fmt"

	"github.com/shimmeringbee/openhab-codegen/device"
	"github.com/shimmeringbee/openhab-codegen/openhab"
	"github.com/shimmeringbee/openhab-codegen/registry"
)

// ItemSet is everything a device contributes to the items file, along with the rules those
// items depend on.
type ItemSet struct {
	Items []openhab.Item
	Rules Rules
}

func (s *ItemSet) add(items ...openhab.Item) {
	s.Items = append(s.Items, items...)
}

func (s *ItemSet) merge(o ItemSet) {
	s.Items = append(s.Items, o.Items...)
	s.Rules.Append(o.Rules)
}

type itemEmitter struct {
	name    string
	applies func(*device.Device) bool
	emit    func(*device.Device) (ItemSet, error)
}

func zigbeeTagged(tags ...string) func(*device.Device) bool {
	return func(d *device.Device) bool {
		return d.IsZigbee() && d.HasAnyTag(tags...)
	}
}

var itemEmitters = []itemEmitter{
	{name: "tasmota outputs", applies: (*device.Device).IsTasmota, emit: tasmotaItems},
	{name: "dimmer", applies: zigbeeTagged(registry.TagLamp), emit: dimmerItems},
	{name: "colour temperature", applies: zigbeeTagged(registry.TagColourTemperature), emit: colourTemperatureItems},
	{name: "colour", applies: zigbeeTagged(registry.TagColour), emit: colourItems},
	{name: "remote", applies: zigbeeTagged(registry.TagRemote), emit: remoteItems},
	{name: "thermostat", applies: zigbeeTagged(registry.TagThermostat), emit: thermostatItems},
	{name: "low battery", applies: zigbeeTagged(registry.TagBattery, registry.TagBatteryLow, registry.TagBatteryVoltage), emit: lowBatteryItems},
	{name: "link", applies: (*device.Device).IsZigbee, emit: linkItems},
	{name: "wifi", applies: tagged(registry.TagRSSI, registry.TagBSSID), emit: wifiItems},
	{name: "activity", applies: tagged(registry.TagActivity), emit: activityItems},
	{name: "switch", applies: tagged(registry.TagLamp, registry.TagPlug), emit: switchItems},
	{name: "multi gang switch", applies: tagged(registry.TagPlugMultiGang), emit: multiGangSwitchItems},
	{name: "blinds", applies: tagged(registry.TagBlinds), emit: blindsItems},
	{name: "multi gang blinds", applies: tagged(registry.TagBlindsMultiGang), emit: multiGangBlindsItems},
	{name: "metrics", applies: always, emit: metricItems},
}

// Items returns the items of a device, and the rules they need.
func Items(d *device.Device) (ItemSet, error) {
	var set ItemSet

	for _, e := range itemEmitters {
		if !e.applies(d) {
			continue
		}

		emitted, err := e.emit(d)
		if err != nil {
			return ItemSet{}, fmt.Errorf("failed to emit %s items for '%s': %w", e.name, d.ID(), err)
		}

		set.merge(emitted)
	}

	return set, nil
}

// bound returns an item bound to a channel of the device thing.
func bound(d *device.Device, id string, channel string) openhab.Item {
	return openhab.Item{
		ID:        id,
		BrokerID:  d.BrokerID(),
		ChannelID: d.ID() + ":" + channel,
	}
}

func tasmotaItems(d *device.Device) (ItemSet, error) {
	var set ItemSet

	for _, output := range d.Type().TasmotaChannels {
		ch, found := d.Channels().Get(output.ID)
		if !found {
			continue
		}

		item := bound(d, ch.ID, output.ID)
		item.Label = ch.Name
		item.Icon = d.Icon("light")
		item.Groups = d.ChannelGroups(output.ID, "sw")

		switch output.Kind {
		case registry.TasmotaDimmer:
			item.Type, item.Widget = "Dimmer", openhab.WidgetSlider
		case registry.TasmotaColour:
			item.Type, item.Widget = "Color", openhab.WidgetColourPicker
		default:
			item.Type, item.Widget = "Switch", openhab.WidgetSwitch
			item.Expire = d.ChannelExpire(output.ID, "OFF")
		}

		set.add(item)
	}

	return set, nil
}

func dimmerItems(d *device.Device) (ItemSet, error) {
	dim := bound(d, d.ID()+"_dim", "dim")
	dim.Type = "Dimmer"
	dim.Label = d.Name() + " DIM [%d %%]"
	dim.Icon = d.Icon("light")
	dim.Groups = d.Groups("dim")
	dim.Widget = openhab.WidgetSlider

	fast := bound(d, d.ID()+"_dim_fast", "dim_fast")
	fast.Type = "Dimmer"
	fast.Label = d.Name() + " DIM-F [%d %%]"
	fast.Groups = d.Groups("dim_fast")

	return ItemSet{Items: []openhab.Item{dim, fast}}, nil
}

func colourTemperatureItems(d *device.Device) (ItemSet, error) {
	ct := bound(d, d.ID()+"_ct", "ct")
	ct.Type = "Dimmer"
	ct.Label = d.Name() + " CT [JS(codegen-mired.js): %s]"
	ct.Icon = d.Icon("light")
	ct.Groups = d.Groups("ct")
	ct.Widget = openhab.WidgetSlider

	set := ItemSet{Items: []openhab.Item{ct}}

	if d.CTAuto() {
		rules, err := colourTemperatureRules(d)
		if err != nil {
			return ItemSet{}, err
		}

		set.Rules = rules
	}

	return set, nil
}

func colourItems(d *device.Device) (ItemSet, error) {
	colour := bound(d, d.ID()+"_color", "color")
	colour.Type = "Color"
	colour.Label = d.Name() + " Color"
	colour.Icon = "colorwheel"
	colour.Groups = d.Groups("color")
	colour.Widget = openhab.WidgetColourPicker

	mode := bound(d, d.ID()+"_color_mode", "color_mode")
	mode.Type = "String"
	mode.Label = d.Name() + " Color mode"
	mode.Icon = "colorwheel"
	mode.Groups = d.Groups("color_mode")
	mode.Widget = openhab.WidgetText

	return ItemSet{Items: []openhab.Item{colour, mode}}, nil
}

func remoteItems(d *device.Device) (ItemSet, error) {
	if !d.SimulatedBrightness() {
		return ItemSet{}, nil
	}

	dim := bound(d, d.ID()+"_dim", "dim")
	dim.Type = "Dimmer"
	dim.Label = d.Name() + " DIM [%d %%]"
	dim.Icon = d.Icon("light")
	dim.Groups = d.Groups("dim")
	dim.Widget = openhab.WidgetText

	return ItemSet{Items: []openhab.Item{dim}}, nil
}

func thermostatItems(d *device.Device) (ItemSet, error) {
	item := func(channel, itemType, label, widget string) openhab.Item {
		i := bound(d, d.ID()+"_"+channel, channel)
		i.Type = itemType
		i.Label = d.Name() + " " + label
		i.Icon = "heatingt"
		i.Groups = d.Groups(channel)
		i.Widget = widget
		return i
	}

	return ItemSet{Items: []openhab.Item{
		item("thermostat", "Number:Temperature", "SET [%.0f %unit%]", openhab.WidgetSetpoint),
		item("thermostat_mode", "String", "MODE [%s]", openhab.WidgetText),
		item("thermostat_preset", "String", "PRESET [%s]", openhab.WidgetText),
		item("thermostat_enable", "Switch", "ENABLE [%s]", openhab.WidgetSwitch),
		item("local_temperature_calibration", "Number:Temperature", "CAL [%.0f %unit%]", openhab.WidgetSetpoint),
	}}, nil
}

func lowBatteryItems(d *device.Device) (ItemSet, error) {
	low := bound(d, d.ID()+"_lowbatt", "battery_low")
	low.Type = "Switch"
	low.Label = d.Name() + " BAT [MAP(codegen-lowbat.map):%s]"
	low.Icon = "lowbattery"
	low.Groups = d.Groups("lowbattery")
	low.Widget = openhab.WidgetText

	return ItemSet{Items: []openhab.Item{low}}, nil
}

func linkItems(d *device.Device) (ItemSet, error) {
	ota := bound(d, d.ID()+"_ota", "ota")
	ota.Type = "Switch"
	ota.Label = d.Name() + " OTA [%s]"
	ota.Icon = "fire"
	ota.Groups = d.Groups("ota")
	ota.Widget = openhab.WidgetText

	link := bound(d, d.ID()+"_link", "link")
	link.Type = "Number:Dimensionless"
	link.Label = d.Name() + " LINK [%d]"
	link.Icon = "linkz"
	link.Groups = d.Groups("link")
	link.Widget = openhab.WidgetText

	return ItemSet{Items: []openhab.Item{ota, link}}, nil
}

func wifiItems(d *device.Device) (ItemSet, error) {
	var set ItemSet

	if d.HasTag(registry.TagRSSI) {
		rssi := bound(d, d.ID()+"_rssi", "rssi")
		rssi.Type = "Number:Dimensionless"
		rssi.Label = d.Name() + " RSSI [%.0f]"
		rssi.Icon = "network"
		rssi.Groups = d.Groups("rssi")
		rssi.Widget = openhab.WidgetText
		set.add(rssi)
	}

	if d.HasTag(registry.TagBSSID) {
		bssid := bound(d, d.ID()+"_bssid", "bssid")
		bssid.Type = "String"
		bssid.Label = d.Name() + " BSSID [%s]"
		bssid.Icon = "network"
		bssid.Groups = d.Groups("bssid")
		bssid.Widget = openhab.WidgetText
		set.add(bssid)
	}

	return set, nil
}

func activityItems(d *device.Device) (ItemSet, error) {
	activity := bound(d, d.ID()+"_activity", "activity")
	activity.Type = "DateTime"
	activity.Label = d.Name() + " activity [JS(codegen-display-activity.js):%s]"
	activity.Icon = "time"
	activity.Groups = d.Groups("activity")
	activity.Widget = openhab.WidgetText

	return ItemSet{Items: []openhab.Item{activity}}, nil
}

// switchItems returns the switch of a lamp or plug. With state proxying the switch leaves its
// groups to a proxy item, which only forwards commands that change the state.
func switchItems(d *device.Device) (ItemSet, error) {
	var set ItemSet

	sw := bound(d, d.ID()+"_sw", "state")
	sw.Type = "Switch"
	sw.Label = d.Name()
	sw.Icon = d.Icon("light")
	sw.Groups = d.Groups("sw")
	sw.Expire = d.Expire("OFF")
	sw.Widget = openhab.WidgetSwitch

	if d.ProxyState() {
		sw.Groups = nil

		set.add(openhab.Item{
			Type:   "Switch",
			ID:     d.ID() + "_sw_proxy",
			Label:  d.Name() + " proxy",
			Icon:   d.Icon("light"),
			Groups: d.Groups("sw"),
		})

		rules, err := proxyStateRules(d)
		if err != nil {
			return ItemSet{}, err
		}

		set.Rules = rules
	}

	set.add(sw)
	return set, nil
}

func multiGangSwitchItems(d *device.Device) (ItemSet, error) {
	var set ItemSet

	for _, ch := range d.Channels() {
		sw := bound(d, ch.ID+"_sw", "state_"+ch.Key)
		sw.Type = "Switch"
		sw.Label = ch.Name
		sw.Icon = d.Icon("light")
		sw.Groups = d.ChannelGroups(ch.Key, "sw")
		sw.Expire = d.ChannelExpire(ch.Key, "OFF")
		sw.Widget = openhab.WidgetSwitch
		set.add(sw)
	}

	return set, nil
}

// blindsGangItems returns the items of one blinds gang. Groups of single gang modules come from
// the device, multi gang modules take them from the channel configuration.
func blindsGangItems(d *device.Device, id string, name string, suffix string, groups func(kind string) []string) []openhab.Item {
	cmd := bound(d, id+"_cmd", "state"+suffix)
	cmd.Type = "String"
	cmd.Label = name + " [%s]"
	cmd.Icon = d.Icon("blinds")
	cmd.Groups = groups("cmd")
	cmd.Widget = openhab.WidgetSwitch

	mov := bound(d, id+"_mov", "moving"+suffix)
	mov.Type = "String"
	mov.Label = name + " movement"
	mov.Icon = d.Icon("blinds")
	mov.Widget = openhab.WidgetText

	pos := bound(d, id+"_pos", "position"+suffix)
	pos.Type = "Dimmer"
	pos.Label = name + " [%d %%]"
	pos.Icon = d.Icon("blinds")
	pos.Groups = groups("pos")
	pos.Widget = openhab.WidgetSlider

	cal := bound(d, id+"_cal", "calibration"+suffix)
	cal.Type = "Switch"
	cal.Label = name + " cal [%s]"
	cal.Icon = d.Icon("light")
	cal.Groups = groups("cal")
	cal.Widget = openhab.WidgetSwitch

	return []openhab.Item{cmd, mov, pos, cal}
}

func blindsItems(d *device.Device) (ItemSet, error) {
	return ItemSet{Items: blindsGangItems(d, d.ID(), d.Name(), "", d.Groups)}, nil
}

func multiGangBlindsItems(d *device.Device) (ItemSet, error) {
	var set ItemSet

	for _, ch := range d.Channels() {
		key := ch.Key
		groups := func(kind string) []string {
			return d.ChannelGroups(key, kind)
		}

		set.add(blindsGangItems(d, ch.ID, ch.Name, "_"+ch.Key, groups)...)
	}

	return set, nil
}

func metricItems(d *device.Device) (ItemSet, error) {
	var set ItemSet

	for _, m := range metrics {
		if !d.HasTag(m.ID) {
			continue
		}

		item := bound(d, d.ID()+"_"+m.ID, m.ID)
		item.Type = m.ItemType
		item.Label = d.Name() + " " + m.Title
		item.Icon = d.Icon(m.icon())
		item.Groups = d.Groups(m.ID)
		item.Widget = openhab.WidgetText
		set.add(item)
	}

	return set, nil
}
