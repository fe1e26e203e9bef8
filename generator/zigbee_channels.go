package generator

import (
	"fmt"

	"github.com/shimmeringbee/openhab-codegen/device"
	"github.com/shimmeringbee/openhab-codegen/openhab"
	"github.com/shimmeringbee/openhab-codegen/registry"
)

var zigbeeChannels = []channelEmitter{
	{name: "switch", applies: tagged(registry.TagLamp, registry.TagPlug), emit: zigbeeSwitch},
	{name: "multi gang switch", applies: tagged(registry.TagPlugMultiGang), emit: zigbeeMultiGangSwitch},
	{name: "blinds", applies: tagged(registry.TagBlinds), emit: zigbeeBlinds},
	{name: "multi gang blinds", applies: tagged(registry.TagBlindsMultiGang), emit: zigbeeMultiGangBlinds},
	{name: "dimmer", applies: tagged(registry.TagLamp), emit: zigbeeDimmer},
	{name: "colour temperature", applies: tagged(registry.TagColourTemperature), emit: zigbeeColourTemperature},
	{name: "colour", applies: tagged(registry.TagColour), emit: zigbeeColour},
	{name: "remote", applies: tagged(registry.TagRemote), emit: zigbeeRemote},
	{name: "thermostat", applies: tagged(registry.TagThermostat), emit: zigbeeThermostat},
	{name: "metrics", applies: always, emit: zigbeeMetrics},
	{name: "activity", applies: tagged(registry.TagActivity), emit: zigbeeActivity},
	{name: "low battery", applies: tagged(registry.TagBattery, registry.TagBatteryLow, registry.TagBatteryVoltage), emit: zigbeeLowBattery},
	{name: "link", applies: always, emit: zigbeeLink},
}

func zigbeeSwitch(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{{
		Kind: openhab.KindSwitch,
		ID:   "state",
		Params: []openhab.Param{
			openhab.String("stateTopic", d.StateTopic()),
			openhab.String("commandTopic", d.CommandTopic()),
			openhab.String("transformationPattern", "JSONPATH:$.state"),
			openhab.String("transformationPatternOut", fmt.Sprintf("JS:codegen-cmd-value.js?f=state&t=%d", d.TransitionSwitch())),
		},
	}}, nil
}

func zigbeeMultiGangSwitch(d *device.Device) ([]openhab.Channel, error) {
	var channels []openhab.Channel

	for _, ch := range d.Channels() {
		key := "state_" + ch.Key

		channels = append(channels, openhab.Channel{
			Kind: openhab.KindSwitch,
			ID:   key,
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", "JSONPATH:$."+key),
				openhab.String("formatBeforePublish", publishFormat(key)),
			},
		})
	}

	return channels, nil
}

// blindsChannels returns the channels of one blinds gang, suffix is empty for single gang
// modules.
func blindsChannels(d *device.Device, suffix string) []openhab.Channel {
	moving, state, position, calibration := "moving"+suffix, "state"+suffix, "position"+suffix, "calibration"+suffix

	return []openhab.Channel{
		{
			Kind: openhab.KindString,
			ID:   moving,
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("transformationPattern", "JSONPATH:$."+moving),
			},
		},
		{
			Kind: openhab.KindString,
			ID:   state,
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", "JSONPATH:$."+state),
				openhab.String("formatBeforePublish", publishFormat(state)),
			},
		},
		{
			Kind: openhab.KindDimmer,
			ID:   position,
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", "JS:codegen-rpos.js?channel="+position),
				openhab.String("transformationPatternOut", "JS:codegen-cmd-rpos.js?channel="+position),
			},
		},
		{
			Kind: openhab.KindSwitch,
			ID:   calibration,
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", "JSONPATH:$."+calibration),
				openhab.String("formatBeforePublish", publishFormat(calibration)),
			},
		},
	}
}

func zigbeeBlinds(d *device.Device) ([]openhab.Channel, error) {
	return blindsChannels(d, ""), nil
}

func zigbeeMultiGangBlinds(d *device.Device) ([]openhab.Channel, error) {
	var channels []openhab.Channel

	for _, ch := range d.Channels() {
		channels = append(channels, blindsChannels(d, "_"+ch.Key)...)
	}

	return channels, nil
}

func zigbeeDimmer(d *device.Device) ([]openhab.Channel, error) {
	dimmer := func(id string, transition int) openhab.Channel {
		return openhab.Channel{
			Kind: openhab.KindDimmer,
			ID:   id,
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", regexScript("brightness", "codegen-brightness.js")),
				openhab.String("transformationPatternOut", fmt.Sprintf("JS:codegen-cmd-value.js?f=brightness&t=%d", transition)),
				openhab.Int("min", d.DimMin()),
				openhab.Int("max", d.DimMax()),
			},
		}
	}

	return []openhab.Channel{
		dimmer("dim", d.TransitionBrightness()),
		dimmer("dim_fast", 0),
	}, nil
}

func zigbeeColourTemperature(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{{
		Kind: openhab.KindDimmer,
		ID:   "ct",
		Params: []openhab.Param{
			openhab.String("stateTopic", d.StateTopic()),
			openhab.String("commandTopic", d.CommandTopic()),
			openhab.String("transformationPattern", regexJSONPath("color_temp")),
			openhab.String("transformationPatternOut", "JS:codegen-cmd-value.js?f=color_temp&t=3"),
			openhab.Int("min", d.CTMin()),
			openhab.Int("max", d.CTMax()),
		},
	}}, nil
}

func zigbeeColour(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{
		{
			Kind: openhab.KindColour,
			ID:   "color",
			Params: []openhab.Param{
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPatternOut", "JS:codegen-cmd-color_xy.js"),
			},
		},
		{
			Kind: openhab.KindString,
			ID:   "color_mode",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("transformationPattern", regexJSONPath("color_mode")),
			},
		},
	}, nil
}

func zigbeeRemote(d *device.Device) ([]openhab.Channel, error) {
	channels := []openhab.Channel{{
		Kind: openhab.KindString,
		ID:   "action",
		Params: []openhab.Param{
			openhab.String("stateTopic", d.StateTopic()),
			openhab.String("commandTopic", d.CommandTopic()),
			openhab.String("transformationPattern", regexJSONPath("action")),
			openhab.String("trigger", "true"),
		},
	}}

	if !d.SimulatedBrightness() {
		return channels, nil
	}

	// Absolute and relative brightness, as simulated by zigbee2mqtt.
	return append(channels,
		openhab.Channel{
			Kind: openhab.KindDimmer,
			ID:   "dim",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("transformationPattern", `REGEX:(.*"action_brightness_delta".*)∩JSONPATH:$.brightness`),
				openhab.Int("min", 0),
				openhab.Int("max", 255),
			},
		},
		openhab.Channel{
			Kind: openhab.KindNumber,
			ID:   "action_dim",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("transformationPattern", regexJSONPath("action_brightness_delta")),
				openhab.String("trigger", "true"),
			},
		},
	), nil
}

func thermostatScriptSuffix(d *device.Device) (string, error) {
	switch mode := d.ThermostatControlMode(); mode {
	case registry.ControlModeSystem:
		return "", nil
	case registry.ControlModePreset, registry.ControlMode5C:
		return "-" + mode, nil
	default:
		return "", fmt.Errorf("%w: '%s'", device.ErrUnknownControlMode, mode)
	}
}

func zigbeeThermostat(d *device.Device) ([]openhab.Channel, error) {
	suffix, err := thermostatScriptSuffix(d)
	if err != nil {
		return nil, err
	}

	return []openhab.Channel{
		{
			Kind: openhab.KindNumber,
			ID:   "thermostat",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", regexJSONPath("current_heating_setpoint")),
				openhab.String("transformationPatternOut", "JS:codegen-cmd-float.js?f=current_heating_setpoint"),
				openhab.String("unit", "C°"),
			},
		},
		{
			Kind: openhab.KindString,
			ID:   "thermostat_mode",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", regexJSONPath("system_mode")),
				openhab.String("formatBeforePublish", publishFormat("system_mode")),
			},
		},
		{
			Kind: openhab.KindString,
			ID:   "thermostat_preset",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", regexJSONPath("preset")),
				openhab.String("formatBeforePublish", publishFormat("preset")),
			},
		},
		{
			Kind: openhab.KindSwitch,
			ID:   "thermostat_enable",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", regexScript("system_mode", "codegen-thermostat-enable"+suffix+".js")),
				openhab.String("transformationPatternOut", "JS:codegen-cmd-thermostat-enable"+suffix+".js"),
			},
		},
		{
			Kind: openhab.KindString,
			ID:   "local_temperature_calibration",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("commandTopic", d.CommandTopic()),
				openhab.String("transformationPattern", regexJSONPath("local_temperature_calibration")),
				openhab.String("transformationPatternOut", "JS:codegen-cmd-float.js?f=local_temperature_calibration"),
				openhab.String("unit", "C°"),
			},
		},
	}, nil
}

func zigbeeMetrics(d *device.Device) ([]openhab.Channel, error) {
	var channels []openhab.Channel

	for _, m := range metrics {
		if !d.HasTag(m.ID) {
			continue
		}

		key := d.PayloadKey(m.ID, m.key())

		params := []openhab.Param{
			openhab.String("stateTopic", d.StateTopic()),
			openhab.String("transformationPattern", regexJSONPath(key)),
		}

		if m.Unit != "" {
			params = append(params, openhab.String("unit", m.Unit))
		}

		if m.On != "" {
			params = append(params, openhab.String("on", m.On), openhab.String("off", m.Off))
		}

		channels = append(channels, openhab.Channel{Kind: m.channelKind(), ID: m.ID, Params: params})
	}

	return channels, nil
}

func zigbeeActivity(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{activityChannel(d.StateTopic())}, nil
}

// zigbeeLowBattery emits a single battery_low switch, derived from the most precise battery
// report the device offers.
func zigbeeLowBattery(d *device.Device) ([]openhab.Channel, error) {
	var params []openhab.Param

	switch {
	case d.HasTag(registry.TagBatteryVoltage):
		if d.BatteryType() == "" {
			return nil, device.ErrMissingBatteryType
		}

		params = []openhab.Param{
			openhab.String("stateTopic", d.StateTopic()),
			openhab.String("transformationPattern", regexScript("battery", "codegen-lowbat-"+d.BatteryType()+".js")),
			openhab.String("unit", "mV"),
		}
	case d.HasTag(registry.TagBattery):
		params = []openhab.Param{
			openhab.String("stateTopic", d.StateTopic()),
			openhab.String("transformationPattern", regexScript("battery", "codegen-lowbat.js")),
		}
	default:
		params = []openhab.Param{
			openhab.String("stateTopic", d.StateTopic()),
			openhab.String("transformationPattern", regexJSONPath("battery_low")),
			openhab.String("on", "true"),
			openhab.String("off", "false"),
		}
	}

	return []openhab.Channel{{Kind: openhab.KindSwitch, ID: "battery_low", Params: params}}, nil
}

func zigbeeLink(d *device.Device) ([]openhab.Channel, error) {
	return []openhab.Channel{
		{
			Kind: openhab.KindNumber,
			ID:   "link",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("transformationPattern", regexJSONPath("linkquality")),
			},
		},
		{
			Kind: openhab.KindSwitch,
			ID:   "ota",
			Params: []openhab.Param{
				openhab.String("stateTopic", d.StateTopic()),
				openhab.String("transformationPattern", regexJSONPath("update_available")),
				openhab.String("on", "true"),
				openhab.String("off", "false"),
			},
		},
	}, nil
}
