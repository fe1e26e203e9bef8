package registry

// Protocol tags, every type carries exactly one of these.
const (
	TagZigbee  = "zigbee"
	TagTasmota = "tasmota"
	TagPetrows = "petrows"
)

// Capability tags.
const (
	TagLamp                = "lamp"
	TagPlug                = "plug"
	TagPlugMultiGang       = "plug_mt"
	TagBlinds              = "blinds"
	TagBlindsMultiGang     = "blinds_mt"
	TagColourTemperature   = "ct"
	TagColour              = "color"
	TagRemote              = "remote"
	TagThermostat          = "thermostat"
	TagActivity            = "activity"
	TagBattery             = "battery"
	TagBatteryLow          = "battery_low"
	TagBatteryVoltage      = "battery_voltage"
	TagRSSI                = "rssi"
	TagBSSID               = "bssid"
	TagLoadAverage         = "la"
	TagCO2                 = "co2"
	TagCO2LED              = "co2_led"
	TagDHT22               = "dht22"
	TagTemperature         = "temperature"
	TagSimulatedBrightness = "simulated_brightness"
)

// Thermostat control modes, selecting how the enable switch is mapped onto the device.
const (
	ControlModeSystem = "system_mode"
	ControlModePreset = "preset"
	ControlMode5C     = "5c"
)

// Tasmota channel kinds.
const (
	TasmotaSwitch = "switch"
	TasmotaDimmer = "dimmer"
	TasmotaColour = "color"
)
