package registry

const (
	z2mDevices = "https://www.zigbee2mqtt.io/devices/"
	blakadder  = "https://templates.blakadder.com/"
)

var roomSensorSensors = []TasmotaSensor{
	{ID: "temperature", Path: ".AHT2X.Temperature"},
	{ID: "humidity", Path: ".AHT2X.Humidity"},
	{ID: "dewpoint", Path: ".AHT2X.DewPoint"},
	{ID: "pressure", Path: ".BMP280.Pressure"},
}

var tasmotaPower = []TasmotaChannel{{ID: "POWER", Kind: TasmotaSwitch}}

var catalog = []TypeEntry{
	// IKEA lamps
	{
		ID:   "IKEA_TRADFRI_LAMP_CLEAR_806",
		Tags: []string{TagZigbee, TagLamp, "ikea", TagColourTemperature},
		Name: "IKEA TRADFRI LED bulb E27 806 lumen, dimmable, white spectrum, clear (LED1736G9)",
		URL:  z2mDevices + "LED1736G9.html",
	},
	{
		ID:   "IKEA_TRADFRI_LAMP_CT_1000",
		Tags: []string{TagZigbee, TagLamp, "ikea", TagColourTemperature},
		Name: "IKEA TRADFRI LED bulb E27 1000 lumen, dimmable, white spectrum, opal white (LED1732G11)",
		URL:  z2mDevices + "LED1732G11.html",
	},
	{
		ID:     "IKEA_TRADFRI_LAMP_LED2003G10",
		Tags:   []string{TagZigbee, TagLamp, "ikea", TagColourTemperature},
		Name:   "IKEA TRADFRI LED bulb E26/27 1100/1055/1160 lumen, dimmable, white spectrum, opal white (LED2003G10)",
		URL:    z2mDevices + "LED2003G10.html",
		DimMin: ptr(2), // turns off at brightness 1
	},
	{
		ID:     "IKEA_TRADFRI_LAMP_LED1546G12",
		Tags:   []string{TagZigbee, TagLamp, "ikea", TagColourTemperature, "ct_startup"},
		Name:   "TRADFRI LED bulb E26/E27 950 lumen, dimmable, white spectrum, clear (LED1546G12)",
		URL:    z2mDevices + "LED1546G12.html",
		DimMin: ptr(2), // turns off at brightness 1
	},
	{
		ID:   "IKEA_TRADFRI_LAMP_LED2101G4",
		Tags: []string{TagZigbee, TagLamp, "ikea", TagColourTemperature, "ct_startup"},
		Name: "TRADFRI bulb E12/E14 WS globe 450/470 lumen, dimmable, white spectrum, opal white",
		URL:  z2mDevices + "LED2101G4.html",
	},
	{
		ID:   "IKEA_TRADFRI_LAMP_W_806",
		Tags: []string{TagZigbee, TagLamp, "ikea"},
		Name: "IKEA TRADFRI LED bulb E26/E27 806 lumen, dimmable, warm white (LED1836G9)",
		URL:  z2mDevices + "LED1836G9.html",
	},
	{
		ID:   "IKEA_TRADFRI_LAMP_W_250",
		Tags: []string{TagZigbee, TagLamp, "ikea"},
		Name: "IKEA TRADFRI LED bulb E27 WW clear 250 lumen, dimmable (LED1842G3)",
		URL:  z2mDevices + "LED1842G3.html",
	},
	{
		ID:   "IKEA_TRADFRI_LED_DRIVER",
		Tags: []string{TagZigbee, TagLamp, "ikea"},
		Name: "IKEA TRADFRI driver for wireless control",
		URL:  z2mDevices + "ICPSHC24-10EU-IL-1.html",
	},
	{
		ID:   "IKEA_TRADFRI_LAMP_COLOR_600",
		Tags: []string{TagZigbee, TagLamp, "ikea", TagColour, TagColourTemperature},
		Name: "TRADFRI LED bulb E14/E26/E27 600 lumen, dimmable, color, opal white",
		URL:  z2mDevices + "LED1624G9.html",
	},

	// IKEA sensors and remotes
	{
		ID:   "IKEA_TRADFRI_MOTION_SENSOR",
		Tags: []string{TagZigbee, "occupancy", "ikea", TagActivity, TagBattery},
		Name: "IKEA TRADFRI motion sensor (E1525/E1745)",
		URL:  z2mDevices + "E1525_E1745.html",
	},
	{
		ID:   "IKEA_TRADFRI_REMOTE",
		Tags: []string{TagZigbee, TagRemote, "ikea", TagBattery},
		Name: "IKEA TRADFRI remote control (E1524/E1810)",
		URL:  z2mDevices + "E1524_E1810.html",
	},
	{
		ID:   "IKEA_TRADFRI_ON_OFF",
		Tags: []string{TagZigbee, TagRemote, "ikea", TagBattery},
		Name: "IKEA TRADFRI ON/OFF switch (E1743)",
		URL:  z2mDevices + "E1743.html",
	},
	{
		ID:   "IKEA_TRADFRI_CURTAIN_REMOTE",
		Tags: []string{TagZigbee, TagRemote, "ikea", TagBattery},
		Name: "IKEA TRADFRI open/close remote (E1766)",
		URL:  z2mDevices + "E1766.html",
	},
	{
		ID:                  "IKEA_TRADFRI_STYRBAR",
		Tags:                []string{TagZigbee, TagRemote, TagSimulatedBrightness, "ikea", TagBattery},
		Name:                "IKEA STYRBAR remote control N2",
		URL:                 z2mDevices + "E2001_E2002.html",
		SimulatedBrightness: ptr(true),
	},
	{
		ID:   "IKEA_PARASOLL",
		Tags: []string{TagZigbee, "contact", "ikea", TagActivity, TagBattery},
		Name: "PARASOLL Door/Window Sensor (E2013)",
		URL:  z2mDevices + "E2013.html",
	},
	{
		ID:        "IKEA_BADRING",
		Tags:      []string{TagZigbee, "leak", "ikea", TagActivity, TagBattery},
		Name:      "BADRING water leakage sensor (E2202)",
		URL:       z2mDevices + "E2202.html",
		MQTTRemap: map[string]string{"leak": "water_leak"},
	},
	{
		ID:   "IKEA_VALLHORN",
		Tags: []string{TagZigbee, "occupancy", "ikea", "illuminance_lux", "illuminance", TagActivity, TagBattery},
		Name: "VALLHORN wireless motion sensor (E2134)",
		URL:  z2mDevices + "E2134.html",
	},
	{
		ID:   "IKEA_TRETAKT",
		Tags: []string{TagZigbee, TagPlug, "ikea"},
		Name: "TRETAKT smart plug (E22x4)",
		URL:  z2mDevices + "E22x4.html",
	},
	{
		ID:   "IKEA_INSPELNING",
		Tags: []string{TagZigbee, TagPlug, "ikea", "ac_current", "ac_energy", "ac_power", "ac_voltage"},
		Name: "INSPELNING smart plug (E2206)",
		URL:  z2mDevices + "E2206.html",
	},

	// Sockets
	{
		ID:   "OSRAM_SMART_PLUG",
		Tags: []string{TagZigbee, TagPlug},
		Name: "OSRAM Smart+ plug",
		URL:  z2mDevices + "AB3257001NJ.html",
	},

	// Xiaomi
	{
		ID:   "XIAOMI_AQARA_V1",
		Tags: []string{TagZigbee, TagTemperature, "humidity", TagActivity, TagBattery, "voltage"},
		Name: "Xiaomi MiJia temperature & humidity sensor (WSDCGQ01LM)",
		URL:  z2mDevices + "WSDCGQ01LM.html",
	},
	{
		ID:   "XIAOMI_AQARA_V2",
		Tags: []string{TagZigbee, TagTemperature, "humidity", "pressure", TagActivity, TagBattery, "voltage"},
		Name: "Xiaomi Aqara temperature, humidity and pressure sensor (WSDCGQ11LM)",
		URL:  z2mDevices + "WSDCGQ11LM.html",
	},
	{
		ID:   "XIAOMI_AQARA_LEAK_V1",
		Tags: []string{TagZigbee, "leak", TagActivity, TagBattery, "voltage"},
		Name: "Xiaomi Aqara water leak sensor (SJCGQ11LM)",
		URL:  z2mDevices + "SJCGQ11LM.html",
	},
	{
		ID:   "XIAOMI_BUTTON",
		Tags: []string{TagZigbee, TagRemote, TagBattery, "voltage"},
		Name: "Xiaomi MiJia wireless switch (WXKG01LM)",
		URL:  z2mDevices + "WXKG01LM.html",
	},

	// Aldi
	{
		ID:   "ALDI_FILAMENT",
		Tags: []string{TagZigbee, TagLamp, "aldi", TagColourTemperature},
		Name: "Aldi LIGHTWAY smart home LED-lamp - filament (F122SB62H22A4.5W)",
		URL:  z2mDevices + "F122SB62H22A4.5W.html",
	},

	// Heiman
	{
		ID:   "HEIMAN_SW_1_GANG",
		Tags: []string{TagZigbee, TagPlug, "heiman", "device_temperature"},
		Name: "HEIMAN Smart switch - 1 gang with neutral wire (HS2SW1A/HS2SW1A-N)",
		URL:  "https://zigbee.blakadder.com/Heiman_HS2SW1A.html",
	},

	// Tuya
	{
		ID:                    "TUYA_THERMOSTAT_VALVE",
		Tags:                  []string{TagZigbee, TagThermostat, TagTemperature, "local_temperature", "position", TagActivity},
		Name:                  "TuYa Radiator valve with thermostat (TS0601_thermostat)",
		URL:                   z2mDevices + "TS0601_thermostat.html",
		ThermostatControlMode: ControlModePreset,
	},
	{
		ID:                    "TUYA_THERMOSTAT_VALVE_3",
		Tags:                  []string{TagZigbee, TagThermostat, "local_temperature", TagActivity, TagBatteryLow},
		Name:                  "TuYa Radiator valve with thermostat (TS0601_thermostat 3)",
		URL:                   z2mDevices + "TS0601_thermostat_3.html",
		ThermostatControlMode: ControlModeSystem,
	},
	{
		ID:   "TUYA_WINDOW_SENSOR",
		Tags: []string{TagZigbee, "contact", TagActivity, TagBattery, "voltage"},
		Name: "TuYa Rechargeable Zigbee contact sensor (SNTZ007)",
		URL:  z2mDevices + "SNTZ007.html",
	},
	{
		ID:   "TUYA_WINDOW_SENSOR_TS0203",
		Tags: []string{TagZigbee, "contact", TagActivity, TagBattery, "voltage"},
		Name: "TuYa Rechargeable Zigbee contact sensor (TS0203)",
		URL:  z2mDevices + "TS0203.html#tuya-ts0203",
	},
	{
		ID:   "TUYA_TEMPERATURE_SENSOR_TS0201",
		Tags: []string{TagZigbee, TagTemperature, "humidity", TagActivity, TagBattery, "voltage"},
		Name: "TuYa Temperature & humidity sensor",
		URL:  z2mDevices + "TS0201.html",
	},
	{
		ID:   "TUYA_WALL_RELAY",
		Tags: []string{TagZigbee, "contact", TagBattery, "voltage"},
		Name: "TuYa Wall switch module (WHD02)",
		URL:  z2mDevices + "WHD02.html",
	},
	{
		ID:                   "TUYA_WALL_DIMMER",
		Tags:                 []string{TagZigbee, TagLamp},
		Name:                 "TuYa Wall dimmer module (TS110E_1gang_1)",
		URL:                  z2mDevices + "TS110E_1gang_1.html#tuya-ts110e_1gang_1",
		DimMin:               ptr(30),
		TransitionSwitch:     ptr(0),
		TransitionBrightness: ptr(0),
	},
	{
		ID:   "TUYA_WALL_SWITCH_TS0601",
		Tags: []string{TagZigbee, TagPlugMultiGang},
		Name: "TS0601_switch - TuYa 1, 2, 3 or 4 gang switch (Router)",
		URL:  z2mDevices + "TS0601_switch.html",
	},
	{
		ID:   "TUYA_SWITCH_TS0001",
		Tags: []string{TagZigbee, TagPlug},
		Name: "Wall switch module",
		URL:  z2mDevices + "WHD02.html#tuya-whd02",
	},
	{
		ID:   "TUYA_PLUG_TS000F",
		Tags: []string{TagZigbee, TagPlug, "ac_current", "ac_energy", "ac_power", "ac_voltage"},
		Name: "Plug socket with power function",
		URL:  z2mDevices + "TS000F_power.html",
	},

	// Lidl Silvercrest / Livarno
	{
		ID:   "SILVERCREST_SMART_PLUG",
		Tags: []string{TagZigbee, TagPlug},
		Name: "Lidl Silvercrest smart plug (EU, CH, FR, BS, DK) (HG06337)",
		URL:  z2mDevices + "HG06337.html",
	},
	{
		ID:   "SILVERCREST_SMART_BUTTON",
		Tags: []string{TagZigbee, TagRemote, TagBattery, "voltage"},
		Name: "Lidl Silvercrest smart button (HG08164)",
		URL:  z2mDevices + "HG08164.html",
	},
	{
		ID:         "LIVARNO_CELLING",
		Tags:       []string{TagZigbee, TagLamp, TagColourTemperature, TagColour},
		Name:       "Livarno Home LED ceiling light (HG08008)",
		URL:        z2mDevices + "HG08008.html#lidl-hg08008",
		ProxyState: ptr(true), // zigbee2mqtt issue 14714
	},
	{
		ID:   "LIVARNO_CELLING_14147206L",
		Tags: []string{TagZigbee, TagLamp, TagColourTemperature},
		Name: "Livarno Home Lux ceiling light (14147206L)",
		URL:  z2mDevices + "14147206L.html#lidl-14147206l",
	},
	{
		ID:         "LIVARNO_RGB_HG07834B",
		Tags:       []string{TagZigbee, TagLamp, TagColourTemperature, TagColour},
		Name:       "Livarno Lux E14 candle RGB (HG07834B)",
		URL:        z2mDevices + "HG07834B.html#lidl-hg07834b",
		ProxyState: ptr(true), // zigbee2mqtt issue 14714
	},
	{
		ID:                    "SILVERCREST_THERMOSTAT_368308_2010",
		Tags:                  []string{TagZigbee, TagThermostat, "local_temperature", TagActivity, "voltage", TagBatteryVoltage},
		Name:                  "Silvercrest radiator valve with thermostat",
		URL:                   z2mDevices + "368308_2010.html",
		BatteryType:           "1xAA", // reports voltage per cell
		ThermostatControlMode: ControlModeSystem,
	},

	// Zemnismart
	{
		ID: "ZEMNISMART_3PHASE_METER",
		Tags: []string{TagZigbee, "ac_power_factor", "ac_frequency", "ac_energy", "ac_power",
			"ac_voltage_a", "ac_voltage_b", "ac_voltage_c",
			"ac_current_a", "ac_current_b", "ac_current_c",
			"ac_power_a", "ac_power_b", "ac_power_c"},
		Name: "Smart energy monitor for 3P+N system",
		URL:  z2mDevices + "SPM02V2.5.html#tuya-spm02v2.5",
	},

	// Siterwell
	{
		ID:                    "SITERWELL_THERMOSTAT_GS361A",
		Tags:                  []string{TagZigbee, TagThermostat, "local_temperature", TagActivity, TagBattery},
		Name:                  "Siterwell GS361A-H04 valve with thermostat",
		URL:                   z2mDevices + "GS361A-H04.html",
		BatteryType:           "1xAA",
		ThermostatControlMode: ControlModeSystem,
	},

	// MOES
	{
		ID:                    "MOES_THERMOSTAT_BRT_100",
		Tags:                  []string{TagZigbee, TagThermostat, "local_temperature", "position", TagActivity, TagBattery},
		Name:                  "Moes BRT-100-TRV thermostat",
		URL:                   z2mDevices + "BRT-100-TRV.html",
		ThermostatControlMode: ControlMode5C,
	},
	{
		ID:   "MOES_SWITCH_ZS_EUB_1GANG",
		Tags: []string{TagZigbee, TagPlug},
		Name: "Wall light switch (1 gang)",
		URL:  z2mDevices + "ZS-EUB_1gang.html",
	},

	// Lonsonho
	{
		ID:   "BLINDS_MODULE_TS130F_1CH",
		Tags: []string{TagZigbee, TagBlinds},
		Name: "Curtains module (1 gang)",
		URL:  z2mDevices + "TS130F.html",
	},
	{
		ID:   "BLINDS_MODULE_TS130F_2CH",
		Tags: []string{TagZigbee, TagBlindsMultiGang},
		Name: "Curtains module (2 gang)",
		URL:  z2mDevices + "TS130F_dual.html",
	},

	// DIY zigbee
	{
		ID:   "DIY_CC2540_ROUTER",
		Tags: []string{TagZigbee},
		Name: "CC2530.ROUTER - Custom devices (DiY)",
		URL:  z2mDevices + "CC2530.ROUTER.html",
	},

	// Tasmota
	{
		ID:              "TASMOTA_SONOFF_MINI",
		Tags:            []string{TagTasmota, TagActivity, TagRSSI, TagBSSID, TagLoadAverage},
		Name:            "Sonoff Mini Switch",
		URL:             blakadder + "sonoff_mini.html",
		TasmotaChannels: tasmotaPower,
	},
	{
		ID:              "TASMOTA_SONOFF_TOUCH_EU1",
		Tags:            []string{TagTasmota, TagActivity, TagRSSI, TagBSSID, TagLoadAverage},
		Name:            "Sonoff Touch EU Switch (1 gang)",
		URL:             blakadder + "sonoff_touch_eu.html",
		TasmotaChannels: tasmotaPower,
	},
	{
		ID:   "TASMOTA_SONOFF_TOUCH_EU2",
		Tags: []string{TagTasmota, TagActivity, TagRSSI, TagBSSID, TagLoadAverage},
		Name: "Sonoff Touch EU Switch (2 gang)",
		URL:  blakadder + "sonoff_touch_eu.html",
		TasmotaChannels: []TasmotaChannel{
			{ID: "POWER1", Kind: TasmotaSwitch},
			{ID: "POWER2", Kind: TasmotaSwitch},
		},
	},
	{
		ID:   "TASMOTA_RGBW",
		Tags: []string{TagTasmota, TagActivity, TagRSSI, TagBSSID, TagLoadAverage, TagColourTemperature, TagColour},
		Name: "Tasmota RGB+W dimmer",
		URL:  blakadder + "arilux_LC06.html",
		TasmotaChannels: []TasmotaChannel{
			{ID: "POWER", Kind: TasmotaSwitch},
			{ID: "Dimmer", Kind: TasmotaDimmer},
			{ID: "White", Kind: TasmotaDimmer},
			{ID: "CT", Kind: TasmotaDimmer},
			{ID: "HSBColor", Kind: TasmotaColour},
		},
	},
	{
		ID:             "TASMOTA_WEMOS_CO2",
		Tags:           []string{TagTasmota, TagActivity, TagRSSI, TagBSSID, TagLoadAverage, TagCO2},
		Name:           "ESP8266 + Senseair S8",
		TasmotaSensors: []TasmotaSensor{{ID: "co2", Path: ".S8.CarbonDioxide"}},
	},
	{
		ID:   "TASMOTA_PWS_ROOM_SENSOR_V2",
		Tags: []string{TagTasmota, TagActivity, TagRSSI, TagBSSID, TagLoadAverage, TagCO2, TagTemperature, "humidity", "dewpoint", "pressure"},
		Name: "PWS room sensor v2",
		URL:  "https://oshwlab.com/petrows/wemos-d1-room-sensor",
		TasmotaChannels: []TasmotaChannel{
			{ID: "POWER1", Kind: TasmotaSwitch}, // red
			{ID: "POWER2", Kind: TasmotaSwitch}, // yellow
			{ID: "POWER3", Kind: TasmotaSwitch}, // green
		},
		TasmotaSensors: append([]TasmotaSensor{{ID: "co2", Path: ".S8.CarbonDioxide"}}, roomSensorSensors...),
	},
	{
		ID:             "TASMOTA_PWS_ROOM_SENSOR_V2_NOCO2",
		Tags:           []string{TagTasmota, TagActivity, TagRSSI, TagBSSID, TagLoadAverage, TagTemperature, "humidity", "dewpoint", "pressure"},
		Name:           "PWS room sensor v2 (no co2)",
		URL:            "https://oshwlab.com/petrows/wemos-d1-room-sensor",
		TasmotaSensors: roomSensorSensors,
	},

	// DIY devices
	{
		ID:   "PETROWS_CO2_SENSOR",
		Tags: []string{TagPetrows, TagActivity, TagCO2, TagCO2LED, TagDHT22, TagTemperature, "humidity", TagRSSI, TagBSSID},
		Name: "Petro.ws CO₂ sensor module",
		URL:  "https://github.com/petrows/smarthome-co2-module",
	},
}
