package generator

import (
	"strings"

	"github.com/shimmeringbee/openhab-codegen/openhab"
)

// Metric is a read only value reported by a device, exposed as one channel and one item when
// the device carries the tag of the same id.
type Metric struct {
	ID       string
	Title    string
	ItemType string
	Unit     string
	Icon     string

	// PayloadKey is the key the value is published under, if it differs from the id.
	PayloadKey string

	On  string
	Off string
}

func (m Metric) key() string {
	if m.PayloadKey != "" {
		return m.PayloadKey
	}

	return m.ID
}

func (m Metric) icon() string {
	if m.Icon != "" {
		return m.Icon
	}

	return m.ID
}

func (m Metric) channelKind() string {
	switch {
	case strings.HasPrefix(m.ItemType, "Number"):
		return openhab.KindNumber
	case strings.HasPrefix(m.ItemType, "Switch"):
		return openhab.KindSwitch
	case strings.HasPrefix(m.ItemType, "Contact"):
		return openhab.KindContact
	default:
		return openhab.KindString
	}
}

var metrics = []Metric{
	{ID: "temperature", Title: "temp [%.0f %unit%]", ItemType: "Number:Temperature", Unit: "C°"},
	{ID: "local_temperature", Title: "temp [%.0f %unit%]", ItemType: "Number:Temperature", Unit: "C°", Icon: "temperature"},
	{ID: "device_temperature", Title: "device temp [%.0f %unit%]", ItemType: "Number:Temperature", Unit: "C°", Icon: "temperature"},
	{ID: "dewpoint", Title: "dew point [%.1f %unit%]", ItemType: "Number:Temperature", Unit: "C°", Icon: "temperature"},
	{ID: "humidity", Title: "humidity  [%.0f %%]", ItemType: "Number:Dimensionless", Unit: "%"},
	{ID: "pressure", Title: "pressure  [%.0f %unit%]", ItemType: "Number:Pressure", Unit: "hPa"},
	{ID: "illuminance", Title: "illuminance [%d]", ItemType: "Number:Dimensionless", Icon: "sun"},
	{ID: "illuminance_lux", Title: "illuminance [%d %unit%]", ItemType: "Number:Illuminance", Unit: "lx", Icon: "sun"},
	{ID: "leak", Title: "[%s]", ItemType: "Switch", Icon: "flow", On: "true", Off: "false"},
	{ID: "contact", Title: "[%s]", ItemType: "Contact", Icon: "door", On: "false", Off: "true"},
	{ID: "occupancy", Title: "[%s]", ItemType: "Switch", Icon: "motion", On: "true", Off: "false"},
	{ID: "position", Title: "POS [%.0f %%]", ItemType: "Number:Dimensionless", Icon: "heating", Unit: "%"},
	{ID: "co2", Title: "CO₂ [%d %unit%]", ItemType: "Number:Dimensionless", Icon: "co2", Unit: "ppm"},
	{ID: "co2_led", Title: "CO₂ alarm [%s]", ItemType: "Switch", Icon: "alarm"},
	{ID: "battery", Title: " BAT [%d %%]", ItemType: "Number:Dimensionless", Icon: "battery", Unit: "%"},
	{ID: "battery_voltage", Title: "[%.0f mV]", ItemType: "Number:ElectricPotential", Icon: "energy", Unit: "mV"},
	{ID: "ac_voltage", Title: "[%.0f V]", ItemType: "Number:ElectricPotential", Icon: "energy", Unit: "V", PayloadKey: "voltage"},
	{ID: "ac_current", Title: "[%.0f A]", ItemType: "Number:ElectricCurrent", Icon: "energy", Unit: "A", PayloadKey: "current"},
	{ID: "ac_power", Title: "[%.0f W]", ItemType: "Number:Power", Icon: "energy", Unit: "W", PayloadKey: "power"},
	{ID: "ac_energy", Title: "[%.0f kWh]", ItemType: "Number:Energy", Icon: "energy", Unit: "kWh", PayloadKey: "energy"},
}
