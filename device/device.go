package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shimmeringbee/openhab-codegen/config"
	"github.com/shimmeringbee/openhab-codegen/registry"
	"github.com/shimmeringbee/zigbee"
)

type DeviceError string

func (d DeviceError) Error() string {
	return string(d)
}

const (
	ErrMissingIdentity    = DeviceError("device has no id or name and no channel to derive them from")
	ErrMissingAddress     = DeviceError("zigbee device has no zigbee_id")
	ErrInvalidAddress     = DeviceError("zigbee_id is not a valid IEEE address")
	ErrMissingDeviceID    = DeviceError("device has no device_id")
	ErrMissingBatteryType = DeviceError("device reports battery voltage but its type has no battery type")
	ErrUnknownControlMode = DeviceError("unknown thermostat control mode")
)

// Fallbacks used when neither the device nor its type override an option.
const (
	DefaultTransition = 1
	DefaultDimMin     = 1
	DefaultDimMax     = 254
	DefaultCTMin      = 150
	DefaultCTMax      = 500
)

// Device is an inventory entry resolved against its type. It is immutable once built.
type Device struct {
	cfg    config.Device
	typ    registry.TypeEntry
	global config.Global

	id   string
	name string
	ieee zigbee.IEEEAddress
	tags map[string]struct{}
}

func New(cfg config.Device, typ registry.TypeEntry, global config.Global) (*Device, error) {
	d := &Device{
		cfg:    cfg,
		typ:    typ,
		global: global,
		id:     cfg.ID,
		name:   cfg.Name,
		tags:   map[string]struct{}{},
	}

	for _, tag := range typ.Tags {
		d.tags[tag] = struct{}{}
	}

	for _, tag := range cfg.Tags {
		d.tags[tag] = struct{}{}
	}

	if len(cfg.Channels) > 0 {
		if d.id == "" {
			d.id = cfg.Channels[0].ID
		}

		if d.name == "" {
			d.name = cfg.Channels[0].Name
		}
	}

	if d.id == "" || d.name == "" {
		return nil, fmt.Errorf("device of type '%s': %w", typ.ID, ErrMissingIdentity)
	}

	if d.IsZigbee() {
		if cfg.ZigbeeID == "" {
			return nil, fmt.Errorf("device '%s': %w", d.id, ErrMissingAddress)
		}

		ieee, err := parseIEEEAddress(cfg.ZigbeeID)
		if err != nil {
			return nil, fmt.Errorf("device '%s': %w: '%s'", d.id, ErrInvalidAddress, cfg.ZigbeeID)
		}

		d.ieee = ieee
	}

	if d.IsPetrows() && cfg.DeviceID == "" {
		return nil, fmt.Errorf("device '%s': %w", d.id, ErrMissingDeviceID)
	}

	if d.HasTag(registry.TagBatteryVoltage) && typ.BatteryType == "" {
		return nil, fmt.Errorf("device '%s': %w", d.id, ErrMissingBatteryType)
	}

	switch typ.ThermostatControlMode {
	case "", registry.ControlModeSystem, registry.ControlModePreset, registry.ControlMode5C:
	default:
		return nil, fmt.Errorf("device '%s': %w: '%s'", d.id, ErrUnknownControlMode, typ.ThermostatControlMode)
	}

	return d, nil
}

func parseIEEEAddress(s string) (zigbee.IEEEAddress, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "0x")

	if len(s) == 0 || len(s) > 16 {
		return 0, ErrInvalidAddress
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, err
	}

	return zigbee.IEEEAddress(v), nil
}

func formatIEEEAddress(a zigbee.IEEEAddress) string {
	return "0x" + a.String()
}

func (d *Device) ID() string {
	return d.id
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) Type() registry.TypeEntry {
	return d.typ
}

func (d *Device) Global() config.Global {
	return d.global
}

func (d *Device) BrokerID() string {
	return d.global.MQTTBrokerID
}

func (d *Device) DeviceID() string {
	return d.cfg.DeviceID
}

func (d *Device) Channels() config.Channels {
	return d.cfg.Channels
}

func (d *Device) Y2M() *config.Y2M {
	return d.cfg.Y2M
}

// Address is the network address of the device, the IEEE address for zigbee devices and the
// id for everything else.
func (d *Device) Address() string {
	if d.IsZigbee() {
		return formatIEEEAddress(d.ieee)
	}

	return d.id
}

func (d *Device) IEEEAddress() zigbee.IEEEAddress {
	return d.ieee
}

func (d *Device) ShortAddress() string {
	if d.IsZigbee() {
		return d.ieee.String()[12:]
	}

	if len(d.id) <= 4 {
		return d.id
	}

	return d.id[len(d.id)-4:]
}

func (d *Device) Label() string {
	return fmt.Sprintf("%s (%s)", d.name, d.Address())
}

func (d *Device) Comment() []string {
	return []string{
		"// " + d.Label(),
		fmt.Sprintf("// %s / %s", d.typ.Name, d.typ.URL),
	}
}

func (d *Device) HasTag(tag string) bool {
	_, found := d.tags[tag]
	return found
}

func (d *Device) HasAnyTag(tags ...string) bool {
	for _, tag := range tags {
		if d.HasTag(tag) {
			return true
		}
	}

	return false
}

func (d *Device) IsZigbee() bool {
	return d.HasTag(registry.TagZigbee)
}

func (d *Device) IsTasmota() bool {
	return d.HasTag(registry.TagTasmota)
}

func (d *Device) IsPetrows() bool {
	return d.HasTag(registry.TagPetrows)
}

func (d *Device) Icon(fallback string) string {
	if d.cfg.Icon != "" {
		return d.cfg.Icon
	}

	return fallback
}

func (d *Device) Groups(kind string) []string {
	return append([]string{"g_all_" + kind}, d.cfg.Groups[kind]...)
}

func (d *Device) ChannelGroups(key string, kind string) []string {
	groups := []string{"g_all_" + kind}

	if ch, found := d.cfg.Channels.Get(key); found {
		groups = append(groups, ch.Groups[kind]...)
	}

	return groups
}

// Expire returns the expire binding for the device items, or an empty string if the device
// does not expire.
func (d *Device) Expire(command string) string {
	if d.cfg.Expire == "" {
		return ""
	}

	return fmt.Sprintf("%s,command=%s", d.cfg.Expire, command)
}

func (d *Device) ChannelExpire(key string, command string) string {
	if ch, found := d.cfg.Channels.Get(key); found && ch.Expire != "" {
		return fmt.Sprintf("%s,command=%s", ch.Expire, command)
	}

	return ""
}
