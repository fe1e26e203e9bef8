package registry

import (
	"fmt"
	"sort"
	"sync"
)

type TasmotaChannel struct {
	ID   string
	Kind string
}

type TasmotaSensor struct {
	ID   string
	Path string
}

// TypeEntry describes a model of device, its capability tags and the defaults that apply to
// every device of this type. Unset pointer fields fall through to the generator defaults.
type TypeEntry struct {
	ID   string
	Tags []string
	Name string
	URL  string

	DimMin *int
	DimMax *int
	CTMin  *int
	CTMax  *int

	TransitionSwitch     *int
	TransitionBrightness *int

	SimulatedBrightness *bool
	ProxyState          *bool
	ProxyStateRequest   *bool

	ThermostatControlMode string
	BatteryType           string

	TasmotaChannels []TasmotaChannel
	TasmotaSensors  []TasmotaSensor

	// MQTTRemap overrides the payload key read for a metric tag.
	MQTTRemap map[string]string
}

func (t TypeEntry) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}

	return false
}

type RegistryError string

func (r RegistryError) Error() string {
	return string(r)
}

const (
	ErrUnknownType      = RegistryError("unknown device type")
	ErrDuplicateType    = RegistryError("device type defined more than once")
	ErrInconsistentType = RegistryError("device type definition is inconsistent")
)

type LookupError struct {
	Type string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: '%s'", ErrUnknownType, e.Type)
}

func (e *LookupError) Unwrap() error {
	return ErrUnknownType
}

type Registry struct {
	types map[string]TypeEntry
}

func New(entries ...TypeEntry) (*Registry, error) {
	r := &Registry{types: make(map[string]TypeEntry, len(entries))}

	for _, entry := range entries {
		if _, found := r.types[entry.ID]; found {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateType, entry.ID)
		}

		if err := validate(entry); err != nil {
			return nil, err
		}

		r.types[entry.ID] = entry
	}

	return r, nil
}

func validate(entry TypeEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: type has no identifier", ErrInconsistentType)
	}

	protocols := 0
	for _, tag := range []string{TagZigbee, TagTasmota, TagPetrows} {
		if entry.HasTag(tag) {
			protocols++
		}
	}

	if protocols != 1 {
		return fmt.Errorf("%w: '%s' must carry exactly one protocol tag", ErrInconsistentType, entry.ID)
	}

	if entry.HasTag(TagBatteryVoltage) && entry.BatteryType == "" {
		return fmt.Errorf("%w: '%s' reports battery voltage without a battery type", ErrInconsistentType, entry.ID)
	}

	switch entry.ThermostatControlMode {
	case "", ControlModeSystem, ControlModePreset, ControlMode5C:
	default:
		return fmt.Errorf("%w: '%s' has unknown thermostat control mode '%s'", ErrInconsistentType, entry.ID, entry.ThermostatControlMode)
	}

	for _, ch := range entry.TasmotaChannels {
		switch ch.Kind {
		case TasmotaSwitch, TasmotaDimmer, TasmotaColour:
		default:
			return fmt.Errorf("%w: '%s' has tasmota channel '%s' of unknown kind '%s'", ErrInconsistentType, entry.ID, ch.ID, ch.Kind)
		}
	}

	return nil
}

func (r *Registry) Lookup(id string) (TypeEntry, error) {
	if entry, found := r.types[id]; found {
		return entry, nil
	}

	return TypeEntry{}, &LookupError{Type: id}
}

func (r *Registry) Types() []string {
	ids := make([]string, 0, len(r.types))

	for id := range r.types {
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of all built-in device types.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(catalog...)
		if err != nil {
			panic(err)
		}

		defaultRegistry = r
	})

	return defaultRegistry
}

func ptr[T any](v T) *T {
	return &v
}
