package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Run("returns a known type", func(t *testing.T) {
		entry, err := Default().Lookup("IKEA_TRADFRI_LAMP_CLEAR_806")
		require.NoError(t, err)

		assert.True(t, entry.HasTag(TagZigbee))
		assert.True(t, entry.HasTag(TagLamp))
		assert.True(t, entry.HasTag(TagColourTemperature))
		assert.False(t, entry.HasTag(TagColour))
	})

	t.Run("returns a typed lookup error for an unknown type", func(t *testing.T) {
		_, err := Default().Lookup("NOT_A_REAL_DEVICE")

		var lookupErr *LookupError
		require.True(t, errors.As(err, &lookupErr))
		assert.Equal(t, "NOT_A_REAL_DEVICE", lookupErr.Type)
		assert.ErrorIs(t, err, ErrUnknownType)
		assert.Contains(t, err.Error(), "NOT_A_REAL_DEVICE")
	})
}

func TestRegistry_Types(t *testing.T) {
	t.Run("lists every catalog type in sorted order", func(t *testing.T) {
		types := Default().Types()

		assert.Len(t, types, len(catalog))
		assert.IsIncreasing(t, types)
	})
}

func TestNew(t *testing.T) {
	t.Run("rejects duplicate type identifiers", func(t *testing.T) {
		entry := TypeEntry{ID: "A", Tags: []string{TagZigbee}}

		_, err := New(entry, entry)
		assert.ErrorIs(t, err, ErrDuplicateType)
	})

	t.Run("rejects a type without a protocol tag", func(t *testing.T) {
		_, err := New(TypeEntry{ID: "A", Tags: []string{TagLamp}})
		assert.ErrorIs(t, err, ErrInconsistentType)
	})

	t.Run("rejects battery voltage reporting without a battery type", func(t *testing.T) {
		_, err := New(TypeEntry{ID: "A", Tags: []string{TagZigbee, TagBatteryVoltage}})
		assert.ErrorIs(t, err, ErrInconsistentType)
	})

	t.Run("rejects an unknown thermostat control mode", func(t *testing.T) {
		_, err := New(TypeEntry{ID: "A", Tags: []string{TagZigbee, TagThermostat}, ThermostatControlMode: "eco"})
		assert.ErrorIs(t, err, ErrInconsistentType)
	})

	t.Run("rejects an unknown tasmota channel kind", func(t *testing.T) {
		_, err := New(TypeEntry{ID: "A", Tags: []string{TagTasmota}, TasmotaChannels: []TasmotaChannel{{ID: "S8", Kind: "co2"}}})
		assert.ErrorIs(t, err, ErrInconsistentType)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("every type has a name", func(t *testing.T) {
		for _, entry := range catalog {
			assert.NotEmpty(t, entry.Name, entry.ID)
		}
	})

	t.Run("tasmota channels and sensors only appear on tasmota types", func(t *testing.T) {
		for _, entry := range catalog {
			if len(entry.TasmotaChannels) > 0 || len(entry.TasmotaSensors) > 0 {
				assert.True(t, entry.HasTag(TagTasmota), entry.ID)
			}
		}
	})

	t.Run("simulated brightness is only set on remotes", func(t *testing.T) {
		for _, entry := range catalog {
			if entry.SimulatedBrightness != nil && *entry.SimulatedBrightness {
				assert.True(t, entry.HasTag(TagRemote), entry.ID)
			}
		}
	})
}
