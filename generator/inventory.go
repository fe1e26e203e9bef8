package generator

import (
	"fmt"

	"github.com/shimmeringbee/openhab-codegen/config"
	"github.com/shimmeringbee/openhab-codegen/device"
	"github.com/shimmeringbee/openhab-codegen/metadata"
	"github.com/shimmeringbee/openhab-codegen/registry"
)

type GeneratorError string

func (e GeneratorError) Error() string {
	return string(e)
}

const ErrDuplicateIdentity = GeneratorError("device identity is not unique")

// DuplicateError reports the first device address or id seen twice across all inventory files.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("device %s '%s' is not unique", e.Field, e.Value)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateIdentity
}

type InventoryFile struct {
	ID      string
	Devices []*device.Device
}

// Inventory is every device of every inventory file, resolved against the type registry, in
// file and then declaration order.
type Inventory struct {
	Files []InventoryFile
	Rooms metadata.RoomDirectory
}

func (i *Inventory) Devices() []*device.Device {
	var devices []*device.Device

	for _, f := range i.Files {
		devices = append(devices, f.Devices...)
	}

	return devices
}

// BuildInventory resolves every inventory file into devices, failing on the first device that
// can not be built or whose address or id has already been seen.
func BuildInventory(reg *registry.Registry, inventories []config.Inventory, y2m config.Y2MConfig) (*Inventory, error) {
	rooms, err := metadata.LoadRooms(y2m.Rooms)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	inv := &Inventory{Rooms: rooms}

	addresses := map[string]struct{}{}
	ids := map[string]struct{}{}

	for _, cfg := range inventories {
		file := InventoryFile{ID: cfg.ID}

		for i, devCfg := range cfg.Devices {
			typ, err := reg.Lookup(devCfg.Type)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve device %d of '%s': %w", i, cfg.ID, err)
			}

			d, err := device.New(devCfg, typ, cfg.Config)
			if err != nil {
				return nil, fmt.Errorf("failed to build device %d of '%s': %w", i, cfg.ID, err)
			}

			if _, found := addresses[d.Address()]; found {
				return nil, &DuplicateError{Field: "address", Value: d.Address()}
			}
			addresses[d.Address()] = struct{}{}

			if _, found := ids[d.ID()]; found {
				return nil, &DuplicateError{Field: "id", Value: d.ID()}
			}
			ids[d.ID()] = struct{}{}

			file.Devices = append(file.Devices, d)
		}

		inv.Files = append(inv.Files, file)
	}

	return inv, nil
}
