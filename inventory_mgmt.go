package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shimmeringbee/openhab-codegen/config"
)

// loadInventories reads every inventory file in dir, in name order. The file stem is the
// inventory id.
func loadInventories(dir string) ([]config.Inventory, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory listing for inventories: %w", err)
	}

	var retInvs []config.Inventory

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".yaml") {
			continue
		}

		fullPath := filepath.Join(dir, file.Name())
		data, err := os.ReadFile(fullPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read inventory file '%s': %w", fullPath, err)
		}

		inv, err := config.ParseInventory(strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())), data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse inventory file '%s': %w", fullPath, err)
		}

		inv.Path = fullPath
		retInvs = append(retInvs, inv)
	}

	return retInvs, nil
}

// loadY2M reads the yandex2mqtt configuration, which is optional.
func loadY2M(path string) (config.Y2MConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Y2MConfig{}, nil
	} else if err != nil {
		return config.Y2MConfig{}, fmt.Errorf("failed to read y2m configuration '%s': %w", path, err)
	}

	return config.ParseY2M(data)
}
