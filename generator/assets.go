package generator

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed assets/transform/* assets/yandex2mqtt.template.js
var assetFS embed.FS

const (
	transformDirectory = "assets/transform"
	y2mTemplateAsset   = "assets/yandex2mqtt.template.js"
)

func assetLines(name string) ([]string, error) {
	data, err := fs.ReadFile(assetFS, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset '%s': %w", name, err)
	}

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

// Transforms returns the embedded transformation scripts in name order.
func Transforms() ([]Artifact, error) {
	entries, err := fs.ReadDir(assetFS, transformDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to list transforms: %w", err)
	}

	var artifacts []Artifact

	for _, entry := range entries {
		lines, err := assetLines(path.Join(transformDirectory, entry.Name()))
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, Artifact{
			Root:  OpenHABRoot,
			Path:  path.Join("transform", entry.Name()),
			Lines: lines,
		})
	}

	return artifacts, nil
}
