package generator

import (
	"context"
	"fmt"
	"path"

	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/openhab-codegen/openhab"
)

// Root selects the directory an artifact path is relative to.
type Root int

const (
	OpenHABRoot Root = iota
	ConfigRoot
)

func (r Root) String() string {
	switch r {
	case OpenHABRoot:
		return "openhab"
	case ConfigRoot:
		return "config"
	default:
		return fmt.Sprintf("root(%d)", int(r))
	}
}

// Artifact is a generated file, as lines without terminators.
type Artifact struct {
	Root  Root
	Path  string
	Lines []string
}

const (
	ThingsPath      = "things/gen_things.things"
	ItemsPath       = "items/gen_items.items"
	RulesPath       = "rules/gen_auto.rules"
	SitemapPath     = "sitemaps/gen.sitemap"
	Y2MTemplatePath = "yandex2mqtt.template.js"
	Y2MPath         = "yandex2mqtt.codegen.js"
)

type Generator struct {
	Logger logwrap.Logger
}

// Generate builds every artifact of the inventory in memory. Nothing is returned if any
// artifact fails to build.
func (g *Generator) Generate(ctx context.Context, inv *Inventory) ([]Artifact, error) {
	things := banner("//")
	items := banner("//")

	itemSets := map[string]ItemSet{}
	var rules []Rules

	for _, file := range inv.Files {
		g.Logger.LogInfo(ctx, "Processing devices.", logwrap.Datum("inventory", file.ID), logwrap.Datum("devices", len(file.Devices)))

		for _, d := range file.Devices {
			g.Logger.LogDebug(ctx, "Generating device.", logwrap.Datum("device", d.Label()))

			deviceThings, err := Things(d)
			if err != nil {
				return nil, err
			}

			things = append(things, d.Comment()...)
			for _, t := range deviceThings {
				things = append(things, t.Lines()...)
			}

			set, err := Items(d)
			if err != nil {
				return nil, err
			}

			itemSets[d.ID()] = set
			rules = append(rules, set.Rules)

			items = append(items, d.Comment()...)
			items = append(items, itemLines(set.Items)...)
		}
	}

	artifacts := []Artifact{
		{Root: OpenHABRoot, Path: ThingsPath, Lines: things},
		{Root: OpenHABRoot, Path: ItemsPath, Lines: items},
		{Root: OpenHABRoot, Path: RulesPath, Lines: RulesFile(rules)},
		{Root: OpenHABRoot, Path: SitemapPath, Lines: Sitemap(inv, itemSets)},
	}

	transforms, err := Transforms()
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, transforms...)

	for _, file := range inv.Files {
		lines, err := ZigbeeDevices(file)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, Artifact{Root: ConfigRoot, Path: path.Join("devices", file.ID+".yaml"), Lines: lines})
	}

	if inv.Rooms.Empty() {
		g.Logger.LogInfo(ctx, "No yandex2mqtt rooms configured, skipping integration.")
		return artifacts, nil
	}

	tpl, err := assetLines(y2mTemplateAsset)
	if err != nil {
		return nil, err
	}

	y2m, err := Y2M(inv)
	if err != nil {
		return nil, err
	}

	return append(artifacts,
		Artifact{Root: OpenHABRoot, Path: Y2MTemplatePath, Lines: tpl},
		Artifact{Root: OpenHABRoot, Path: Y2MPath, Lines: y2m},
	), nil
}

func itemLines(items []openhab.Item) []string {
	lines := make([]string, 0, len(items))

	for _, item := range items {
		lines = append(lines, item.Line())
	}

	return lines
}
