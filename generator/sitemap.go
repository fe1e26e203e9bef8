package generator

import (
	"fmt"
)

const SitemapName = "gen"

// Sitemap renders the generated sitemap, one text page per inventory file holding a frame per
// device. Item sets are taken from the generation pass rather than rebuilt.
func Sitemap(inv *Inventory, items map[string]ItemSet) []string {
	lines := banner("//")
	lines = append(lines, fmt.Sprintf(`sitemap %s label="GEN ITEMS"`, SitemapName), "{")

	for _, file := range inv.Files {
		lines = append(lines, fmt.Sprintf(`Text label="Z2M %s" {`, file.ID))

		for _, d := range file.Devices {
			lines = append(lines, fmt.Sprintf(`Frame label="%s" {`, d.Label()))
			lines = append(lines, d.Comment()...)

			for _, item := range items[d.ID()].Items {
				lines = append(lines, item.SitemapLines()...)
			}

			lines = append(lines, "}")
		}

		lines = append(lines, "}")
	}

	return append(lines, "}")
}
