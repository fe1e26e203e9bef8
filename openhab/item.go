package openhab

import (
	"fmt"
	"strings"
)

// Sitemap widgets.
const (
	WidgetSwitch       = "Switch"
	WidgetSlider       = "Slider"
	WidgetText         = "Text"
	WidgetColourPicker = "Colorpicker"
	WidgetSetpoint     = "Setpoint"
)

// Item is a single items file entry. Items without a ChannelID are not bound to a channel.
type Item struct {
	Type   string
	ID     string
	Label  string
	Icon   string
	Groups []string

	BrokerID  string
	ChannelID string
	Expire    string

	Widget string
}

func (i Item) Line() string {
	parts := []string{i.Type, i.ID, fmt.Sprintf(`"%s"`, i.Label)}

	if i.Icon != "" {
		parts = append(parts, "<"+i.Icon+">")
	}

	if len(i.Groups) > 0 {
		parts = append(parts, "("+strings.Join(i.Groups, ",")+")")
	}

	if i.ChannelID != "" {
		binding := []string{fmt.Sprintf(`channel="mqtt:topic:%s:%s"`, i.BrokerID, i.ChannelID)}

		if i.Expire != "" {
			binding = append(binding, fmt.Sprintf(`expire="%s" [ignoreStateUpdates="true"]`, i.Expire))
		}

		parts = append(parts, "{"+strings.Join(binding, ", ")+"}")
	}

	return strings.Join(parts, " ")
}

// SitemapLines returns the widget for the item, if it has one.
func (i Item) SitemapLines() []string {
	if i.Widget == "" {
		return nil
	}

	return []string{fmt.Sprintf("%s item=%s", i.Widget, i.ID)}
}
