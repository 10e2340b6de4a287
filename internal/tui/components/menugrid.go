// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hollowmere/fieldguide/internal/markup"
	"github.com/hollowmere/fieldguide/internal/tui/styles"
)

// MenuEntry is one topic line in the menu grid.
type MenuEntry struct {
	Order int
	Label string // display name, may carry <a|A>-style hotkey markup
}

// MenuGrid lays out topic entries in two columns. The first half of the
// entries fills the left column top to bottom, the rest the right.
type MenuGrid struct {
	width   int
	entries []MenuEntry
}

// NewMenuGrid creates an empty menu grid.
func NewMenuGrid() *MenuGrid {
	return &MenuGrid{}
}

// SetWidth sets the rendering width of the grid.
func (g *MenuGrid) SetWidth(width int) *MenuGrid {
	g.width = width
	return g
}

// SetEntries replaces the topic entries.
func (g *MenuGrid) SetEntries(entries []MenuEntry) *MenuGrid {
	g.entries = entries
	return g
}

// Len returns the number of entries.
func (g *MenuGrid) Len() int {
	return len(g.entries)
}

// Render renders the two-column grid. The right column starts at half the
// width or just past the widest left label, whichever is further.
func (g *MenuGrid) Render() string {
	if len(g.entries) == 0 {
		return ""
	}

	rows := (len(g.entries) + 1) / 2
	left := g.entries[:rows]
	right := g.entries[rows:]

	widest := 0
	for _, e := range left {
		if w := lipgloss.Width(markup.ShortcutText(e.Label)); w > widest {
			widest = w
		}
	}
	offset := g.width / 2
	if widest+4 > offset {
		offset = widest + 4
	}

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		line := renderMenuEntry(left[i])
		if i < len(right) {
			pad := offset - lipgloss.Width(line)
			if pad < 1 {
				pad = 1
			}
			line += strings.Repeat(" ", pad) + renderMenuEntry(right[i])
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderMenuEntry(e MenuEntry) string {
	return markup.RenderShortcut(e.Label, styles.TopicNameStyle, styles.HotkeyStyle)
}
