package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuEntries(labels ...string) []MenuEntry {
	entries := make([]MenuEntry, len(labels))
	for i, l := range labels {
		entries[i] = MenuEntry{Order: i, Label: l}
	}
	return entries
}

func TestMenuGridSplitsColumns(t *testing.T) {
	grid := NewMenuGrid().SetWidth(80).SetEntries(menuEntries(
		"<a|A>: First aid",
		"<b|B>: Bionics",
		"<c|C>: Crafting",
		"<d|D>: Driving",
		"<e|E>: Effects",
		"<f|F>: Food",
		"<g|G>: Graves",
	))

	out := grid.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	// Odd counts put the extra entry in the left column.
	assert.True(t, strings.HasPrefix(lines[0], "a: First aid"))
	assert.Contains(t, lines[0], "e: Effects")
	assert.Contains(t, lines[2], "c: Crafting")
	assert.Contains(t, lines[2], "g: Graves")
	assert.Equal(t, "d: Driving", lines[3])
}

func TestMenuGridRightColumnOffset(t *testing.T) {
	t.Run("half width when labels are short", func(t *testing.T) {
		grid := NewMenuGrid().SetWidth(80).SetEntries(menuEntries(
			"<a|A>: Alpha",
			"<b|B>: Beta",
		))
		lines := strings.Split(grid.Render(), "\n")
		require.Len(t, lines, 1)
		assert.Equal(t, 40, strings.Index(lines[0], "b: Beta"))
	})

	t.Run("wide left labels push the right column out", func(t *testing.T) {
		long := "<a|A>: " + strings.Repeat("x", 50)
		grid := NewMenuGrid().SetWidth(80).SetEntries(menuEntries(
			long,
			"<b|B>: Beta",
		))
		lines := strings.Split(grid.Render(), "\n")
		require.Len(t, lines, 1)
		// 53 label columns plus the 4-column margin
		assert.Equal(t, 57, strings.Index(lines[0], "b: Beta"))
	})
}

func TestMenuGridEdgeCases(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		assert.Equal(t, "", NewMenuGrid().SetWidth(80).Render())
	})

	t.Run("single entry", func(t *testing.T) {
		grid := NewMenuGrid().SetWidth(80).SetEntries(menuEntries("<q|Q>: Quitting"))
		assert.Equal(t, "q: Quitting", grid.Render())
	})

	t.Run("plain label without hotkey markup", func(t *testing.T) {
		grid := NewMenuGrid().SetWidth(80).SetEntries(menuEntries("Introduction"))
		assert.Equal(t, "Introduction", grid.Render())
	})
}
