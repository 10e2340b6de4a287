// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longBody(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		b.WriteString("Zombies shamble toward noise.\n")
	}
	return b.String()
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTopicViewportBeforeSize(t *testing.T) {
	v := NewTopicViewport()
	assert.Equal(t, "Loading topic...", v.View())
}

func TestTopicViewportRendersTopic(t *testing.T) {
	v := NewTopicViewport()
	v.SetSize(80, 24)
	v.SetTopic("Help", "a: First aid", "Press a to use bandages.")

	out := v.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "a: First aid")
	assert.Contains(t, out, "Press a to use bandages.")
}

func TestTopicViewportSetTopicBeforeSize(t *testing.T) {
	v := NewTopicViewport()
	v.SetTopic("Help", "m: Movement", "Walk with the movement keys.")
	v.SetSize(80, 24)

	assert.Contains(t, v.View(), "Walk with the movement keys.")
}

func TestTopicViewportScrollPosition(t *testing.T) {
	v := NewTopicViewport()
	v.SetSize(80, 10)
	v.SetTopic("Help", "z: Zombies", longBody(50))

	require.Equal(t, "[TOP]", v.ScrollPosition())

	v, _ = v.Update(runeKey("G"))
	assert.Equal(t, "[BOTTOM]", v.ScrollPosition())

	v, _ = v.Update(runeKey("g"))
	assert.Equal(t, "[TOP]", v.ScrollPosition())
}

func TestTopicViewportScrollKeys(t *testing.T) {
	v := NewTopicViewport()
	v.SetSize(80, 10)
	v.SetTopic("Help", "z: Zombies", longBody(50))

	v, _ = v.Update(runeKey("j"))
	assert.NotEqual(t, "[TOP]", v.ScrollPosition())

	v, _ = v.Update(runeKey("k"))
	assert.Equal(t, "[TOP]", v.ScrollPosition())
}

func TestTopicViewportShortContentHidesPosition(t *testing.T) {
	v := NewTopicViewport()
	v.SetSize(80, 24)
	v.SetTopic("Help", "a: First aid", "One line.")

	assert.Empty(t, v.ScrollPosition())
}

func TestTopicViewportReloadResetsScroll(t *testing.T) {
	v := NewTopicViewport()
	v.SetSize(80, 10)
	v.SetTopic("Help", "z: Zombies", longBody(50))

	v, _ = v.Update(runeKey("G"))
	require.Equal(t, "[BOTTOM]", v.ScrollPosition())

	v.SetTopic("Help", "z: Zombies", longBody(50))
	assert.Equal(t, "[TOP]", v.ScrollPosition())
}

func TestTopicViewportWindowSizeMessage(t *testing.T) {
	v := NewTopicViewport()
	v.SetTopic("Help", "a: First aid", "Press a to use bandages.")

	v, cmd := v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "Press a to use bandages.")
}
