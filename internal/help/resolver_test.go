// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hollowmere/fieldguide/internal/i18n"
	"github.com/hollowmere/fieldguide/internal/input"
	"github.com/hollowmere/fieldguide/internal/markup"
	"github.com/hollowmere/fieldguide/internal/paths"
)

func testRegistry() *paths.Registry {
	return &paths.Registry{
		DataDir:      "/srv/hollowmere/data",
		ConfigDir:    "/srv/hollowmere/config",
		SaveDir:      "/srv/hollowmere/save",
		GraveyardDir: "/srv/hollowmere/graveyard",
		LogDir:       "/srv/hollowmere/log",
	}
}

func newTestResolver(t *testing.T) (*Resolver, *[]string) {
	t.Helper()
	var diags []string
	diag := func(format string, args ...interface{}) {
		diags = append(diags, fmt.Sprintf(format, args...))
	}
	r := NewResolver(input.Defaults(), markup.DefaultPalette(), testRegistry(), i18n.Identity{}, diag)
	return r, &diags
}

func TestResolvePress(t *testing.T) {
	r, _ := newTestResolver(t)

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "single key binding",
			line: "Press <press_inventory> to open your pack.",
			want: "Press <color_light_blue>i</color> to open your pack.",
		},
		{
			name: "multiple keys joined",
			line: "<press_quit> leaves the menu.",
			want: "<color_light_blue>q or esc</color> leaves the menu.",
		},
		{
			name: "two tokens in one line",
			line: "Use <press_examine> first, then <press_apply>.",
			want: "Use <color_light_blue>x</color> first, then <color_light_blue>a</color>.",
		},
		{
			name: "token at end of line",
			line: "To rest, press <press_sleep>",
			want: "To rest, press <color_light_blue>$</color>",
		},
		{
			name: "no tokens passes through",
			line: "Plain text with <color_yellow>markup</color> and angles > here.",
			want: "Plain text with <color_yellow>markup</color> and angles > here.",
		},
		{
			name: "unterminated token kept literal",
			line: "hold <press_quit",
			want: "hold <press_quit",
		},
		{
			name: "empty line",
			line: "",
			want: "",
		},
		{
			name: "identifier taken literally",
			line: "try <press_ quit >",
			want: "try ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolvePress(tt.line))
		})
	}
}

func TestResolvePressUnknownAction(t *testing.T) {
	r, diags := newTestResolver(t)

	got := r.ResolvePress("Press <press_levitate> to fly.")
	assert.Equal(t, "Press  to fly.", got)

	require.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0], `unknown action "levitate"`)
}

func TestResolvePressUnboundAction(t *testing.T) {
	bindings := input.Defaults()
	err := bindings.LoadReader(strings.NewReader(`[
		{"type": "keybinding", "action": "annotate", "keys": []}
	]`), "keybindings.json")
	require.NoError(t, err)

	r := NewResolver(bindings, markup.DefaultPalette(), testRegistry(), nil, nil)

	got := r.ResolvePress("Mark the map with <press_annotate>.")
	assert.Equal(t, "Mark the map with <color_red>?</color>.", got)
}

func TestResolvePressProperties(t *testing.T) {
	r, _ := newTestResolver(t)

	t.Run("token-free text unchanged", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			line := rapid.StringMatching(`[ -~]*`).Draw(t, "line")
			if strings.Contains(line, "<press_") {
				t.Skip("generated a press token")
			}
			if r.ResolvePress(line) != line {
				t.Fatalf("token-free line changed: %q", line)
			}
		})
	})

	t.Run("idempotent", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			line := rapid.String().Draw(t, "line")
			once := r.ResolvePress(line)
			if twice := r.ResolvePress(once); twice != once {
				t.Fatalf("second pass changed %q to %q", once, twice)
			}
		})
	})
}

func TestDirectionGrid(t *testing.T) {
	r, _ := newTestResolver(t)

	grid := r.DirectionGrid()
	assert.NotContains(t, grid, "<move_")
	assert.NotContains(t, grid, "<pause_")

	// Letters fill the first diagram, the numpad row the second.
	assert.Contains(t, grid, markup.Tag("light_blue", "k"))
	assert.Contains(t, grid, markup.Tag("light_blue", "8"))
	assert.Contains(t, grid, markup.Tag("light_blue", "."))
	assert.Contains(t, grid, markup.Tag("light_blue", "5"))

	assert.Len(t, strings.Split(grid, "\n"), 7)
}

func TestDirectionGridUnboundSlots(t *testing.T) {
	bindings := input.Defaults()
	err := bindings.LoadReader(strings.NewReader(`[
		{"type": "keybinding", "action": "move_n", "keys": ["k"]},
		{"type": "keybinding", "action": "move_s", "keys": []}
	]`), "keybindings.json")
	require.NoError(t, err)

	r := NewResolver(bindings, markup.DefaultPalette(), testRegistry(), nil, nil)
	grid := r.DirectionGrid()

	// The diagram keeps its shape: missing keys become unbound markers.
	assert.NotContains(t, grid, "<move_")
	assert.Contains(t, grid, markup.Tag("light_blue", "k"))
	assert.NotContains(t, grid, markup.Tag("light_blue", "8"))
	assert.NotContains(t, grid, markup.Tag("light_blue", "j"))
	assert.GreaterOrEqual(t, strings.Count(grid, markup.Tag("red", "?")), 3)
	assert.Len(t, strings.Split(grid, "\n"), 7)
}

func TestNoteColors(t *testing.T) {
	r, _ := newTestResolver(t)

	got := r.NoteColors()
	assert.True(t, strings.HasPrefix(got, "Note colors: "), "got %q", got)
	assert.True(t, strings.HasSuffix(got, ", "), "trailing separator must be kept, got %q", got)
	assert.Contains(t, got, "<color_light_red>r</color>:red, ")
	assert.Contains(t, got, "<color_red>R</color>:dark red, ")
	assert.Contains(t, got, "<color_white>w</color>:white, ")
}

func TestNoteColorsTranslated(t *testing.T) {
	cat, err := i18n.LoadReader(strings.NewReader(
		"\"Note colors: \": \"Colores de nota: \"\nred: rojo\n"))
	require.NoError(t, err)

	r := NewResolver(input.Defaults(), markup.DefaultPalette(), testRegistry(), cat, nil)

	got := r.NoteColors()
	assert.True(t, strings.HasPrefix(got, "Colores de nota: "), "got %q", got)
	assert.Contains(t, got, "<color_light_red>r</color>:rojo, ")
	// Untranslated names fall through to the source text.
	assert.Contains(t, got, "<color_light_green>g</color>:green, ")
}

func TestResolveStatic(t *testing.T) {
	r, _ := newTestResolver(t)

	lines := []string{
		"Intro line.",
		"<DRAW_NOTE_COLORS>",
		"<HELP_DRAW_DIRECTIONS>",
		"<GAME_DIRECTORIES>",
		"  <DRAW_NOTE_COLORS>",
		"prefix <GAME_DIRECTORIES>",
	}
	got := r.ResolveStatic(lines)

	require.Len(t, got, len(lines))
	assert.Equal(t, "Intro line.", got[0])
	assert.True(t, strings.HasPrefix(got[1], "Note colors: "))
	assert.Contains(t, got[2], markup.Tag("light_blue", "k"))
	assert.Contains(t, got[3], "Data directory: /srv/hollowmere/data")

	// Only lines that equal a macro exactly are replaced.
	assert.Equal(t, "  <DRAW_NOTE_COLORS>", got[4])
	assert.Equal(t, "prefix <GAME_DIRECTORIES>", got[5])
}

func TestGamePaths(t *testing.T) {
	r, _ := newTestResolver(t)

	got := r.GamePaths()
	assert.Contains(t, got, "Data directory: /srv/hollowmere/data")
	assert.Contains(t, got, "Log directory: /srv/hollowmere/log")
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestTokenizePress(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []segment
	}{
		{
			name: "literal only",
			line: "no tokens here",
			want: []segment{{text: "no tokens here"}},
		},
		{
			name: "token only",
			line: "<press_quit>",
			want: []segment{{press: true, text: "quit"}},
		},
		{
			name: "token between literals",
			line: "a <press_help> b",
			want: []segment{{text: "a "}, {press: true, text: "help"}, {text: " b"}},
		},
		{
			name: "empty identifier",
			line: "<press_>",
			want: []segment{{press: true, text: ""}},
		},
		{
			name: "unterminated tail",
			line: "a <press_help",
			want: []segment{{text: "a <press_help"}},
		},
		{
			name: "empty line",
			line: "",
			want: []segment{{text: ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenizePress(tt.line))
		})
	}
}
