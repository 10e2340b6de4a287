// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"fmt"
	"strings"

	"github.com/hollowmere/fieldguide/internal/i18n"
	"github.com/hollowmere/fieldguide/internal/input"
	"github.com/hollowmere/fieldguide/internal/markup"
	"github.com/hollowmere/fieldguide/internal/paths"
)

// Static whole-line macros, resolved once at load.
const (
	MacroNoteColors  = "<DRAW_NOTE_COLORS>"
	MacroDirections  = "<HELP_DRAW_DIRECTIONS>"
	MacroDirectories = "<GAME_DIRECTORIES>"
)

const pressOpen = "<press_"

// gridActions are the nine movement actions of the directional diagram in
// row-major order. The idents must match the tokens in gridTemplate.
var gridActions = [9]input.Action{
	input.ActMoveNorthwest, input.ActMoveNorth, input.ActMoveNortheast,
	input.ActMoveWest, input.ActPause, input.ActMoveEast,
	input.ActMoveSouthwest, input.ActMoveSouth, input.ActMoveSoutheast,
}

// gridTemplate carries two key slots per action, _0 for the first bound
// key and _1 for the second. The diagram's shape never changes; unbound
// slots render a red "?" instead of collapsing.
const gridTemplate = `<move_nw_0>  <move_n_0>  <move_ne_0>   <move_nw_1>  <move_n_1>  <move_ne_1>
 \ | /     \ | /
  \|/       \|/
<move_w_0>--<pause_0>--<move_e_0>   <move_w_1>--<pause_1>--<move_e_1>
  /|\       /|\
 / | \     / | \
<move_sw_0>  <move_s_0>  <move_se_0>   <move_sw_1>  <move_s_1>  <move_se_1>`

// Resolver turns symbolic placeholder tokens into concrete display text
// using the key bindings, note-color palette, and path registry it was
// constructed with. All methods are pure string rewrites over their input.
type Resolver struct {
	bindings  *input.Bindings
	palette   *markup.Palette
	paths     *paths.Registry
	translate i18n.Translator
	diag      func(format string, args ...interface{})
}

// NewResolver builds a resolver from its collaborators. diag receives
// non-fatal diagnostics such as unknown action references; nil disables
// them.
func NewResolver(bindings *input.Bindings, palette *markup.Palette, registry *paths.Registry, translator i18n.Translator, diag func(format string, args ...interface{})) *Resolver {
	if translator == nil {
		translator = i18n.Identity{}
	}
	if diag == nil {
		diag = func(string, ...interface{}) {}
	}
	return &Resolver{
		bindings:  bindings,
		palette:   palette,
		paths:     registry,
		translate: translator,
		diag:      diag,
	}
}

// Translate applies the configured translation service.
func (r *Resolver) Translate(s string) string {
	return r.translate.Translate(s)
}

// ResolveStatic replaces the whole-line static macros in a topic's lines.
// A line must equal a macro exactly to be replaced; every other line is
// returned byte-identical. Applied once at load time.
func (r *Resolver) ResolveStatic(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch line {
		case MacroNoteColors:
			out[i] = r.NoteColors()
		case MacroDirections:
			out[i] = r.DirectionGrid()
		case MacroDirectories:
			out[i] = r.GamePaths()
		default:
			out[i] = line
		}
	}
	return out
}

// NoteColors renders the registered note colors in registration order,
// one "sample:name, " pair each. The trailing separator is kept.
func (r *Resolver) NoteColors() string {
	var b strings.Builder
	b.WriteString(r.translate.Translate("Note colors: "))
	for _, nc := range r.palette.NoteColors() {
		// The code is not translatable, the name is.
		b.WriteString(fmt.Sprintf("%s:%s, ", r.palette.Sample(nc), r.translate.Translate(nc.Name)))
	}
	return b.String()
}

// DirectionGrid builds the fixed 3x3 movement diagram. Slot i of each
// action substitutes the i-th bound key, highlighted; missing keys render
// the unbound marker so the grid keeps its shape.
func (r *Resolver) DirectionGrid() string {
	grid := gridTemplate
	for _, action := range gridActions {
		keys := r.bindings.KeysBoundTo(action)
		for slot := 0; slot < 2; slot++ {
			token := fmt.Sprintf("<%s_%d>", action.Ident(), slot)
			replacement := markup.Tag("red", "?")
			if slot < len(keys) {
				replacement = markup.Tag("light_blue", keys[slot])
			}
			grid = strings.ReplaceAll(grid, token, replacement)
		}
	}
	return grid
}

// GamePaths renders the resolved game directory summary.
func (r *Resolver) GamePaths() string {
	return r.paths.Resolved()
}

// segment is one span of a tokenized line: literal text or a press-macro
// reference holding the action identifier.
type segment struct {
	press bool
	text  string
}

// tokenizePress splits a line into literal and <press_ACTION> segments.
// Scanning finds the next "<press_" and the next ">" after it; everything
// between is the identifier taken literally. An unterminated token is kept
// as literal text.
func tokenizePress(line string) []segment {
	var segs []segment
	for {
		start := strings.Index(line, pressOpen)
		if start < 0 {
			if line != "" || len(segs) == 0 {
				segs = append(segs, segment{text: line})
			}
			return segs
		}
		end := strings.Index(line[start:], ">")
		if end < 0 {
			segs = append(segs, segment{text: line})
			return segs
		}
		end += start
		if start > 0 {
			segs = append(segs, segment{text: line[:start]})
		}
		segs = append(segs, segment{press: true, text: line[start+len(pressOpen) : end]})
		line = line[end+1:]
	}
}

// ResolvePress replaces every <press_ACTION> occurrence in a line with the
// highlighted keys currently bound to the action. Unknown actions emit a
// diagnostic and substitute nothing, removing the token; known actions
// with no bound keys render the unbound marker. Text without press tokens
// passes through unchanged.
func (r *Resolver) ResolvePress(line string) string {
	segs := tokenizePress(line)
	if len(segs) == 1 && !segs[0].press {
		return segs[0].text
	}

	var b strings.Builder
	for _, seg := range segs {
		if !seg.press {
			b.WriteString(seg.text)
			continue
		}
		action, ok := r.bindings.Lookup(seg.text)
		if !ok {
			r.diag("help data: unknown action %q\n", seg.text)
			continue
		}
		label := r.bindings.PressLabel(action)
		if label == "" {
			b.WriteString(markup.Tag("red", "?"))
			continue
		}
		b.WriteString(markup.Tag("light_blue", label))
	}
	return b.String()
}
