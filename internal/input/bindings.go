// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hollowmere/fieldguide/internal/errors"
)

// Entry is one action's binding state: its display label and the keys
// bound to it, in authored order.
type Entry struct {
	Action Action
	Label  string
	Keys   []string
}

// Bindings is the key-binding service. It answers which keys an action is
// bound to, which action an identifier names, and how a binding is shown
// to players.
type Bindings struct {
	order   []Action
	byIdent map[Action]*Entry
}

// bindingRecord is the JSON shape of one keybindings file entry.
type bindingRecord struct {
	Type   *string  `json:"type"`
	Action *string  `json:"action"`
	Name   string   `json:"name"`
	Keys   []string `json:"keys"`
}

// Defaults returns the compiled-in bindings. A keybindings file merges
// over these by action.
func Defaults() *Bindings {
	b := &Bindings{byIdent: make(map[Action]*Entry)}

	// Movement carries two key slots each: letters and the numpad row.
	b.set(ActMoveNorthwest, "y", "7")
	b.set(ActMoveNorth, "k", "8")
	b.set(ActMoveNortheast, "u", "9")
	b.set(ActMoveWest, "h", "4")
	b.set(ActPause, ".", "5")
	b.set(ActMoveEast, "l", "6")
	b.set(ActMoveSouthwest, "b", "1")
	b.set(ActMoveSouth, "j", "2")
	b.set(ActMoveSoutheast, "n", "3")

	b.set(ActQuit, "q", "esc")
	b.set(ActConfirm, "enter")
	b.set(ActHelp, "?")

	b.set(ActInventory, "i")
	b.set(ActExamine, "x")
	b.set(ActOpen, "o")
	b.set(ActSmash, "s")
	b.set(ActPickup, "g", ",")
	b.set(ActApply, "a")
	b.set(ActWear, "w")
	b.set(ActCraft, "&")
	b.set(ActMap, "m")
	b.set(ActSleep, "$")
	b.set(ActWait, "|")
	b.set(ActAnnotate, "N")

	return b
}

func (b *Bindings) set(a Action, keys ...string) {
	if e, ok := b.byIdent[a]; ok {
		e.Keys = keys
		return
	}
	b.order = append(b.order, a)
	b.byIdent[a] = &Entry{Action: a, Label: actionLabels[a], Keys: keys}
}

// Load merges a keybindings file over the current bindings. Records must
// carry type and action; keys may be empty, which unbinds the action.
func (b *Bindings) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loading keybindings: %w", &errors.ParseError{File: path, Record: -1, Err: err})
	}
	defer func() { _ = f.Close() }()
	return b.LoadReader(f, path)
}

// LoadReader merges keybinding records from JSON content. The name
// argument labels parse errors.
func (b *Bindings) LoadReader(r io.Reader, name string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("loading keybindings: %w", &errors.ParseError{File: name, Record: -1, Err: err})
	}

	var records []bindingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("loading keybindings: %w", &errors.ParseError{File: name, Record: -1, Err: err})
	}

	for i, rec := range records {
		if rec.Type == nil {
			return &errors.ParseError{File: name, Record: i, Field: "type"}
		}
		if rec.Action == nil || *rec.Action == "" {
			return &errors.ParseError{File: name, Record: i, Field: "action"}
		}

		action := Action(*rec.Action)
		entry, ok := b.byIdent[action]
		if !ok {
			entry = &Entry{Action: action, Label: actionLabels[action]}
			b.order = append(b.order, action)
			b.byIdent[action] = entry
		}
		entry.Keys = append([]string(nil), rec.Keys...)
		if rec.Name != "" {
			entry.Label = rec.Name
		}
	}
	return nil
}

// KeysBoundTo returns the keys bound to an action in authored order.
// Unknown or unbound actions yield an empty slice.
func (b *Bindings) KeysBoundTo(a Action) []string {
	e, ok := b.byIdent[a]
	if !ok {
		return nil
	}
	return append([]string(nil), e.Keys...)
}

// Lookup resolves an identifier from a <press_ACTION> token or data file
// to a known action.
func (b *Bindings) Lookup(ident string) (Action, bool) {
	a := Action(ident)
	_, ok := b.byIdent[a]
	return a, ok
}

// Label returns the action's translatable display name.
func (b *Bindings) Label(a Action) string {
	if e, ok := b.byIdent[a]; ok && e.Label != "" {
		return e.Label
	}
	return string(a)
}

// PressLabel renders the keys bound to an action for inline display,
// joined with " or ". Empty when the action has no bound keys.
func (b *Bindings) PressLabel(a Action) string {
	e, ok := b.byIdent[a]
	if !ok || len(e.Keys) == 0 {
		return ""
	}
	return strings.Join(e.Keys, " or ")
}

// Matches reports whether a raw key (bubbletea key string) is bound to
// the action.
func (b *Bindings) Matches(a Action, key string) bool {
	e, ok := b.byIdent[a]
	if !ok {
		return false
	}
	for _, k := range e.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Entries returns all bindings in registration order.
func (b *Bindings) Entries() []Entry {
	out := make([]Entry, 0, len(b.order))
	for _, a := range b.order {
		out = append(out, *b.byIdent[a])
	}
	return out
}
