// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package help owns the topic table and the placeholder grammar of the
// in-game help viewer. Topics are loaded once from a data file with static
// macros resolved in place; <press_ACTION> tokens stay in the stored text
// and are resolved against the live key bindings every time a topic is
// displayed.
package help

// Topic is one named, orderable block of help text. Name keeps its raw
// hotkey markup; Lines are static-resolved at load. Immutable after load.
type Topic struct {
	Order   int
	Name    string
	Lines   []string
	Hotkeys []string
}

// Rendered is the transient, fully resolved display form of a topic.
// It is built per view and never stored: bindings may change between
// displays, so the dynamic tokens must be re-resolved each time.
type Rendered struct {
	Title string
	Name  string
	Body  string
}
