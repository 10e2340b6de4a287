// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorOpen  = "<color_"
	colorClose = "</color>"
)

// colorTable maps markup color names to the 256-color palette used across
// all Hollowmere terminal output.
var colorTable = map[string]lipgloss.Color{
	"black":       lipgloss.Color("16"),
	"red":         lipgloss.Color("196"),
	"green":       lipgloss.Color("40"),
	"brown":       lipgloss.Color("130"),
	"blue":        lipgloss.Color("27"),
	"magenta":     lipgloss.Color("164"),
	"cyan":        lipgloss.Color("44"),
	"light_gray":  lipgloss.Color("250"),
	"dark_gray":   lipgloss.Color("240"),
	"light_red":   lipgloss.Color("203"),
	"light_green": lipgloss.Color("82"),
	"yellow":      lipgloss.Color("226"),
	"light_blue":  lipgloss.Color("39"),
	"pink":        lipgloss.Color("212"),
	"light_cyan":  lipgloss.Color("51"),
	"white":       lipgloss.Color("255"),
}

// StyleFor returns the lipgloss style for a markup color name.
func StyleFor(name string) (lipgloss.Style, bool) {
	color, ok := colorTable[name]
	if !ok {
		return lipgloss.NewStyle(), false
	}
	return lipgloss.NewStyle().Foreground(color), true
}

// KnownColor reports whether name is a registered markup color.
func KnownColor(name string) bool {
	_, ok := colorTable[name]
	return ok
}

// Tag wraps text in a color tag pair.
func Tag(color, text string) string {
	return colorOpen + color + ">" + text + colorClose
}

// Render converts <color_NAME>text</color> markup into ANSI-styled text.
// Unknown color names drop the tags and keep the inner text; an unterminated
// tag is left verbatim. Text without tags passes through unchanged.
func Render(s string) string {
	return rewrite(s, func(name, inner string) string {
		if style, ok := StyleFor(name); ok {
			return style.Render(inner)
		}
		return inner
	})
}

// Strip removes all color tags, keeping the inner text. Used for width
// math before styling is applied.
func Strip(s string) string {
	return rewrite(s, func(_, inner string) string {
		return inner
	})
}

// rewrite scans s for color tag pairs and replaces each with the result of
// apply. Scanning never looks inside a tag body for nested tags.
func rewrite(s string, apply func(name, inner string) string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, colorOpen)
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		rest := s[start:]

		nameEnd := strings.Index(rest, ">")
		if nameEnd < 0 {
			b.WriteString(rest)
			return b.String()
		}
		name := rest[len(colorOpen):nameEnd]

		body := rest[nameEnd+1:]
		closeIdx := strings.Index(body, colorClose)
		if closeIdx < 0 {
			b.WriteString(rest)
			return b.String()
		}

		b.WriteString(apply(name, body[:closeIdx]))
		s = body[closeIdx+len(colorClose):]
	}
}

// RenderShortcut renders a topic name carrying <a|A>-style hotkey markup.
// The first alternative inside the brackets is kept and styled with
// keyStyle, the remaining alternatives and the brackets are dropped, and
// the surrounding text is styled with textStyle.
func RenderShortcut(name string, textStyle, keyStyle lipgloss.Style) string {
	prefix, shortcut, suffix, ok := splitShortcut(name)
	if !ok {
		return textStyle.Render(name)
	}
	return textStyle.Render(prefix) + keyStyle.Render(shortcut) + textStyle.Render(suffix)
}

// ShortcutText returns the display form of a name with hotkey markup: the
// brackets removed and only the first alternative kept. Names without
// markup are returned unchanged.
func ShortcutText(name string) string {
	prefix, shortcut, suffix, ok := splitShortcut(name)
	if !ok {
		return name
	}
	return prefix + shortcut + suffix
}

func splitShortcut(name string) (prefix, shortcut, suffix string, ok bool) {
	start := strings.IndexByte(name, '<')
	end := strings.IndexByte(name, '>')
	if start < 0 || end < 0 || end < start {
		return "", "", "", false
	}
	group := name[start+1 : end]
	if sep := strings.IndexByte(group, '|'); sep >= 0 {
		group = group[:sep]
	}
	return name[:start], group, name[end+1:], true
}
