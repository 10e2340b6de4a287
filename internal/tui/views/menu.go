// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollowmere/fieldguide/internal/help"
	"github.com/hollowmere/fieldguide/internal/markup"
	"github.com/hollowmere/fieldguide/internal/tui/components"
	"github.com/hollowmere/fieldguide/internal/tui/debug"
	"github.com/hollowmere/fieldguide/internal/tui/messages"
	"github.com/hollowmere/fieldguide/internal/tui/styles"
)

// menuIntro is shown above the topic grid. Press tokens resolve against
// the live bindings at render time.
var menuIntro = []string{
	"Please press one of the following for help on that topic.",
	"Press <press_quit> to return to the game.",
}

// MenuView is the topic menu, the root view of the viewer.
type MenuView struct {
	service *help.Service
	hints   *help.Hints
	lang    string

	grid       *components.MenuGrid
	statusLine *components.StatusLine
	hint       string

	width  int
	height int
}

// NewMenuView creates the topic menu over a loaded help service.
func NewMenuView(service *help.Service, hints *help.Hints, lang string) *MenuView {
	m := &MenuView{
		service:    service,
		hints:      hints,
		lang:       lang,
		grid:       components.NewMenuGrid(),
		statusLine: components.NewStatusLine(),
	}
	m.rebuildEntries()
	m.nextHint()
	return m
}

// Init initializes the menu view
func (m *MenuView) Init() tea.Cmd {
	debug.LogToFilef("📖 MENU: Initializing topic menu, topics=%d\n", m.service.Len())
	// Don't send WindowSizeMsg here - wait for app to send it
	return nil
}

// rebuildEntries snapshots the topic table into grid entries.
func (m *MenuView) rebuildEntries() {
	resolver := m.service.Resolver()
	topics := m.service.Topics()
	entries := make([]components.MenuEntry, 0, len(topics))
	for _, t := range topics {
		entries = append(entries, components.MenuEntry{
			Order: t.Order,
			Label: resolver.Translate(t.Name),
		})
	}
	m.grid.SetEntries(entries)
}

// nextHint draws a fresh hint for the footer.
func (m *MenuView) nextHint() {
	if m.hints == nil {
		return
	}
	if hint, ok := m.hints.Random("tip"); ok {
		m.hint = hint.Text
	}
}

// Update handles all messages for the menu view
func (m *MenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetWidth(msg.Width)
		debug.LogToFilef("🔄 MENU: Window resized to %dx%d\n", msg.Width, msg.Height)
		return m, nil

	case messages.TopicsReloadedMsg:
		if msg.Err != nil {
			m.statusLine.SetTemporaryMessageWithType(
				fmt.Sprintf("Reload failed: %v", msg.Err),
				components.MessageError, 5*time.Second)
			return m, nil
		}
		m.rebuildEntries()
		m.nextHint()
		m.statusLine.SetTemporaryMessageWithType(
			"Help data reloaded", components.MessageSuccess, 3*time.Second)
		debug.LogToFilef("♻️ MENU: Topics reloaded, topics=%d\n", m.service.Len())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m *MenuView) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	raw := msg.String()

	if topic, ok := m.service.MatchHotkey(raw); ok {
		debug.LogToFilef("🔑 MENU: Hotkey %q opens topic order=%d\n", raw, topic.Order)
		t := topic
		return m, func() tea.Msg {
			return messages.NavigateToTopicMsg{Order: t.Order, Topic: t}
		}
	}

	switch raw {
	case "q", "esc":
		debug.LogToFilef("🔙 MENU: Leaving the viewer\n")
		return m, func() tea.Msg {
			return messages.NavigateBackMsg{}
		}
	case "Q", "ctrl+c":
		return m, tea.Quit
	}

	// Anything else redraws the menu with a fresh hint.
	m.nextHint()
	return m, nil
}

// View renders the menu view
func (m *MenuView) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	resolver := m.service.Resolver()

	title := styles.TitleStyle.
		Width(m.width).
		Align(lipgloss.Center).
		Render(resolver.Translate("Help"))

	intro := make([]string, 0, len(menuIntro))
	for _, line := range menuIntro {
		intro = append(intro, markup.Render(resolver.ResolvePress(resolver.Translate(line))))
	}

	parts := []string{
		title,
		"",
		strings.Join(intro, "\n"),
		"",
		m.grid.Render(),
	}
	if m.hint != "" {
		parts = append(parts, "", styles.HintStyle.Render(resolver.Translate(m.hint)))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// Pin the status line to the last row.
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Left, lipgloss.Top, content)

	status := m.statusLine.
		SetWidth(m.width).
		SetLeft(fmt.Sprintf("Topics: %d", m.service.Len())).
		SetRight(langTag(m.lang)).
		SetHelp("press a topic key  [q/esc]quit").
		Render()

	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func langTag(lang string) string {
	if lang == "" {
		return ""
	}
	return fmt.Sprintf("[%s]", lang)
}

// Implement CoreViewKeymap interface

// IsKeyDisabled returns whether a key is disabled in this view
func (m *MenuView) IsKeyDisabled(keyString string) bool {
	return false
}

// HandleKey provides custom key handling for the menu view. Topic hotkeys
// win over any default action for the same key.
func (m *MenuView) HandleKey(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd) {
	raw := keyMsg.String()
	if topic, ok := m.service.MatchHotkey(raw); ok {
		t := topic
		return true, m, func() tea.Msg {
			return messages.NavigateToTopicMsg{Order: t.Order, Topic: t}
		}
	}
	return false, m, nil
}
