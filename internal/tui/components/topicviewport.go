// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollowmere/fieldguide/internal/markup"
)

// TopicViewport is a scrollable viewer for one rendered help topic.
type TopicViewport struct {
	viewport   viewport.Model
	title      string
	name       string
	body       string
	width      int
	height     int
	ready      bool
	statusLine *StatusLine
	// Plain lines for clipboard copies, markup stripped
	contentLines []string
}

// NewTopicViewport creates an empty topic viewer.
func NewTopicViewport() *TopicViewport {
	return &TopicViewport{
		viewport:   viewport.New(80, 20),
		statusLine: NewStatusLine(),
	}
}

// SetTopic loads a rendered topic into the viewer. The body is markup
// text; styling happens here, copying uses the stripped form.
func (t *TopicViewport) SetTopic(title, name, body string) {
	t.title = title
	t.name = name
	t.body = body
	t.contentLines = strings.Split(markup.Strip(body), "\n")
	if t.ready {
		t.buildContent()
		t.viewport.GotoTop()
	}
}

// SetSize updates the viewport size
func (t *TopicViewport) SetSize(width, height int) {
	t.width = width
	t.height = height

	// Account for title, status line, border, and scrollbar
	innerHeight := height - 3
	innerWidth := width - 6

	if innerHeight < 1 {
		innerHeight = 1
	}
	if innerWidth < 1 {
		innerWidth = 1
	}

	if !t.ready {
		t.viewport = viewport.New(innerWidth, innerHeight)
		t.ready = true
	} else {
		t.viewport.Width = innerWidth
		t.viewport.Height = innerHeight
	}
	t.buildContent()
}

// buildContent styles the body and wraps it to the viewport width.
func (t *TopicViewport) buildContent() {
	styled := markup.Render(t.body)
	wrapped := lipgloss.NewStyle().Width(t.viewport.Width).Render(styled)
	t.viewport.SetContent(wrapped)
}

// ScrollPosition describes the viewport offset for the status line.
func (t *TopicViewport) ScrollPosition() string {
	if t.viewport.AtTop() && t.viewport.AtBottom() {
		return ""
	}
	if t.viewport.AtBottom() {
		return "[BOTTOM]"
	}
	if t.viewport.AtTop() {
		return "[TOP]"
	}
	return fmt.Sprintf("[%d%%]", int(t.viewport.ScrollPercent()*100))
}

// Update handles tea messages
func (t *TopicViewport) Update(msg tea.Msg) (*TopicViewport, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.SetSize(msg.Width, msg.Height)
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Down):
			t.viewport.ScrollDown(1)
		case key.Matches(msg, DefaultKeyMap.Up):
			t.viewport.ScrollUp(1)
		case key.Matches(msg, DefaultKeyMap.HalfDown):
			t.viewport.HalfPageDown()
		case key.Matches(msg, DefaultKeyMap.HalfUp):
			t.viewport.HalfPageUp()
		case key.Matches(msg, DefaultKeyMap.PageDown):
			t.viewport.PageDown()
		case key.Matches(msg, DefaultKeyMap.PageUp):
			t.viewport.PageUp()
		case key.Matches(msg, DefaultKeyMap.Top):
			t.viewport.GotoTop()
		case key.Matches(msg, DefaultKeyMap.Bottom):
			t.viewport.GotoBottom()

		case key.Matches(msg, DefaultKeyMap.CopyLine):
			if t.viewport.YOffset < len(t.contentLines) {
				line := t.contentLines[t.viewport.YOffset]
				if err := clipboard.WriteAll(line); err == nil {
					t.statusLine.SetTemporaryMessageWithType(
						fmt.Sprintf("📋 Copied: %s", truncateWithEllipsis(line, 40)),
						MessageSuccess, 2*time.Second)
				}
			}
		case key.Matches(msg, DefaultKeyMap.CopyAll):
			plain := strings.Join(t.contentLines, "\n")
			if err := clipboard.WriteAll(plain); err == nil {
				t.statusLine.SetTemporaryMessageWithType(
					"📋 Copied topic text", MessageSuccess, 2*time.Second)
			}
		}
	}

	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

// View renders the topic viewer
func (t *TopicViewport) View() string {
	if !t.ready {
		return "Loading topic..."
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("63")).
		Width(t.width).
		Align(lipgloss.Center).
		Render(t.title)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Width(t.width - 4). // Leave room for scrollbar
		Height(t.height - 3)

	boxedContent := boxStyle.Render(t.viewport.View())

	var finalContent string
	if !t.viewport.AtTop() || !t.viewport.AtBottom() {
		scrollbarLines := t.buildScrollbarLines(t.height - 3)
		scrollbarStyle := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			BorderTop(true).
			BorderBottom(true).
			BorderLeft(false).
			BorderRight(false)
		scrollbarBox := scrollbarStyle.Render(strings.Join(scrollbarLines, "\n"))
		finalContent = lipgloss.JoinHorizontal(lipgloss.Top, boxedContent, scrollbarBox)
	} else {
		finalContent = boxedContent
	}

	statusLine := t.statusLine.
		SetWidth(t.width).
		SetLeft(t.name).
		SetRight(t.ScrollPosition()).
		SetHelp("[jk]scroll [ctrl+u/d]halfpage [g/G]top/bottom [y/Y]copy [q/esc]back").
		Render()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		finalContent,
		statusLine,
	)
}

// buildScrollbarLines creates scrollbar lines to match exact height
func (t *TopicViewport) buildScrollbarLines(totalHeight int) []string {
	if totalHeight <= 0 {
		return []string{}
	}

	totalLines := t.viewport.TotalLineCount()
	if totalLines <= 0 {
		totalLines = 1
	}
	visibleLines := t.viewport.Height

	thumbSize := max(1, (visibleLines*totalHeight)/totalLines)
	if thumbSize > totalHeight {
		thumbSize = totalHeight
	}

	maxThumbPos := totalHeight - thumbSize
	thumbPos := int(float64(maxThumbPos) * t.viewport.ScrollPercent())
	if thumbPos < 0 {
		thumbPos = 0
	}
	if thumbPos > maxThumbPos {
		thumbPos = maxThumbPos
	}

	var lines []string
	for i := 0; i < totalHeight; i++ {
		if i >= thumbPos && i < thumbPos+thumbSize {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Render("█"))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(lipgloss.Color("238")).
				Render("│"))
		}
	}

	return lines
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
