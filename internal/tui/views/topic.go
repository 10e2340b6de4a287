// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollowmere/fieldguide/internal/help"
	"github.com/hollowmere/fieldguide/internal/tui/components"
	"github.com/hollowmere/fieldguide/internal/tui/debug"
	"github.com/hollowmere/fieldguide/internal/tui/messages"
)

// TopicView displays one rendered help topic in a scrollable viewport.
type TopicView struct {
	service *help.Service
	topic   *help.Topic

	component *components.TopicViewport

	width  int
	height int
}

// NewTopicView creates a topic display for the given topic.
func NewTopicView(service *help.Service, topic *help.Topic) *TopicView {
	v := &TopicView{
		service:   service,
		topic:     topic,
		component: components.NewTopicViewport(),
	}
	v.render()
	return v
}

// render resolves the topic against the current bindings and loads it
// into the viewport. Resolution output is never stored back.
func (v *TopicView) render() {
	rendered := v.service.Render(v.topic)
	v.component.SetTopic(rendered.Title, rendered.Name, rendered.Body)
}

// Init initializes the topic view
func (v *TopicView) Init() tea.Cmd {
	debug.LogToFilef("📄 TOPIC: Showing topic order=%d name=%q\n", v.topic.Order, v.topic.Name)
	// Don't send WindowSizeMsg here - wait for app to send it
	return nil
}

// Update handles all messages for the topic view
func (v *TopicView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.component.SetSize(msg.Width, msg.Height)
		return v, nil

	case messages.TopicsReloadedMsg:
		if msg.Err != nil {
			return v, nil
		}
		// The table was replaced under us. Re-resolve, or back out if
		// the topic is gone.
		topic, ok := v.service.Topic(v.topic.Order)
		if !ok {
			debug.LogToFilef("♻️ TOPIC: order=%d vanished on reload, backing out\n", v.topic.Order)
			return v, func() tea.Msg {
				return messages.NavigateBackMsg{}
			}
		}
		v.topic = topic
		v.render()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	component, cmd := v.component.Update(msg)
	v.component = component
	return v, cmd
}

// handleKeyMsg handles keyboard input
func (v *TopicView) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		debug.LogToFilef("🔙 TOPIC: Navigating back to menu\n")
		return v, func() tea.Msg {
			return messages.NavigateBackMsg{}
		}

	case "Q":
		return v, tea.Quit

	default:
		component, cmd := v.component.Update(msg)
		v.component = component
		return v, cmd
	}
}

// View renders the topic view
func (v *TopicView) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}
	return v.component.View()
}

// Implement CoreViewKeymap interface

// IsKeyDisabled returns whether a key is disabled in this view
func (v *TopicView) IsKeyDisabled(keyString string) bool {
	return false
}

// HandleKey provides custom key handling for the topic view
func (v *TopicView) HandleKey(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd) {
	// Let the standard Update method handle all keys
	return false, v, nil
}
