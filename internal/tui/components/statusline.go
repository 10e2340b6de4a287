package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// MessageType represents different types of temporary messages
type MessageType int

const (
	MessageSuccess MessageType = iota
	MessageError
	MessageInfo
	MessageWarning
)

// StatusLine represents a universal status line component
type StatusLine struct {
	width               int
	leftContent         string
	rightContent        string
	helpContent         string
	tempMessage         string
	tempMessageTime     time.Time
	tempMessageDuration time.Duration
	tempMessageColor    lipgloss.Color
}

// NewStatusLine creates a new status line component
func NewStatusLine() *StatusLine {
	return &StatusLine{}
}

// SetWidth sets the width of the status line
func (s *StatusLine) SetWidth(width int) *StatusLine {
	s.width = width
	return s
}

// SetLeft sets the left content of the status line
func (s *StatusLine) SetLeft(content string) *StatusLine {
	s.leftContent = content
	return s
}

// SetRight sets the right content of the status line
func (s *StatusLine) SetRight(content string) *StatusLine {
	s.rightContent = content
	return s
}

// SetHelp sets the help content of the status line
func (s *StatusLine) SetHelp(content string) *StatusLine {
	s.helpContent = content
	return s
}

// SetTemporaryMessage sets a temporary message with color and duration
func (s *StatusLine) SetTemporaryMessage(message string, color lipgloss.Color, duration time.Duration) *StatusLine {
	s.tempMessage = message
	s.tempMessageTime = time.Now()
	s.tempMessageDuration = duration
	s.tempMessageColor = color
	return s
}

// SetTemporaryMessageWithType sets a temporary message with predefined color for message type
func (s *StatusLine) SetTemporaryMessageWithType(message string, msgType MessageType, duration time.Duration) *StatusLine {
	color := GetMessageColor(msgType)
	return s.SetTemporaryMessage(message, color, duration)
}

// GetMessageColor returns the color for a given message type
func GetMessageColor(msgType MessageType) lipgloss.Color {
	switch msgType {
	case MessageSuccess:
		return lipgloss.Color("46") // Green
	case MessageError:
		return lipgloss.Color("196") // Red
	case MessageInfo:
		return lipgloss.Color("33") // Blue
	case MessageWarning:
		return lipgloss.Color("226") // Yellow
	default:
		return lipgloss.Color("252") // Default
	}
}

// HasActiveMessage returns true if there's an active temporary message
func (s *StatusLine) HasActiveMessage() bool {
	if s.tempMessage == "" {
		return false
	}
	return time.Since(s.tempMessageTime) < s.tempMessageDuration
}

// Render renders the status line. An active temporary message takes the
// help slot; left and right content stay put.
func (s *StatusLine) Render() string {
	if s.width <= 0 {
		return ""
	}

	middle := s.helpContent
	var middleColor lipgloss.Color
	if s.HasActiveMessage() {
		middle = s.tempMessage
		middleColor = s.tempMessageColor
	}

	maxPartWidth := s.width / 3
	leftContent := s.leftContent
	rightContent := s.rightContent
	if lipgloss.Width(leftContent) > maxPartWidth {
		leftContent = truncateWithEllipsis(leftContent, maxPartWidth)
	}
	if lipgloss.Width(rightContent) > maxPartWidth {
		rightContent = truncateWithEllipsis(rightContent, maxPartWidth)
	}

	leftLen := lipgloss.Width(leftContent)
	rightLen := lipgloss.Width(rightContent)

	var statusContent string
	availableForMiddle := s.width - leftLen - rightLen - 4
	if middle != "" && availableForMiddle > 10 {
		if lipgloss.Width(middle) > availableForMiddle {
			middle = truncateWithEllipsis(middle, availableForMiddle)
		}
		middlePadding := strings.Repeat(" ", availableForMiddle-lipgloss.Width(middle))
		if middleColor != "" {
			middle = lipgloss.NewStyle().Foreground(middleColor).Render(middle)
		}
		statusContent = fmt.Sprintf("%s  %s%s  %s", leftContent, middle, middlePadding, rightContent)
	} else {
		padding := s.width - leftLen - rightLen
		if padding < 0 {
			padding = 0
		}
		statusContent = fmt.Sprintf("%s%s%s", leftContent, strings.Repeat(" ", padding), rightContent)
	}

	// Fill or clip to exactly the line width so the background color
	// covers the whole row.
	contentWidth := lipgloss.Width(statusContent)
	if contentWidth < s.width {
		statusContent += strings.Repeat(" ", s.width-contentWidth)
	} else if contentWidth > s.width {
		statusContent = truncateWithEllipsis(statusContent, s.width)
	}

	finalStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Width(s.width).
		MaxWidth(s.width).
		MaxHeight(1)

	return finalStyle.Render(statusContent)
}

// truncateWithEllipsis trims display width, not bytes, so styled and
// wide runes count correctly.
func truncateWithEllipsis(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

