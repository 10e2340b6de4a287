package messages

import "github.com/hollowmere/fieldguide/internal/help"

// NavigationMsg is the base interface for all navigation messages
type NavigationMsg interface {
	IsNavigation() bool
}

// NavigateToMenuMsg requests navigation to the topic menu view
type NavigateToMenuMsg struct{}

// NavigateToTopicMsg requests navigation to a topic display view
type NavigateToTopicMsg struct {
	Order int
	Topic *help.Topic // Optional: resolved topic to avoid a second lookup
}

// NavigateBackMsg requests navigation to the previous view in the stack
type NavigateBackMsg struct{}

// NavigateToErrorMsg requests navigation to an error view
type NavigateToErrorMsg struct {
	Error       error
	Message     string
	Recoverable bool // Can user go back?
}

// Implement NavigationMsg interface for all messages
func (NavigateToMenuMsg) IsNavigation() bool  { return true }
func (NavigateToTopicMsg) IsNavigation() bool { return true }
func (NavigateBackMsg) IsNavigation() bool    { return true }
func (NavigateToErrorMsg) IsNavigation() bool { return true }

// TopicsReloadedMsg announces that the topic table was reloaded from disk
// while watch mode is active. Views refresh their content from the service.
type TopicsReloadedMsg struct {
	Path string
	Err  error
}
