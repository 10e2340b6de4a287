package keymap

import tea "github.com/charmbracelet/bubbletea"

// CoreViewKeymap is the interface views implement to control key behavior
type CoreViewKeymap interface {
	// IsKeyDisabled returns true if the given key should be ignored for this view
	IsKeyDisabled(keyString string) bool

	// HandleKey allows views to provide custom handling for specific keys
	// Returns (handled, model, cmd) - if handled=true, the result is used instead of default processing
	HandleKey(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd)
}

// KeyAction represents what should happen when a key is pressed
type KeyAction int

const (
	// Navigation actions
	ActionNavigateBack KeyAction = iota

	// View actions
	ActionViewSpecific // Let the view handle it
	ActionIgnore       // Completely ignore the key

	// Global actions
	ActionGlobalQuit
)

// KeyMapping defines how a key should be processed
type KeyMapping struct {
	Key    string
	Action KeyAction
	Help   string
}

// CoreKeyRegistry maintains the central registry of all keys and their default actions
type CoreKeyRegistry struct {
	mappings map[string]KeyMapping
}

// NewCoreKeyRegistry creates a new key registry with default mappings
func NewCoreKeyRegistry() *CoreKeyRegistry {
	registry := &CoreKeyRegistry{
		mappings: make(map[string]KeyMapping),
	}

	// q and esc leave the current view; leaving the menu quits.
	registry.Register("q", ActionNavigateBack, "back")
	registry.Register("esc", ActionNavigateBack, "back")
	registry.Register("Q", ActionGlobalQuit, "force quit")
	registry.Register("ctrl+c", ActionGlobalQuit, "force quit")

	// Topic hotkeys and scrolling belong to the views. The menu claims
	// every printable key as a potential hotkey, so nothing else is
	// reserved globally.
	registry.Register("enter", ActionViewSpecific, "select")
	registry.Register("j", ActionViewSpecific, "down")
	registry.Register("k", ActionViewSpecific, "up")
	registry.Register("up", ActionViewSpecific, "up")
	registry.Register("down", ActionViewSpecific, "down")
	registry.Register("pgup", ActionViewSpecific, "page up")
	registry.Register("pgdown", ActionViewSpecific, "page down")
	registry.Register("ctrl+u", ActionViewSpecific, "half page up")
	registry.Register("ctrl+d", ActionViewSpecific, "half page down")
	registry.Register("g", ActionViewSpecific, "top")
	registry.Register("G", ActionViewSpecific, "bottom")
	registry.Register("y", ActionViewSpecific, "copy line")
	registry.Register("Y", ActionViewSpecific, "copy all")

	return registry
}

// Register adds a key mapping to the registry
func (r *CoreKeyRegistry) Register(key string, action KeyAction, help string) {
	r.mappings[key] = KeyMapping{
		Key:    key,
		Action: action,
		Help:   help,
	}
}

// GetAction returns the default action for a key, or ActionViewSpecific if not found
func (r *CoreKeyRegistry) GetAction(key string) KeyAction {
	if mapping, exists := r.mappings[key]; exists {
		return mapping.Action
	}
	return ActionViewSpecific
}

// GetMapping returns the full mapping for a key
func (r *CoreKeyRegistry) GetMapping(key string) (KeyMapping, bool) {
	mapping, exists := r.mappings[key]
	return mapping, exists
}

// GetAllMappings returns all registered key mappings
func (r *CoreKeyRegistry) GetAllMappings() map[string]KeyMapping {
	result := make(map[string]KeyMapping)
	for k, v := range r.mappings {
		result[k] = v
	}
	return result
}

// IsNavigationAction returns true if the action is a navigation action
func IsNavigationAction(action KeyAction) bool {
	return action == ActionNavigateBack
}

// IsGlobalAction returns true if the action should be handled globally regardless of view state
func IsGlobalAction(action KeyAction) bool {
	return action == ActionGlobalQuit
}
