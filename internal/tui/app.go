package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollowmere/fieldguide/internal/help"
	"github.com/hollowmere/fieldguide/internal/tui/debug"
	"github.com/hollowmere/fieldguide/internal/tui/keymap"
	"github.com/hollowmere/fieldguide/internal/tui/messages"
	"github.com/hollowmere/fieldguide/internal/tui/views"
)

// App is the root model. It owns the view stack, processes keys centrally,
// and is the only place the topic table is ever reloaded.
type App struct {
	service *help.Service
	hints   *help.Hints
	lang    string

	// Watch mode, nil when disabled
	watcher  *help.Watcher
	helpPath string

	viewStack   []tea.Model // Navigation history
	current     tea.Model
	keyRegistry *keymap.CoreKeyRegistry // Central key processing
	width       int                     // Current window width
	height      int                     // Current window height
}

// reloadRequestMsg carries a watcher event into the update loop, where the
// actual reload happens. Load never runs off the main loop.
type reloadRequestMsg struct {
	path string
}

// NewApp creates the application rooted at the topic menu.
func NewApp(service *help.Service, hints *help.Hints, lang string) *App {
	return &App{
		service:     service,
		hints:       hints,
		lang:        lang,
		keyRegistry: keymap.NewCoreKeyRegistry(),
		current:     views.NewMenuView(service, hints, lang),
	}
}

// EnableWatch attaches a running data watcher. Reload events re-read the
// help file at helpPath.
func (a *App) EnableWatch(watcher *help.Watcher, helpPath string) {
	a.watcher = watcher
	a.helpPath = helpPath
}

// Init implements tea.Model interface
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.current.Init()}
	if a.watcher != nil {
		debug.LogToFilef("👀 APP: Watch mode active, file=%s\n", a.helpPath)
		cmds = append(cmds, a.waitForReload())
	}
	return tea.Batch(cmds...)
}

// waitForReload blocks on the watcher channel and surfaces the next event.
func (a *App) waitForReload() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-a.watcher.Events()
		if !ok {
			return nil
		}
		return reloadRequestMsg{path: ev.Path}
	}
}

// Update implements tea.Model interface - handles navigation and delegates to current view
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Reload requests run here so the table is never mutated concurrently
	// with a view reading it.
	if req, ok := msg.(reloadRequestMsg); ok {
		err := a.service.Load(a.helpPath)
		if err != nil {
			debug.LogToFilef("❌ APP: Reload failed: %v\n", err)
		} else {
			debug.LogToFilef("♻️ APP: Reloaded %s, topics=%d\n", a.helpPath, a.service.Len())
		}
		newModel, cmd := a.current.Update(messages.TopicsReloadedMsg{Path: req.path, Err: err})
		if newModel != a.current {
			a.current = newModel
		}
		cmds := []tea.Cmd{cmd}
		if a.watcher != nil {
			cmds = append(cmds, a.waitForReload())
		}
		return a, tea.Batch(cmds...)
	}

	// Handle navigation messages first
	if navMsg, ok := msg.(messages.NavigationMsg); ok {
		debug.LogToFilef("🚀 APP: Received NavigationMsg: %T 🚀\n", navMsg)
		return a.handleNavigation(navMsg)
	}

	// Handle window size messages centrally
	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		debug.LogToFilef("📐 APP: Received WindowSizeMsg: width=%d, height=%d 📐\n", wsMsg.Width, wsMsg.Height)
		a.width = wsMsg.Width
		a.height = wsMsg.Height
		newModel, cmd := a.current.Update(msg)
		if newModel != a.current {
			a.current = newModel
		}
		return a, cmd
	}

	// Centralized key processing
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		debug.LogToFilef("⌨️ APP: Received KeyMsg: '%s' ⌨️\n", keyMsg.String())
		if handled, model, cmd := a.processKeyWithFiltering(keyMsg); handled {
			debug.LogToFilef("✋ APP: Key '%s' was HANDLED by centralized processor ✋\n", keyMsg.String())
			if appModel, isApp := model.(*App); isApp && cmd != nil {
				return appModel, cmd
			}
			return model, cmd
		}
	}

	// Otherwise delegate to current view
	newModel, cmd := a.current.Update(msg)
	if newModel != a.current {
		a.current = newModel
	}
	return a, cmd
}

// handleNavigation processes navigation messages and manages view transitions
func (a *App) handleNavigation(msg messages.NavigationMsg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.NavigateToMenuMsg:
		// The menu is home: clear the stack
		a.viewStack = nil
		a.current = views.NewMenuView(a.service, a.hints, a.lang)
		return a, a.initChildView()

	case messages.NavigateToTopicMsg:
		topic := msg.Topic
		if topic == nil {
			var ok bool
			topic, ok = a.service.Topic(msg.Order)
			if !ok {
				return a.handleNavigation(messages.NavigateToErrorMsg{
					Error:       nil,
					Message:     "That help topic no longer exists.",
					Recoverable: true,
				})
			}
		}
		a.viewStack = append(a.viewStack, a.current)
		a.current = views.NewTopicView(a.service, topic)
		return a, a.initChildView()

	case messages.NavigateBackMsg:
		debug.LogToFilef("🔙 HANDLE NAV: NavigateBackMsg - stack length=%d\n", len(a.viewStack))
		if len(a.viewStack) > 0 {
			previousView := a.viewStack[len(a.viewStack)-1]
			a.current = previousView
			a.viewStack = a.viewStack[:len(a.viewStack)-1]
			return a, a.initChildView()
		}
		// Backing out of the menu leaves the viewer.
		debug.LogToFilef("🚪 HANDLE NAV: No history, quitting\n")
		return a, tea.Quit

	case messages.NavigateToErrorMsg:
		if msg.Recoverable {
			a.viewStack = append(a.viewStack, a.current)
		} else {
			a.viewStack = nil
		}
		a.current = views.NewErrorView(msg.Error, msg.Message, msg.Recoverable)
		return a, a.initChildView()
	}

	return a, nil
}

// initChildView initializes the current view and replays the stored window
// size, since views created after startup never saw the terminal's size.
func (a *App) initChildView() tea.Cmd {
	cmds := []tea.Cmd{a.current.Init()}
	if a.width > 0 && a.height > 0 {
		width, height := a.width, a.height
		cmds = append(cmds, func() tea.Msg {
			return tea.WindowSizeMsg{Width: width, Height: height}
		})
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model interface - delegates rendering to current view
func (a *App) View() string {
	if a.current == nil {
		return a.renderInitializingView()
	}
	return a.current.View()
}

// Run starts the TUI application
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// processKeyWithFiltering is the centralized key processor that handles all key filtering and routing
func (a *App) processKeyWithFiltering(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd) {
	keyString := keyMsg.String()

	// Check if current view implements CoreViewKeymap
	if viewKeymap, hasKeymap := a.current.(keymap.CoreViewKeymap); hasKeymap {
		// First check if view wants to disable this key entirely
		if viewKeymap.IsKeyDisabled(keyString) {
			debug.LogToFilef("🚫 PROCESSOR: Key '%s' is DISABLED by view 🚫\n", keyString)
			return false, a, nil
		}

		// Check if view wants to handle this key with custom logic
		if handled, model, cmd := viewKeymap.HandleKey(keyMsg); handled {
			debug.LogToFilef("🎯 PROCESSOR: Key '%s' handled by view's custom handler 🎯\n", keyString)
			if model != nil && model != a {
				a.current = model
			}
			return true, a, cmd
		}
	}

	// Get the default action for this key from registry
	action := a.keyRegistry.GetAction(keyString)

	if keymap.IsGlobalAction(action) {
		return a.handleGlobalAction(action)
	}

	if keymap.IsNavigationAction(action) {
		return a.handleNavigationAction(action, keyMsg)
	}

	// For ActionViewSpecific or unknown keys, let the view handle them
	return false, a, nil
}

// handleGlobalAction processes global actions like force quit
func (a *App) handleGlobalAction(action keymap.KeyAction) (handled bool, model tea.Model, cmd tea.Cmd) {
	switch action {
	case keymap.ActionGlobalQuit:
		return true, a, tea.Quit
	default:
		return false, a, nil
	}
}

// handleNavigationAction processes navigation actions
func (a *App) handleNavigationAction(action keymap.KeyAction, keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd) {
	switch action {
	case keymap.ActionNavigateBack:
		debug.LogToFilef("⬅️ NAV ACTION: NavigateBack for key '%s' ⬅️\n", keyMsg.String())
		model, cmd := a.handleNavigation(messages.NavigateBackMsg{})
		return true, model, cmd
	default:
		return false, a, nil
	}
}

// renderInitializingView renders the initialization screen
func (a *App) renderInitializingView() string {
	if a.width <= 0 || a.height <= 0 {
		return "Initializing..."
	}
	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render("⏳ Loading help...")
}
