package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmere/fieldguide/internal/help"
	"github.com/hollowmere/fieldguide/internal/i18n"
	"github.com/hollowmere/fieldguide/internal/input"
	"github.com/hollowmere/fieldguide/internal/markup"
	"github.com/hollowmere/fieldguide/internal/paths"
	"github.com/hollowmere/fieldguide/internal/tui/messages"
	"github.com/hollowmere/fieldguide/internal/tui/views"
)

const appTestTopics = `[
	{"type": "help", "name": "<a|A>: First aid", "order": 0,
	 "messages": ["Press <press_apply> to use bandages."]},
	{"type": "help", "name": "<m|M>: Movement", "order": 1,
	 "messages": ["Walk with the movement keys."]}
]`

func newTestApp(t *testing.T) *App {
	t.Helper()
	registry := &paths.Registry{
		DataDir:   "/srv/hollowmere/data",
		ConfigDir: "/srv/hollowmere/config",
	}
	resolver := help.NewResolver(input.Defaults(), markup.DefaultPalette(), registry, i18n.Identity{}, nil)
	service := help.NewService(resolver)
	require.NoError(t, service.LoadReader(strings.NewReader(appTestTopics), "texts.json"))

	app := NewApp(service, nil, "")
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func writeTopicsFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "texts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drainCmd runs a command and feeds resulting messages back into the app
// until nothing is pending, mimicking the bubbletea loop. Quit messages
// stop the drain.
func drainCmd(app *App, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if msg == nil {
			continue
		}
		switch m := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, m...)
		case tea.QuitMsg:
			return
		default:
			_, next := app.Update(msg)
			queue = append(queue, next)
		}
	}
}

func TestAppStartsOnMenu(t *testing.T) {
	app := newTestApp(t)

	assert.IsType(t, &views.MenuView{}, app.current)
	assert.Empty(t, app.viewStack)
}

func TestAppHotkeyOpensTopic(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyMsg("m"))
	drainCmd(app, cmd)

	assert.IsType(t, &views.TopicView{}, app.current)
	assert.Len(t, app.viewStack, 1)
}

func TestAppUppercaseHotkeyOpensSameTopic(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyMsg("M"))
	drainCmd(app, cmd)

	assert.IsType(t, &views.TopicView{}, app.current)
}

func TestAppBackFromTopicReturnsToMenu(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyMsg("a"))
	drainCmd(app, cmd)
	require.IsType(t, &views.TopicView{}, app.current)

	// The pop happens inside Update; the returned command only replays
	// the window size to the restored view.
	_, cmd = app.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	drainCmd(app, cmd)

	assert.IsType(t, &views.MenuView{}, app.current)
	assert.Empty(t, app.viewStack)
}

func TestAppBackFromMenuQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppEscQuitsFromMenu(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppForceQuitFromTopic(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyMsg("m"))
	drainCmd(app, cmd)
	require.IsType(t, &views.TopicView{}, app.current)

	// Q quits from anywhere, without unwinding the stack.
	_, cmd = app.Update(keyMsg("Q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppUnknownKeyStaysOnMenu(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyMsg("z"))

	assert.Nil(t, cmd)
	assert.IsType(t, &views.MenuView{}, app.current)
}

func TestAppReplaysWindowSizeOnNavigation(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyMsg("m"))
	drainCmd(app, cmd)
	require.IsType(t, &views.TopicView{}, app.current)

	// The topic view was created after startup, so it never saw the
	// terminal's size message. It renders only because the app replayed
	// the stored size during navigation.
	view := app.current.View()
	assert.Contains(t, view, "Walk with the movement keys.")
}

func TestAppReloadRebuildsTopicTable(t *testing.T) {
	app := newTestApp(t)

	path := writeTopicsFile(t, t.TempDir(), `[
		{"type": "help", "name": "<z|Z>: Zombies", "order": 9, "messages": ["Run."]}
	]`)
	app.helpPath = path

	model, _ := app.Update(reloadRequestMsg{path: path})
	require.IsType(t, &App{}, model)

	assert.Equal(t, 1, app.service.Len())
	_, ok := app.service.MatchHotkey("z")
	assert.True(t, ok)
	assert.IsType(t, &views.MenuView{}, app.current)
}

func TestAppReloadFailureKeepsTable(t *testing.T) {
	app := newTestApp(t)
	app.helpPath = filepath.Join(t.TempDir(), "missing.json")

	model, _ := app.Update(reloadRequestMsg{path: app.helpPath})
	require.IsType(t, &App{}, model)

	// The failed open never reached the table.
	assert.Equal(t, 2, app.service.Len())
	assert.IsType(t, &views.MenuView{}, app.current)
}

func TestAppMissingTopicShowsRecoverableError(t *testing.T) {
	app := newTestApp(t)

	// A stale navigation message, as after a reload that dropped the topic.
	_, cmd := app.Update(messages.NavigateToTopicMsg{Order: 99})
	drainCmd(app, cmd)

	assert.IsType(t, &views.ErrorView{}, app.current)
	assert.Len(t, app.viewStack, 1)

	// Enter recovers back to the menu.
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drainCmd(app, cmd)
	assert.IsType(t, &views.MenuView{}, app.current)
}
