package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"quad/internal/catalog"
	"quad/internal/config"
	"quad/internal/dialogue"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestModel creates a minimal Model for testing. No watcher, no
// broker, seed catalog.
func createTestModel() Model {
	store := catalog.NewStore(catalog.Seed())
	engine := dialogue.New(dialogue.Config{Catalog: store})

	cfg := config.Defaults()
	cfg.AutoReload = false

	return New(Config{
		Engine:    engine,
		Store:     store,
		AppConfig: cfg,
	})
}

// sized pushes a window size through the model so the viewport exists.
func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return newModel.(Model)
}

// turn drives a full conversation turn: submit the input, then feed
// the resulting responseMsg back through Update.
func turn(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.input.SetValue(input)
	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)
	require.NotNil(t, cmd, "submit should produce a command")

	msg := cmd()
	resp, ok := msg.(responseMsg)
	require.True(t, ok, "expected a responseMsg, got %T", msg)

	newModel, _ = m.Update(resp)
	return newModel.(Model)
}

func lastMessage(t *testing.T, m Model) string {
	t.Helper()
	msgs := m.Messages()
	require.NotEmpty(t, msgs, "expected at least one message")
	return msgs[len(msgs)-1].Content
}

func TestApp_StartsWithWelcome(t *testing.T) {
	m := createTestModel()

	require.Len(t, m.Messages(), 1, "transcript should open with the welcome message")
	require.Contains(t, m.Messages()[0].Content, "University Helper", "welcome should introduce the chatbot")
	require.Equal(t, "advisor", m.Messages()[0].Role, "welcome should come from the advisor")
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)

	require.True(t, m.ready, "model should be ready after first resize")
	require.Equal(t, 100, m.width, "expected width to be updated")
	require.Equal(t, 40, m.height, "expected height to be updated")
}

func TestApp_ViewShowsLoggedOutStatus(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Not logged in", "status bar should show logged-out state")
}

func TestApp_SubmitRunsTurn(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)

	m.input.SetValue("tell me about CS101")
	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	require.True(t, m.busy, "model should be busy while the turn runs")
	require.Empty(t, m.input.Value(), "input should clear on submit")
	require.Equal(t, "user", m.Messages()[len(m.Messages())-1].Role, "user message should be echoed immediately")

	resp, ok := cmd().(responseMsg)
	require.True(t, ok, "expected a responseMsg")

	newModel, _ = m.Update(resp)
	m = newModel.(Model)

	require.False(t, m.busy, "model should accept input again after the response")
	require.Contains(t, lastMessage(t, m), "Introduction to Computer Science", "response should describe CS101")
}

func TestApp_EmptySubmitIgnored(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)

	m.input.SetValue("   ")
	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	require.Nil(t, cmd, "blank input should not produce a turn")
	require.Len(t, m.Messages(), 1, "transcript should be unchanged")
}

func TestApp_BusyBlocksSubmit(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)
	m.busy = true

	m.input.SetValue("tell me about CS101")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Nil(t, cmd, "a turn in flight should block new submissions")
}

func TestApp_QuickQueryCourses(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF2})
	m = newModel.(Model)
	require.NotNil(t, cmd, "F2 should trigger the courses query")

	resp := cmd().(responseMsg)
	newModel, _ = m.Update(resp)
	m = newModel.(Model)

	require.Contains(t, lastMessage(t, m), "CS101", "course listing should include CS101")
}

func TestApp_QuickQueryHelp(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = newModel.(Model)
	require.NotNil(t, cmd, "F1 should trigger the help query")

	resp := cmd().(responseMsg)
	newModel, _ = m.Update(resp)
	m = newModel.(Model)

	require.Contains(t, strings.ToLower(lastMessage(t, m)), "register", "help should mention registration")
}

func TestApp_ClearChatKeepsWelcome(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)
	m = turn(t, m, "tell me about CS101")
	require.Greater(t, len(m.Messages()), 1, "transcript should have grown")

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = newModel.(Model)

	require.Len(t, m.Messages(), 1, "clear should reset the transcript")
	require.Contains(t, m.Messages()[0].Content, "University Helper", "welcome should be re-shown")
}

func TestApp_ClearChatPreservesSession(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)
	m = turn(t, m, "my name is Alice")
	require.True(t, m.engine.Authenticated(), "login turn should authenticate")

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = newModel.(Model)

	require.True(t, m.engine.Authenticated(), "clearing the transcript should not log the student out")
}

func TestApp_Logout(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)
	m = turn(t, m, "my name is Alice")
	require.True(t, m.engine.Authenticated(), "login turn should authenticate")

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = newModel.(Model)

	require.False(t, m.engine.Authenticated(), "ctrl+d should log out")
	require.Contains(t, lastMessage(t, m), "logged out", "logout should be announced in chat")
}

func TestApp_LogoutWhenNotLoggedIn(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = newModel.(Model)

	require.Len(t, m.Messages(), 1, "logout without a session should do nothing")
}

func TestApp_StatusBarShowsSession(t *testing.T) {
	m := sized(t, createTestModel(), 120, 40)
	m = turn(t, m, "my name is Alice")

	status := ansi.Strip(m.statusLine())
	require.Contains(t, status, "Alice", "status bar should show the student name")
	require.Contains(t, status, "ID: ", "status bar should show the student ID")
}

func TestApp_StatusBarShowsPendingAction(t *testing.T) {
	m := sized(t, createTestModel(), 120, 40)
	m = turn(t, m, "my name is Alice")
	m = turn(t, m, "register me for CS101")

	status := ansi.Strip(m.statusLine())
	require.Contains(t, status, "awaiting yes/no", "status bar should flag the pending confirmation")
	require.Contains(t, status, "CS101", "status bar should name the pending course")
}

// The view renders from a session snapshot, so the status bar can be
// drawn while a turn command mutates the engine on its own goroutine.
// Run with -race to verify.
func TestApp_StatusBarRendersDuringTurn(t *testing.T) {
	m := sized(t, createTestModel(), 120, 40)

	m.input.SetValue("my name is Alice")
	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)
	require.NotNil(t, cmd, "submit should produce a command")

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	for i := 0; i < 1000; i++ {
		require.Contains(t, ansi.Strip(m.statusLine()), "Not logged in",
			"snapshot should show pre-turn state while the turn runs")
		_ = m.View()
	}
	resp, ok := (<-done).(responseMsg)
	require.True(t, ok, "expected a responseMsg")

	newModel, _ = m.Update(resp)
	m = newModel.(Model)
	require.Contains(t, ansi.Strip(m.statusLine()), "Alice",
		"snapshot should refresh once the turn completes")
}

func TestApp_LogoutIgnoredWhileBusy(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)
	m = turn(t, m, "my name is Alice")
	m.busy = true

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = newModel.(Model)

	require.True(t, m.engine.Authenticated(), "logout must not touch the engine mid-turn")
	require.NotContains(t, lastMessage(t, m), "logged out", "no logout message while a turn runs")
}

func TestApp_CatalogReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	updated := `courses:
  - code: CS999
    name: Quantum Computing
    credits: 3
    prerequisites: []
    description: Qubits and gates
    schedule: MWF 9:00-10:00 AM
    instructor: Dr. Deutsch
    room: Tech Building 401
    capacity: 10
    enrolled: 0
    available: true
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600), "writing catalog fixture")

	m := sized(t, createTestModel(), 100, 40)
	m.catalogPath = path

	newModel, cmd := m.Update(catalogChangedMsg{})
	m = newModel.(Model)
	require.NotNil(t, cmd, "reload should re-arm the watcher wait")

	_, ok := m.store.Lookup("CS999")
	require.True(t, ok, "reloaded catalog should contain CS999")
	require.Contains(t, lastMessage(t, m), "catalog", "reload should be announced in chat")
}

func TestApp_CatalogReloadBadFileKeepsCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses: [not a course"), 0o600), "writing broken fixture")

	m := sized(t, createTestModel(), 100, 40)
	m.catalogPath = path
	before := len(m.Messages())

	newModel, _ := m.Update(catalogChangedMsg{})
	m = newModel.(Model)

	_, ok := m.store.Lookup("CS101")
	require.True(t, ok, "original catalog should survive a bad reload")
	require.Len(t, m.Messages(), before, "bad reload should not announce anything")
}

// TestApp_FullSession drives the program end to end through a pty:
// welcome, login turn, quit.
func TestApp_FullSession(t *testing.T) {
	tm := teatest.NewTestModel(t, createTestModel(), teatest.WithInitialTermSize(100, 40))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("University Helper"))
	}, teatest.WithDuration(5*time.Second))

	tm.Type("my name is Alice")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Alice"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}

func TestApp_QuitKeys(t *testing.T) {
	m := sized(t, createTestModel(), 100, 40)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd, "ctrl+c should quit")
	require.Equal(t, tea.Quit(), cmd(), "ctrl+c should produce tea.Quit")
}
