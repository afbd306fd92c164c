// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quad/internal/cache"
	"quad/internal/catalog"
	"quad/internal/config"
	"quad/internal/dialogue"
	"quad/internal/log"
	"quad/internal/pubsub"
	"quad/internal/ui/chat"
	"quad/internal/ui/markdown"
	"quad/internal/ui/styles"
	"quad/internal/watcher"
)

const welcomeMessage = "Hello! I'm your University Helper chatbot. I can assist you with:\n" +
	"• Course registration and information\n" +
	"• Schedule management\n" +
	"• Prerequisites and requirements\n" +
	"• Department contacts\n\n" +
	"💡 Tell me your name to get started with course registration!"

// responseMsg carries the engine's reply back into the update loop.
type responseMsg struct {
	text string
}

// catalogChangedMsg signals that the catalog file changed on disk.
type catalogChangedMsg struct{}

// session is a copy of the engine-visible session state taken between
// turns. The view renders from this copy: a turn command runs
// GenerateResponse on its own goroutine, and the engine is
// non-reentrant, so View must never read it while a turn is in flight.
type session struct {
	authenticated bool
	name          string
	id            string
	courses       int
	pending       dialogue.PendingAction
	hasPending    bool
}

// Config holds everything the root model needs.
type Config struct {
	Engine      *dialogue.Engine
	Store       *catalog.Store
	TurnBroker  *pubsub.Broker[dialogue.Turn]
	CatalogPath string
	AppConfig   config.Config
}

// Model is the root application state.
type Model struct {
	engine *dialogue.Engine
	store  *catalog.Store
	cfg    config.Config
	keys   KeyMap

	catalogPath string

	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int

	messages []chat.Message
	busy     bool
	session  session

	renderer    *markdown.Renderer
	renderStore cache.Manager[string, string]
	renderCache *cache.ReadThrough[string, string, string]

	lastIntent string

	// Turn event subscription (status bar + logging)
	turnCancel   context.CancelFunc
	turnListener *pubsub.ContinuousListener[dialogue.Turn]

	// File watcher for catalog auto-reload
	watcherHandle *watcher.Watcher
	watcherCh     <-chan struct{}
}

// New creates the root application model.
func New(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "Ask about courses, registration, schedules..."
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	input.Focus()

	var (
		turnCancel   context.CancelFunc
		turnListener *pubsub.ContinuousListener[dialogue.Turn]
	)
	if cfg.TurnBroker != nil {
		turnCtx, cancel := context.WithCancel(context.Background())
		turnCancel = cancel
		turnListener = pubsub.NewContinuousListener(turnCtx, cfg.TurnBroker)
	}

	// Initialize file watcher if auto-reload is enabled. Init errors are
	// ignored - the app works fine without live reload.
	var (
		watcherHandle *watcher.Watcher
		watcherCh     <-chan struct{}
	)
	if cfg.AppConfig.AutoReload && cfg.CatalogPath != "" {
		if w, err := watcher.New(watcher.DefaultConfig(cfg.CatalogPath)); err == nil {
			if ch, err := w.Start(); err == nil {
				watcherHandle = w
				watcherCh = ch
			} else {
				_ = w.Stop()
			}
		}
	}

	m := Model{
		engine:        cfg.Engine,
		store:         cfg.Store,
		cfg:           cfg.AppConfig,
		keys:          DefaultKeyMap(),
		catalogPath:   cfg.CatalogPath,
		input:         input,
		messages:      []chat.Message{botMessage(welcomeMessage)},
		renderStore:   cache.NewInMemory[string, string]("chat-render", cache.DefaultExpiration, cache.DefaultCleanupInterval),
		turnCancel:    turnCancel,
		turnListener:  turnListener,
		watcherHandle: watcherHandle,
		watcherCh:     watcherCh,
	}
	m.snapshotSession()
	return m
}

// snapshotSession refreshes the session copy the view renders from.
// Only called between turns, never while one is in flight.
func (m *Model) snapshotSession() {
	m.session = session{
		authenticated: m.engine.Authenticated(),
		name:          m.engine.StudentName(),
		id:            m.engine.StudentID(),
		courses:       len(m.engine.RegisteredCourseCodes()),
	}
	if action, ok := m.engine.Pending(); ok {
		m.session.pending = action
		m.session.hasPending = true
	}
}

func botMessage(content string) chat.Message {
	now := time.Now()
	return chat.Message{Role: "advisor", Content: content, Timestamp: &now}
}

func userMessage(content string) chat.Message {
	now := time.Now()
	return chat.Message{Role: "user", Content: content, Timestamp: &now}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.turnListener != nil {
		cmds = append(cmds, m.turnListener.Listen())
	}
	if m.watcherCh != nil {
		cmds = append(cmds, m.waitForCatalogChange())
	}
	return tea.Batch(cmds...)
}

// waitForCatalogChange blocks on the watcher channel and resolves to a
// catalogChangedMsg. Re-issued after every receipt.
func (m Model) waitForCatalogChange() tea.Cmd {
	ch := m.watcherCh
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return catalogChangedMsg{}
	}
}

// askEngine runs a conversation turn off the update loop.
func (m Model) askEngine(input string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		return responseMsg{text: engine.GenerateResponse(context.Background(), input)}
	}
}

// submit sends the given utterance through the engine, echoing it as a
// user message first. At most one turn is in flight at a time.
func (m Model) submit(text string) (Model, tea.Cmd) {
	text = strings.TrimSpace(text)
	if text == "" || m.busy {
		return m, nil
	}

	m.messages = append(m.messages, userMessage(text))
	m.busy = true
	m.input.SetValue("")
	m.refreshViewport()
	return m, m.askEngine(text)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			var cmd tea.Cmd
			m, cmd = m.submit(m.input.Value())
			return m, cmd

		case key.Matches(msg, m.keys.Help):
			var cmd tea.Cmd
			m, cmd = m.submit("help")
			return m, cmd

		case key.Matches(msg, m.keys.Courses):
			var cmd tea.Cmd
			m, cmd = m.submit("Show available courses")
			return m, cmd

		case key.Matches(msg, m.keys.Schedule):
			var cmd tea.Cmd
			m, cmd = m.submit("Show my schedule")
			return m, cmd

		case key.Matches(msg, m.keys.ClearChat):
			m.messages = []chat.Message{botMessage(welcomeMessage)}
			m.refreshViewport()
			return m, nil

		case key.Matches(msg, m.keys.Logout):
			// The engine is non-reentrant; never touch it mid-turn.
			if !m.busy && m.engine.Authenticated() {
				m.engine.Logout()
				m.snapshotSession()
				m.messages = append(m.messages, botMessage("You've been logged out. Tell me your name to log in again!"))
				m.refreshViewport()
			}
			return m, nil
		}

	case responseMsg:
		m.busy = false
		m.snapshotSession()
		m.messages = append(m.messages, botMessage(msg.text))
		m.refreshViewport()
		return m, nil

	case pubsub.Event[dialogue.Turn]:
		m.lastIntent = msg.Payload.Intent.String()
		return m, m.turnListener.Listen()

	case catalogChangedMsg:
		return m.reloadCatalog()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// reloadCatalog re-reads the catalog file and swaps it into the store,
// keeping enrollment adjustments. Malformed files leave the current
// catalog in place.
func (m Model) reloadCatalog() (tea.Model, tea.Cmd) {
	doc, err := catalog.LoadFile(m.catalogPath)
	if err != nil {
		log.ErrorErr(log.CatCatalog, "Catalog reload failed, keeping current catalog", err, "path", m.catalogPath)
		return m, m.waitForCatalogChange()
	}

	m.store.Reload(doc)
	log.Info(log.CatCatalog, "Catalog reloaded", "path", m.catalogPath, "courses", len(doc.Courses))

	m.messages = append(m.messages, botMessage("📢 The course catalog was just updated."))
	m.refreshViewport()
	return m, m.waitForCatalogChange()
}

func (m *Model) resize() {
	inputHeight := 3
	statusHeight := 0
	if m.cfg.UI.ShowStatusBar {
		statusHeight = 1
	}
	helpHeight := 1
	vpHeight := m.height - inputHeight - statusHeight - helpHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}
	m.input.Width = m.width - 6

	// Renderer is width-dependent, rebuild on resize. Cached renders are
	// stale at the new width, so flush before re-wrapping.
	if r, err := markdown.New(m.width-4, m.cfg.UI.MarkdownStyle); err == nil {
		m.renderer = r
		m.renderCache = cache.NewReadThrough(m.renderStore, func(_ context.Context, content string) (string, error) {
			return r.Render(content)
		}, false)
		_ = m.renderStore.Flush(context.Background())
	}

	m.refreshViewport()
}

// renderBot renders advisor markdown through the read-through cache.
func (m *Model) renderBot(content string) string {
	if m.renderCache == nil {
		return content
	}

	key := fmt.Sprintf("%d|%s", m.renderer.Width(), content)
	rendered, err := m.renderCache.Get(context.Background(), key, content, cache.DefaultExpiration)
	if err != nil {
		log.ErrorErr(log.CatUI, "Markdown render failed", err)
		return content
	}
	return rendered
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	content := chat.RenderContent(m.messages, m.viewport.Width, chat.RenderConfig{}, m.renderBot)
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

// statusLine builds the session status bar from the session snapshot.
func (m Model) statusLine() string {
	var status string
	if m.session.authenticated {
		status = fmt.Sprintf("👤 %s (ID: %s)", m.session.name, m.session.id)
		if m.session.courses > 0 {
			status += fmt.Sprintf(" | 📚 %d courses", m.session.courses)
		}
	} else {
		status = "👤 Not logged in"
	}

	if m.session.hasPending {
		status += fmt.Sprintf(" | ⏳ %s %s awaiting yes/no", m.session.pending.Kind, m.session.pending.CourseCode)
	}
	if m.lastIntent != "" {
		status += " | " + m.lastIntent
	}

	return styles.StatusBarStyle.Width(m.width).Render(status)
}

func (m Model) helpLine() string {
	entries := []string{
		m.keys.Help.Help().Key + " " + m.keys.Help.Help().Desc,
		m.keys.Courses.Help().Key + " " + m.keys.Courses.Help().Desc,
		m.keys.Schedule.Help().Key + " " + m.keys.Schedule.Help().Desc,
		m.keys.ClearChat.Help().Key + " " + m.keys.ClearChat.Help().Desc,
		m.keys.Logout.Help().Key + " " + m.keys.Logout.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return styles.HelpStyle.Render(strings.Join(entries, " • "))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting University Helper..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	prompt := m.input.View()
	if m.busy {
		prompt = styles.HelpStyle.Render("Thinking...")
	}
	b.WriteString(styles.InputBorderStyle.Width(m.width - 2).Render(prompt))
	b.WriteString("\n")

	if m.cfg.UI.ShowStatusBar {
		b.WriteString(m.statusLine())
		b.WriteString("\n")
	}
	b.WriteString(m.helpLine())

	return b.String()
}

// Messages exposes the chat transcript for tests.
func (m Model) Messages() []chat.Message {
	return m.messages
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.turnCancel != nil {
		m.turnCancel()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
