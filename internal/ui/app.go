package ui

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/missionctl/internal/chat"
	"github.com/five82/missionctl/internal/clock"
	"github.com/five82/missionctl/internal/fetch"
	"github.com/five82/missionctl/internal/launch"
	"github.com/five82/missionctl/internal/news"
	"github.com/five82/missionctl/internal/prefs"
	"github.com/five82/missionctl/internal/starfield"
)

// NewsSource loads the headlines shown in the feed pane.
type NewsSource interface {
	Latest(ctx context.Context, limit int) fetch.Result[[]news.Article]
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Resolver    launch.Resolver
	News        NewsSource
	NewsLimit   int
	Chat        *chat.Widget
	Stars       int
	Rand        *rand.Rand
	FPS         int
	LocalLayout string
	ThemeName   string
	Prefs       *prefs.File
	Logger      *zap.Logger
	Now         func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	resolver  launch.Resolver
	news      NewsSource
	newsLimit int
	prefs     *prefs.File
	logger    *zap.Logger
	now       func() time.Time
	keys      keyMap

	// UI state
	theme       Theme
	width       int
	height      int
	ready       bool
	showSidebar bool
	showHelp    bool

	// Starfield
	field      *starfield.Field
	frameEvery time.Duration

	// Clocks
	localLayout string
	utcText     string
	localText   string

	// Countdown
	engine    launch.Engine
	remaining launch.Remaining

	// News
	panel       news.Panel
	newsSeq     uint64
	newsLoading bool

	// Chat
	widget     *chat.Widget
	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model
}

// New creates a new Bubble Tea model. The first countdown generation and
// news sequence are issued here so Init can reference them.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	widget := opts.Chat
	if widget == nil {
		widget = chat.NewWidget(chat.OfflineBackend{}, chat.WithLogger(logger))
	}
	newsLimit := opts.NewsLimit
	if newsLimit <= 0 {
		newsLimit = news.DefaultLimit
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	resolver := opts.Resolver
	if resolver.Now == nil {
		resolver.Now = now
	}
	if resolver.Logger == nil {
		resolver.Logger = logger
	}

	input := textinput.New()
	input.Placeholder = "Transmit to mission control…"
	input.Prompt = "› "
	input.CharLimit = 0 // unlimited; the backend gets the text verbatim

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	m := Model{
		ctx:         ctx,
		resolver:    resolver,
		news:        opts.News,
		newsLimit:   newsLimit,
		prefs:       opts.Prefs,
		logger:      logger,
		now:         now,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		field:       starfield.New(rng, opts.Stars, 0, 0),
		frameEvery:  frameInterval(opts.FPS),
		localLayout: opts.LocalLayout,
		widget:      widget,
		input:       input,
		transcript:  viewport.New(0, 0),
		spinner:     spin,
		newsLoading: true,
	}
	m.engine.Begin()
	m.newsSeq = 1
	m.setClocks(now())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		frameCmd(m.frameEvery),
		clockCmd(),
		m.spinner.Tick,
		resolveLaunchCmd(m.ctx, m.resolver, m.engine.Generation()),
		loadNewsCmd(m.ctx, m.news, m.newsLimit, m.newsSeq),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.applyLayout(true)
		return m, nil

	case frameMsg:
		m.field.Tick()
		return m, frameCmd(m.frameEvery)

	case clockMsg:
		m.setClocks(time.Time(msg))
		return m, clockCmd()

	case launchResolvedMsg:
		if !m.engine.Arm(msg.gen, msg.target) {
			return m, nil
		}
		return m, countdownNow(msg.gen)

	case countdownTickMsg:
		return m.handleCountdownTick(msg)

	case newsLoadedMsg:
		// Only the most recently issued load may replace the panel.
		if msg.seq != m.newsSeq {
			return m, nil
		}
		m.panel = news.BuildPanel(msg.result)
		m.newsLoading = false
		return m, nil

	case chatReplyMsg:
		if m.widget.Resolve(msg.id, msg.answer) {
			m.refreshTranscript()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.hasPendingReply() {
			m.refreshTranscript()
		}
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Acquiring signal..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The open chat panel owns the keyboard so typed letters reach the input.
	if m.widget.Visible() {
		return m.handleChatKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.toggleSidebar()
		return m, nil

	case key.Matches(msg, m.keys.ToggleChat):
		m.toggleChat()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ReloadNews):
		return m, m.reloadNews()

	case key.Matches(msg, m.keys.ReloadLaunch):
		gen := m.engine.Begin()
		return m, resolveLaunchCmd(m.ctx, m.resolver, gen)
	}
	return m, nil
}

// handleChatKey routes keys while the chat panel is open.
func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CloseChat):
		m.toggleChat()
		return m, nil

	case key.Matches(msg, m.keys.Send):
		return m.sendChat()

	case key.Matches(msg, m.keys.ScrollUp):
		m.transcript.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.transcript.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// toggleSidebar flips sidebar visibility and nothing else.
func (m *Model) toggleSidebar() {
	m.showSidebar = !m.showSidebar
	m.applyLayout(false)
}

func (m *Model) toggleChat() {
	if m.widget.Toggle() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.applyLayout(false)
	m.refreshTranscript()
}

// sendChat submits the input. Blank input is ignored and left in place.
func (m Model) sendChat() (tea.Model, tea.Cmd) {
	pending, ok := m.widget.Send(m.input.Value())
	if !ok {
		return m, nil
	}
	m.input.Reset()
	m.refreshTranscript()
	return m, askCmd(m.ctx, m.widget, pending)
}

func (m *Model) reloadNews() tea.Cmd {
	m.newsSeq++
	m.newsLoading = true
	return loadNewsCmd(m.ctx, m.news, m.newsLimit, m.newsSeq)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefs == nil {
		return
	}
	if err := m.prefs.Save(prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save preferences", zap.String("path", m.prefs.Path()), zap.Error(err))
	}
}

func (m Model) handleCountdownTick(msg countdownTickMsg) (tea.Model, tea.Cmd) {
	rem, result := m.engine.Tick(msg.gen, m.now())
	switch result {
	case launch.TickCounting:
		m.remaining = rem
		return m, countdownCmd(msg.gen)
	case launch.TickExpired:
		m.remaining = launch.Remaining{}
		gen := m.engine.Begin()
		m.logger.Info("countdown reached zero, re-acquiring target", zap.Uint64("generation", gen))
		return m, resolveLaunchCmd(m.ctx, m.resolver, gen)
	default:
		return m, nil
	}
}

func (m *Model) setClocks(t time.Time) {
	m.utcText = clock.FormatUTC(t)
	m.localText = clock.FormatLocal(t, m.localLayout)
}

func (m Model) hasPendingReply() bool {
	for _, msg := range m.widget.Messages() {
		if msg.Pending {
			return true
		}
	}
	return false
}

// applyLayout sizes the chat widgets. A terminal resize also regenerates the
// whole starfield, even when the sky keeps its dimensions.
func (m *Model) applyLayout(resized bool) {
	if !m.ready {
		return
	}
	l := computeLayout(m.width, m.height, m.showSidebar, m.widget.Visible())
	if resized {
		m.field.Resize(float64(l.width), float64(l.skyHeight))
	}

	inner := l.width - 4
	if inner < 10 {
		inner = 10
	}
	m.input.Width = inner - 3
	m.transcript.Width = inner
	vh := l.chatHeight - 5 // border, title, input
	if vh < 1 {
		vh = 1
	}
	m.transcript.Height = vh
	m.refreshTranscript()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
