package ui

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/state"
	"github.com/atomicstack/smm-uncleared/internal/theme"
	"github.com/atomicstack/smm-uncleared/internal/ui/command"
	uistate "github.com/atomicstack/smm-uncleared/internal/ui/state"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configure a Model. Client and Store are required.
type Options struct {
	Game       filter.Game
	Client     LevelClient
	Store      state.FilterStore
	Width      int
	Height     int
	ShowFooter bool
	// Animate enables the loading spinner and the blinking picker caret.
	Animate bool

	Now       func() time.Time
	After     func(d time.Duration, msg tea.Msg) tea.Cmd
	Clipboard func(text string) error
}

// Model implements the Bubble Tea model for the level browser.
type Model struct {
	features map[filter.Game]*feature
	order    []filter.Game
	active   filter.Game

	picker            *level
	filterCursor      cursor.Model
	filterCursorDirty bool
	spinner           spinner.Model
	spinning          bool
	animate           bool

	keys        keyMap
	errMsg      string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	ctx       context.Context
	client    LevelClient
	bus       *command.Bus
	now       func() time.Time
	after     afterFunc
	clipboard clipboardWriter

	handlers map[reflect.Type]msgHandler
}

// NewModel restores the persisted filters of every game and builds their
// selectors. A selector that cannot be positioned is a configuration error.
func NewModel(ctx context.Context, opts Options) (*Model, error) {
	if opts.Client == nil || opts.Store == nil {
		return nil, errors.New("ui: client and store are required")
	}
	m := &Model{
		features:   make(map[filter.Game]*feature, 2),
		keys:       defaultKeyMap(),
		showFooter: opts.ShowFooter,
		animate:    opts.Animate,
		ctx:        ctx,
		client:     opts.Client,
		bus:        command.New(),
		now:        opts.Now,
		after:      opts.After,
		clipboard:  opts.Clipboard,
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.after == nil {
		m.after = tickAfter
	}
	if m.clipboard == nil {
		m.clipboard = systemClipboard
	}
	for _, game := range filter.Games() {
		reg, err := filter.Lookup(game)
		if err != nil {
			return nil, err
		}
		f, err := newFeature(ctx, reg, opts.Store, opts.Client)
		if err != nil {
			return nil, err
		}
		m.features[game] = f
		m.order = append(m.order, game)
	}
	m.active = opts.Game
	if _, ok := m.features[m.active]; !ok {
		if m.active != "" {
			return nil, fmt.Errorf("ui: unknown game %q", m.active)
		}
		m.active = filter.GameSMM2
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	if !m.animate {
		c.SetMode(cursor.CursorStatic)
	}
	m.filterCursor = c

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	if styles.Loading != nil {
		m.spinner.Style = styles.Loading.Copy()
	}

	m.registerHandlers()
	return m, nil
}

// Init loads the first level of the starting game.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadLevel(m.current())}
	if m.animate {
		cmds = append(cmds, m.filterCursor.Focus())
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(levelLoadedMsg{}):    m.handleLevelLoadedMsg,
		reflect.TypeOf(markClearedMsg{}):    m.handleMarkClearedMsg,
		reflect.TypeOf(copiedMsg{}):         m.handleCopiedMsg,
		reflect.TypeOf(popoverDismissMsg{}): m.handlePopoverDismissMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) current() *feature {
	return m.features[m.active]
}

// Game returns the game on screen.
func (m *Model) Game() filter.Game {
	return m.active
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.picker != nil {
		m.syncViewport(m.picker)
	}
	return nil
}
