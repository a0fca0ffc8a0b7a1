package ui

import (
	"reflect"
	"strconv"
	"time"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/backend"
	"github.com/atomicstack/tabtray-control/internal/data/dispatcher"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/redux"
	"github.com/atomicstack/tabtray-control/internal/state"
	"github.com/atomicstack/tabtray-control/internal/theme"
	"github.com/atomicstack/tabtray-control/internal/ui/command"
	uistate "github.com/atomicstack/tabtray-control/internal/ui/state"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type level = uistate.Level

const (
	tabsLevelID  = "tabs"
	normalTitle  = "Tabs"
	privateTitle = "Private tabs"
)

type msgHandler func(tea.Msg) tea.Cmd

// Store is the slice of the redux store the console needs.
type Store interface {
	redux.Dispatcher[action.Action]
	State() state.AppState
	Subscribe(fn func(state.AppState)) func()
}

// Options configures a Model.
type Options struct {
	Store      Store
	Window     uuid.UUID
	Width      int
	Height     int
	ShowFooter bool
	Private    bool
	Watcher    *backend.Watcher
	Dispatcher *dispatcher.Dispatcher
}

// Model implements the Bubble Tea model for one window's tab tray.
type Model struct {
	level       *level
	store       Store
	window      uuid.UUID
	bus         *command.Bus
	private     bool
	peekTab     string
	filtering   bool
	filterInput textinput.Model
	scrollKey   string
	seq         int

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	width          int
	height         int
	fixedWidth     bool
	fixedHeight    bool
	showFooter     bool
	styles         *theme.Styles
	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher

	updates     chan struct{}
	unsubscribe func()
	dismissed   bool
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel opens the tray screens for the window and loads its tabs.
func NewModel(opts Options) *Model {
	m := &Model{
		level:        uistate.NewLevel(tabsLevelID, normalTitle, nil),
		store:        opts.Store,
		window:       opts.Window,
		bus:          command.New(opts.Store),
		private:      opts.Private,
		showFooter:   opts.ShowFooter,
		styles:       theme.Default(),
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		dispatcher:   opts.Dispatcher,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.filterInput = newFilterInput(m.styles)
	m.registerHandlers()
	m.open()
	m.refresh()
	return m
}

func (m *Model) open() {
	if m.store == nil {
		return
	}
	ctx := m.ctx()
	panel := viewmodel.PanelTabs
	if m.private {
		panel = viewmodel.PanelPrivateTabs
	}
	for _, screen := range []action.ScreenType{action.ScreenTabsTray, action.ScreenTabsPanel, action.ScreenBrowserViewController} {
		m.store.Dispatch(action.ShowScreen{Context: ctx, Screen: screen})
	}
	m.store.Dispatch(action.TabTrayDidLoad{Context: ctx, Panel: panel})
	m.store.Dispatch(action.TabPanelDidLoad{Context: ctx, IsPrivate: m.private})
}

// Close drops the store subscription and the tray screens.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	if m.store == nil {
		return
	}
	ctx := m.ctx()
	for _, screen := range []action.ScreenType{action.ScreenTabPeek, action.ScreenTabsPanel, action.ScreenTabsTray} {
		if _, err := m.store.State().ScreenState(screen, m.window); err == nil {
			m.store.Dispatch(action.CloseScreen{Context: ctx, Screen: screen})
		}
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.store != nil && m.updates == nil {
		updates := make(chan struct{}, 1)
		m.updates = updates
		m.unsubscribe = m.store.Subscribe(func(state.AppState) {
			select {
			case updates <- struct{}{}:
			default:
			}
		})
		cmds = append(cmds, waitForStateChange(updates))
	}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):            m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):     m.handleWindowSizeMsg,
		reflect.TypeOf(stateChangedMsg{}):       m.handleStateChangedMsg,
		reflect.TypeOf(command.DispatchedMsg{}): m.handleDispatchedMsg,
		reflect.TypeOf(backendEventMsg{}):       m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):        m.handleBackendDoneMsg,
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
	if m.dismissed && !m.quitting {
		m.quitting = true
		events.UI.Dismiss(m.windowName())
		cmds = append(cmds, tea.Quit)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Dismissed reports whether the tray asked to be closed.
func (m *Model) Dismissed() bool {
	return m.dismissed
}

func (m *Model) ctx() action.Context {
	return action.In(m.window)
}

func (m *Model) windowName() string {
	return m.window.String()
}

func (m *Model) execute(label string, act action.Action) tea.Cmd {
	m.seq++
	return m.bus.Execute(command.Request{
		ID:     string(act.Type()) + "#" + strconv.Itoa(m.seq),
		Label:  label,
		Action: act,
	})
}
