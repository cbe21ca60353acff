package ui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"statustable/internal/domain"
	"statustable/internal/eventbus"
	"statustable/internal/logic"
	"statustable/internal/ui/views"
	"statustable/internal/widget/statustable"
)

// readyMarker is printed in the title when running under the e2e suite
const readyMarker = "__READY__"

// Model hosts the status table widget and drives it from workspace and
// scan selection
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	source logic.FindingSource
	logger *slog.Logger

	findings *logic.MemoryFindingStore
	widget   *statustable.StatusTable
	renderer *views.Renderer

	keys      keyMap
	help      help.Model
	prompt    textinput.Model
	prompting bool

	width  int
	height int

	workspaces []domain.Workspace
	scans      []domain.ScanRef
	scanCursor int
	loading    bool

	statusMessage string
	statusIsError bool
	readyMarker   string
}

// NewModel creates the host model and its widget from the initial options
func NewModel(ctx context.Context, bus eventbus.EventBus, source logic.FindingSource, initial statustable.Options, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	styles := views.NewStyles()
	findings := logic.NewMemoryFindingStore()

	widget, err := statustable.New(views.NewTemplates(styles), findings, initial,
		statustable.WithStatusHook(func(code domain.StatusCode) {
			bus.Publish(eventbus.StatusChangedEvent{Status: code})
		}),
		statustable.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	prompt := textinput.New()
	prompt.Placeholder = "raw status code"
	prompt.Prompt = "Status: "
	prompt.CharLimit = 32

	m := &Model{
		ctx:      ctx,
		bus:      bus,
		source:   source,
		logger:   logger,
		findings: findings,
		widget:   widget,
		renderer: views.NewRenderer(styles),
		keys:     defaultKeyMap(),
		help:     help.New(),
		prompt:   prompt,
	}
	if os.Getenv("STATUSTABLE_E2E_TEST") == "1" {
		m.readyMarker = readyMarker
	}
	return m, nil
}

// ForwardEvents subscribes to the bus and passes every event to send,
// usually tea.Program.Send. The returned function unsubscribes.
func (m *Model) ForwardEvents(send func(tea.Msg)) func() {
	var unsubs []func()
	for _, et := range []eventbus.EventType{
		eventbus.EventStatusChanged,
		eventbus.EventSelectionChanged,
		eventbus.EventFindingsLoaded,
		eventbus.EventError,
	} {
		unsubs = append(unsubs, m.bus.Subscribe(et, func(e eventbus.DomainEvent) {
			send(EventMsg{Event: e})
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// Widget returns the hosted status table
func (m *Model) Widget() *statustable.StatusTable {
	return m.widget
}

// Init loads the workspace list and, if one is configured, its findings
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadWorkspaces(m.ctx, m.source), tick()}
	if ws := m.widget.State().WorkspaceID; ws.Valid() {
		m.loading = true
		cmds = append(cmds, loadWorkspace(m.ctx, m.source, ws))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.loading {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case workspacesLoadedMsg:
		if msg.err != nil {
			m.fail("Failed to load workspaces", msg.err)
			return m, nil
		}
		m.workspaces = msg.workspaces
		return m, nil

	case workspaceLoadedMsg:
		return m.handleWorkspaceLoaded(msg)

	case pagerDoneMsg:
		if msg.err != nil {
			m.fail("Pager failed", msg.err)
		}
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil
	}

	// cursor blink
	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.PrevWorkspace):
		return m, m.selectWorkspace(m.neighborWorkspace(-1))

	case key.Matches(msg, m.keys.NextWorkspace):
		return m, m.selectWorkspace(m.neighborWorkspace(1))

	case key.Matches(msg, m.keys.PrevScan):
		if m.scanCursor > 0 {
			m.scanCursor--
		}

	case key.Matches(msg, m.keys.NextScan):
		if m.scanCursor < len(m.scans)-1 {
			m.scanCursor++
		}

	case key.Matches(msg, m.keys.ToggleScan):
		if m.scanCursor < len(m.scans) {
			sel := m.widget.State().Scans.Toggle(m.scans[m.scanCursor])
			m.selectScans(sel)
		}

	case key.Matches(msg, m.keys.SelectAll):
		if m.widget.State().WorkspaceID.Valid() {
			m.selectScans(domain.SelectScans(m.scans...))
		}

	case key.Matches(msg, m.keys.ClearScans):
		m.selectScans(domain.NoScans())

	case key.Matches(msg, m.keys.PickStatus):
		if code, ok := views.StatusForKey(msg.String()); ok {
			m.pickStatus(code)
		}

	case key.Matches(msg, m.keys.PrevStatus):
		m.pickStatus(m.widget.Status().Neighbor(-1))

	case key.Matches(msg, m.keys.NextStatus):
		m.pickStatus(m.widget.Status().Neighbor(1))

	case key.Matches(msg, m.keys.CustomStatus):
		m.prompting = true
		m.prompt.Reset()
		m.prompt.SetValue(m.widget.Status().String())
		m.prompt.CursorEnd()
		return m, m.prompt.Focus()

	case key.Matches(msg, m.keys.Pager):
		state := m.widget.State()
		return m, openPager(pagerContent(m.widget.Content(), m.findings.FindAll(), state.Scans))
	}

	return m, nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		value := m.prompt.Value()
		m.closePrompt()
		// an empty entry cancels
		if value != "" {
			m.pickStatus(domain.StatusCode(value))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.Reset()
}

// neighborWorkspace cycles through none followed by every workspace
func (m *Model) neighborWorkspace(offset int) domain.WorkspaceID {
	ids := make([]domain.WorkspaceID, 0, len(m.workspaces)+1)
	ids = append(ids, domain.NoWorkspace)
	for _, ws := range m.workspaces {
		ids = append(ids, ws.ID)
	}

	current := 0
	for i, id := range ids {
		if id == m.widget.State().WorkspaceID {
			current = i
			break
		}
	}
	next := (current + offset) % len(ids)
	if next < 0 {
		next += len(ids)
	}
	return ids[next]
}

// selectWorkspace switches the widget to ws with no scan selection and
// starts loading the workspace data
func (m *Model) selectWorkspace(ws domain.WorkspaceID) tea.Cmd {
	if ws == m.widget.State().WorkspaceID {
		return nil
	}

	m.findings.Clear()
	m.scans = nil
	m.scanCursor = 0
	m.renderWidget(m.widget.Update(statustable.Workspace(ws).With(statustable.Scans(domain.NoScans()))))
	m.publishSelection()

	if !ws.Valid() {
		m.loading = false
		return nil
	}
	m.loading = true
	return tea.Batch(loadWorkspace(m.ctx, m.source, ws), tick())
}

func (m *Model) selectScans(sel domain.ScanSelection) {
	m.renderWidget(m.widget.Update(statustable.Scans(sel)))
	m.publishSelection()
}

func (m *Model) pickStatus(code domain.StatusCode) {
	m.renderWidget(m.widget.HandleStatusPick(code))
}

func (m *Model) publishSelection() {
	state := m.widget.State()
	m.bus.Publish(eventbus.SelectionChangedEvent{
		WorkspaceID: state.WorkspaceID,
		Scans:       state.Scans.IDs(),
		Selected:    state.Scans.Selected(),
	})
}

func (m *Model) handleWorkspaceLoaded(msg workspaceLoadedMsg) (tea.Model, tea.Cmd) {
	current := m.widget.State().WorkspaceID
	if msg.workspace != current {
		m.logger.Debug("discarding stale workspace load",
			"loaded", int(msg.workspace),
			"current", int(current))
		return m, nil
	}

	m.loading = false
	if msg.err != nil {
		m.fail("Failed to load findings", msg.err)
		return m, nil
	}

	m.scans = msg.scans
	if m.scanCursor >= len(m.scans) {
		m.scanCursor = 0
	}
	m.findings.Replace(msg.workspace, msg.findings)
	m.renderWidget(m.widget.Update(statustable.Options{}))
	m.bus.Publish(eventbus.FindingsLoadedEvent{WorkspaceID: msg.workspace, Count: len(msg.findings)})
	return m, nil
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.StatusChangedEvent:
		m.statusIsError = false
		if ev.Status.Known() {
			m.statusMessage = fmt.Sprintf("Status set to %s (%s)", ev.Status.Label(), ev.Status)
		} else {
			m.statusMessage = fmt.Sprintf("Status set to %q", ev.Status.String())
		}
	case eventbus.FindingsLoadedEvent:
		m.statusIsError = false
		m.statusMessage = fmt.Sprintf("Loaded %d findings", ev.Count)
	case eventbus.ErrorEvent:
		m.statusIsError = true
		m.statusMessage = ev.Message
	case eventbus.SelectionChangedEvent:
		m.logger.Debug("selection changed",
			"workspace", int(ev.WorkspaceID),
			"scans", len(ev.Scans),
			"selected", ev.Selected)
	}
}

// renderWidget reports a failed widget render. The widget keeps showing
// its previous content in that case.
func (m *Model) renderWidget(err error) {
	if err != nil {
		m.fail("Failed to render status table", err)
	}
}

func (m *Model) fail(message string, err error) {
	m.logger.Error(message, "error", err)
	m.statusIsError = true
	m.statusMessage = fmt.Sprintf("%s: %v", message, err)
	m.bus.Publish(eventbus.ErrorEvent{Message: m.statusMessage, Err: err})
}

// View renders the screen
func (m *Model) View() string {
	state := m.widget.State()

	promptView := ""
	if m.prompting {
		promptView = m.prompt.View()
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Workspaces:    m.workspaces,
		WorkspaceID:   state.WorkspaceID,
		Scans:         m.scans,
		ScanCursor:    m.scanCursor,
		Selection:     state.Scans,
		WidgetContent: m.widget.Content(),
		Loading:       m.loading,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		Prompt:        promptView,
		HelpView:      m.help.View(m.keys),
		ReadyMarker:   m.readyMarker,
	})
}
