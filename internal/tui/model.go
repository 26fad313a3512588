package tui

import (
	"context"
	"fmt"
	"time"

	"ghostconfig/internal/app"
	"ghostconfig/internal/editor"
	"ghostconfig/internal/logging"
	"ghostconfig/internal/picker"
	"ghostconfig/internal/status"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeEdit
	modeConfirmExit
)

type (
	initDoneMsg struct {
		snap app.Snapshot
		err  error
	}

	fontsLoadedMsg struct {
		gen   uint64
		fonts []string
		err   error
	}

	saveDoneMsg struct {
		key, value string
		err        error
	}

	statusExpireMsg struct{ id uint64 }

	exitDoneMsg struct{ err error }
)

// Model is the bubbletea model over an app.Controller. All controller calls
// happen in Update; commands only perform network I/O.
type Model struct {
	ctx  context.Context
	ctrl *app.Controller
	log  logging.Logger
	keys keyMap

	width  int
	height int

	mode         mode
	initializing bool
	cursor       int

	search textinput.Model
	input  textinput.Model

	colorCursor   int
	colorFocusHex bool
	fontCursor    int

	inFlight int
	confirm  confirmFocus
	stopped  bool
}

func newModel(ctx context.Context, ctrl *app.Controller, log logging.Logger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = logging.Discard()
	}
	search := textinput.New()
	search.Prompt = ""
	search.CharLimit = 128

	input := textinput.New()
	input.Prompt = ""
	// Values are free-form; a limit would truncate long current values on open.
	input.CharLimit = 0

	return Model{
		ctx:          ctx,
		ctrl:         ctrl,
		log:          log,
		keys:         defaultKeyMap(),
		width:        80,
		height:       24,
		initializing: true,
		search:       search,
		input:        input,
	}
}

func (m Model) Init() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		snap, err := ctrl.Fetch(ctx)
		return initDoneMsg{snap: snap, err: err}
	}
}

func expireAfter(n status.Notice) tea.Cmd {
	if n.ID == 0 {
		return nil
	}
	return tea.Tick(status.TTL, func(time.Time) tea.Msg { return statusExpireMsg{id: n.ID} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case initDoneMsg:
		m.initializing = false
		if err := m.ctrl.FinishInit(m.ctx, msg.snap, msg.err); err != nil {
			m.log.Error(m.ctx, "load failed", "err", err)
		}
		return m, nil

	case fontsLoadedMsg:
		if m.ctrl.ResolveFonts(msg.gen, msg.fonts, msg.err) {
			m.fontCursor = m.currentFontIndex()
		}
		return m, nil

	case saveDoneMsg:
		m.inFlight--
		selected := m.selectedKey()
		n, _ := m.ctrl.FinishCommit(msg.key, msg.value, msg.err)
		if m.mode == modeEdit && m.ctrl.Editor().State() == editor.Closed {
			m.leaveEdit()
		}
		m.keepCursorOn(selected)
		return m, expireAfter(n)

	case statusExpireMsg:
		m.ctrl.ExpireStatus(msg.id)
		return m, nil

	case exitDoneMsg:
		m.stopped = true
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.initializing {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmExit:
			return m.updateConfirmExit(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) selectedKey() string {
	entries := m.ctrl.Projection().Entries
	if m.cursor < 0 || m.cursor >= len(entries) {
		return ""
	}
	return entries[m.cursor].Option.Key
}

func (m *Model) keepCursorOn(key string) {
	if i := m.ctrl.Projection().IndexOf(key); i >= 0 {
		m.cursor = i
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.ctrl.Projection().Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = m.ctrl.Projection().Len() - 1
		m.clampCursor()
	case key.Matches(msg, m.keys.PrevSection):
		m.shiftSection(-1)
	case key.Matches(msg, m.keys.NextSection):
		m.shiftSection(1)
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Language):
		if err := m.ctrl.NextLanguage(m.ctx); err != nil {
			return m, expireAfter(m.ctrl.ShowStatus(err.Error(), true))
		}
		n := m.ctrl.ShowStatus(fmt.Sprintf(m.ctrl.T("ui.language"), m.ctrl.Lang()), false)
		return m, expireAfter(n)
	case key.Matches(msg, m.keys.Quit):
		m.mode = modeConfirmExit
		m.confirm = confirmFocusConfirm
	}
	return m, nil
}

func (m *Model) shiftSection(delta int) {
	sections := m.ctrl.Sections()
	cur := 0
	for i, s := range sections {
		if s == m.ctrl.Section() {
			cur = i
			break
		}
	}
	next := (cur + delta + len(sections)) % len(sections)
	m.ctrl.SetSection(sections[next])
	m.cursor = 0
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = modeList
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.mode = modeList
		m.search.Blur()
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.ctrl.SetSearch("")
			m.cursor = 0
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.ctrl.SetSearch(v)
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	key := m.selectedKey()
	if key == "" {
		return m, nil
	}
	p, err := m.ctrl.Open(key)
	if err != nil {
		return m, expireAfter(m.ctrl.ShowStatus(err.Error(), true))
	}
	m.mode = modeEdit
	m.input.Placeholder = ""

	switch p := p.(type) {
	case *picker.Text:
		m.input.SetValue(p.Value())
		m.input.CursorEnd()
		return m, m.input.Focus()
	case *picker.Color:
		m.colorFocusHex = false
		m.colorCursor = p.SelectedIndex()
		if m.colorCursor < 0 {
			m.colorCursor = 0
		}
		m.input.SetValue(p.Hex())
		m.input.CursorEnd()
		m.input.Blur()
		return m, nil
	case *picker.Font:
		m.input.SetValue("")
		m.input.Placeholder = m.ctrl.T("ui.filter_fonts")
		m.fontCursor = m.currentFontIndex()
		focus := m.input.Focus()
		if p.State() != picker.FontLoading {
			return m, focus
		}
		ctx, ctrl, gen := m.ctx, m.ctrl, m.ctrl.Editor().Generation()
		load := func() tea.Msg {
			fonts, err := ctrl.LoadFonts(ctx)
			return fontsLoadedMsg{gen: gen, fonts: fonts, err: err}
		}
		return m, tea.Batch(focus, load)
	}
	return m, nil
}

func (m *Model) leaveEdit() {
	m.mode = modeList
	m.input.Blur()
	m.input.SetValue("")
	m.input.Placeholder = ""
}

func (m Model) currentFontIndex() int {
	fp, ok := m.ctrl.Editor().Picker().(*picker.Font)
	if !ok {
		return 0
	}
	for i, name := range fp.Visible() {
		if name == fp.Current() {
			return i
		}
	}
	return 0
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Cancel()
		m.leaveEdit()
		return m, nil
	case key.Matches(msg, m.keys.Commit):
		k, v, err := m.ctrl.BeginCommit()
		if err != nil {
			m.leaveEdit()
			return m, nil
		}
		m.inFlight++
		ctx, ctrl := m.ctx, m.ctrl
		return m, func() tea.Msg {
			return saveDoneMsg{key: k, value: v, err: ctrl.Save(ctx, k, v)}
		}
	}

	switch p := m.ctrl.Editor().Picker().(type) {
	case *picker.Text:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		p.SetValue(m.input.Value())
		return m, cmd
	case *picker.Color:
		return m.updateColor(p, msg)
	case *picker.Font:
		return m.updateFont(p, msg)
	}
	return m, nil
}

func (m Model) updateColor(p *picker.Color, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Toggle) {
		m.colorFocusHex = !m.colorFocusHex
		if m.colorFocusHex {
			return m, m.input.Focus()
		}
		m.input.Blur()
		return m, nil
	}
	if m.colorFocusHex {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		p.SetHex(m.input.Value())
		return m, cmd
	}

	n := len(p.Palette())
	if n == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.colorCursor = (m.colorCursor - 1 + n) % n
	case key.Matches(msg, m.keys.Down):
		m.colorCursor = (m.colorCursor + 1) % n
	case msg.Type == tea.KeySpace:
	default:
		return m, nil
	}
	p.SelectPalette(m.colorCursor)
	m.input.SetValue(p.Hex())
	m.input.CursorEnd()
	return m, nil
}

func (m Model) updateFont(p *picker.Font, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := p.Visible()
	switch {
	case key.Matches(msg, m.keys.ListUp):
		if m.fontCursor > 0 {
			m.fontCursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.ListDown):
		if m.fontCursor < len(visible)-1 {
			m.fontCursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if m.fontCursor >= 0 && m.fontCursor < len(visible) {
			p.Select(visible[m.fontCursor])
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	p.SetFilter(m.input.Value())
	if n := len(p.Visible()); m.fontCursor >= n {
		m.fontCursor = n - 1
	}
	if m.fontCursor < 0 {
		m.fontCursor = 0
	}
	return m, cmd
}

func (m Model) updateConfirmExit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, m.keys.Toggle), msg.Type == tea.KeyLeft, msg.Type == tea.KeyRight:
		m.confirm = m.confirm.toggle()
		return m, nil
	case key.Matches(msg, m.keys.ConfirmYes):
		m.confirm = confirmFocusConfirm
		return m.requestExit()
	case key.Matches(msg, m.keys.Commit):
		if m.confirm == confirmFocusCancel {
			m.mode = modeList
			return m, nil
		}
		return m.requestExit()
	}
	return m, nil
}

func (m Model) requestExit() (tea.Model, tea.Cmd) {
	ctx, ctrl := m.ctx, m.ctrl
	return m, func() tea.Msg {
		// Failure is advisory; the UI exits either way.
		return exitDoneMsg{err: ctrl.RequestExit(ctx)}
	}
}
