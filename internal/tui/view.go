package tui

import (
	"fmt"
	"strings"

	"ghostconfig/internal/app"
	"ghostconfig/internal/filter"
	"ghostconfig/internal/model"
	"ghostconfig/internal/picker"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.stopped {
		return m.ctrl.T("ui.server_stopped") + "\n"
	}
	if m.initializing {
		return m.renderHeader() + "\n\n" + styleMuted().Render(m.ctrl.T("ui.loading")) + "\n"
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 3 {
		bodyH = 3
	}

	var body string
	switch m.mode {
	case modeEdit:
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.renderEditor())
	case modeConfirmExit:
		modal := renderConfirmModal(m.width, m.ctrl.T("ui.exit"), m.ctrl.T("ui.exit_confirm"),
			m.ctrl.T("ui.exit"), m.ctrl.T("ui.cancel"), m.confirm)
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, modal)
	default:
		body = m.renderList(bodyH)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) sectionLabel(name string) string {
	k := "section." + name
	if label := m.ctrl.T(k); label != k {
		return label
	}
	return name
}

func (m Model) renderHeader() string {
	title := styleAccent().Render(m.ctrl.T("app.title"))
	lang := styleMuted().Render("[" + m.ctrl.Lang() + "]")
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(lang)
	if gap < 1 {
		gap = 1
	}
	lines := []string{title + strings.Repeat(" ", gap) + lang}
	if m.initializing {
		return strings.Join(lines, "\n")
	}

	var tabs []string
	for _, s := range m.ctrl.Sections() {
		label := " " + m.sectionLabel(s) + " "
		if s == m.ctrl.Section() {
			tabs = append(tabs, styleSelected().Render(label))
		} else {
			tabs = append(tabs, styleMuted().Render(label))
		}
	}
	lines = append(lines, truncate(strings.Join(tabs, ""), m.width))

	if m.mode == modeSearch || m.search.Value() != "" {
		view := m.search.View()
		if m.mode != modeSearch && m.search.Value() != "" {
			view = m.search.Value()
		}
		lines = append(lines, renderInputLine(m.width, "/", view))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var lines []string
	if n, ok := m.ctrl.Status(); ok {
		st := lipgloss.NewStyle().Foreground(colorOK)
		if n.IsError {
			st = lipgloss.NewStyle().Foreground(colorError)
		}
		lines = append(lines, truncate(st.Render(n.Text), m.width))
	} else {
		lines = append(lines, "")
	}
	help := m.ctrl.T("help.list")
	if m.mode == modeEdit {
		help = m.editorHelp()
	}
	lines = append(lines, styleMuted().Render(truncate(help, m.width)))
	return strings.Join(lines, "\n")
}

func (m Model) renderList(height int) string {
	switch m.ctrl.ListState() {
	case app.Loading:
		return styleMuted().Render(m.ctrl.T("ui.loading"))
	case app.Failed:
		msg := m.ctrl.T("ui.load_failed")
		if err := m.ctrl.LoadErr(); err != nil {
			msg += "\n" + err.Error()
		}
		return lipgloss.NewStyle().Foreground(colorError).Render(truncate(msg, m.width*4))
	case app.Empty:
		return styleMuted().Render(m.ctrl.T("ui.no_options"))
	}

	res := m.ctrl.Projection()
	grouped := m.ctrl.Section() == filter.All
	keyW := 0
	for _, e := range res.Entries {
		if w := lipgloss.Width(e.Option.Key); w > keyW {
			keyW = w
		}
	}
	if limit := m.width / 2; keyW > limit {
		keyW = limit
	}

	var lines []string
	cursorLine := 0
	prevSection := ""
	for i, e := range res.Entries {
		if grouped && e.Section != prevSection {
			if prevSection != "" {
				lines = append(lines, "")
			}
			lines = append(lines, styleAccent().Render(m.sectionLabel(e.Section)))
			prevSection = e.Section
		}
		if i == m.cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, m.renderRow(*e.Option, keyW, i == m.cursor))
	}

	// Scroll so the cursor row stays visible.
	start := 0
	if cursorLine >= height {
		start = cursorLine - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}

func (m Model) renderRow(opt model.Option, keyW int, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	k := truncate(opt.Key, keyW)
	k += strings.Repeat(" ", keyW-lipgloss.Width(k))

	value := opt.EffectiveValue()
	if value == "" {
		value = styleMuted().Render(m.ctrl.T("ui.empty"))
	}
	if opt.Type == model.OptionTypeColor {
		value = swatch(opt.EffectiveValue()) + " " + value
	}

	badge := styleMuted().Render(m.ctrl.T("ui.default"))
	if opt.Modified() {
		badge = lipgloss.NewStyle().Foreground(colorModified).Render(m.ctrl.T("ui.modified"))
	} else if !opt.UsingDefault() {
		badge = ""
	}

	row := marker + k + "  " + value
	if badge != "" {
		row += "  " + badge
	}
	row = truncate(row, m.width)
	if selected {
		return styleSelected().Render(row)
	}
	return row
}

func (m Model) editorHelp() string {
	switch m.ctrl.Editor().Picker().(type) {
	case *picker.Color:
		return m.ctrl.T("help.color")
	case *picker.Font:
		return m.ctrl.T("help.font")
	default:
		return m.ctrl.T("help.text")
	}
}

func (m Model) renderEditor() string {
	s := m.ctrl.Editor()
	opt := s.Option()
	if opt == nil {
		return ""
	}
	bodyW := modalBodyWidth(m.width)

	var parts []string
	if desc := renderMarkdown(opt.Description, bodyW); desc != "" {
		dl := strings.Split(desc, "\n")
		if len(dl) > 8 {
			dl = append(dl[:8], styleMuted().Render("…"))
		}
		parts = append(parts, strings.Join(dl, "\n"))
	}

	cur := opt.CurrentValue
	if cur == "" {
		cur = m.ctrl.T("ui.default") + ": " + opt.DefaultValue
	}
	parts = append(parts, styleMuted().Render(m.ctrl.T("ui.current"))+" "+truncate(cur, bodyW-12))

	switch p := s.Picker().(type) {
	case *picker.Text:
		parts = append(parts, renderInputLine(bodyW, m.ctrl.T("ui.value"), m.input.View()))
	case *picker.Color:
		parts = append(parts, m.renderColorPicker(p, bodyW))
	case *picker.Font:
		parts = append(parts, m.renderFontPicker(p, bodyW))
	}
	if m.inFlight > 0 {
		parts = append(parts, styleMuted().Render("…"))
	}
	return renderModalBox(m.width, opt.Key, strings.Join(parts, "\n\n"))
}

func (m Model) renderColorPicker(p *picker.Color, bodyW int) string {
	var rows []string
	for i, c := range p.Palette() {
		marker := "  "
		if !m.colorFocusHex && i == m.colorCursor {
			marker = "> "
		}
		row := fmt.Sprintf("%s%s %-14s %s", marker, swatch(c.Value), c.Name, c.Value)
		if p.IsHighlighted(i) {
			row = styleSelected().Render(row)
		}
		rows = append(rows, row)
	}
	hexView := m.input.View()
	if !m.colorFocusHex {
		hexView = p.Hex()
	}
	rows = append(rows, "", renderInputLine(bodyW-3, m.ctrl.T("ui.custom")+" #", hexView)+" "+swatch(p.Preview()))
	return strings.Join(rows, "\n")
}

func (m Model) renderFontPicker(p *picker.Font, bodyW int) string {
	lines := []string{renderInputLine(bodyW, "", m.input.View())}
	switch p.State() {
	case picker.FontLoading:
		return strings.Join(append(lines, styleMuted().Render(m.ctrl.T("ui.loading_fonts"))), "\n")
	case picker.FontFailed:
		return strings.Join(append(lines, lipgloss.NewStyle().Foreground(colorError).Render(m.ctrl.T("ui.fonts_failed"))), "\n")
	}

	visible := p.Visible()
	if len(visible) == 0 {
		return strings.Join(append(lines, styleMuted().Render(m.ctrl.T("ui.no_fonts"))), "\n")
	}
	const window = 10
	start := 0
	if m.fontCursor >= window {
		start = m.fontCursor - window + 1
	}
	end := start + window
	if end > len(visible) {
		end = len(visible)
	}
	selected, hasSelected := p.Selected()
	for i := start; i < end; i++ {
		name := visible[i]
		marker := "  "
		if i == m.fontCursor {
			marker = "> "
		}
		mark := " "
		switch {
		case hasSelected && name == selected:
			mark = "✓"
		case !hasSelected && name == p.Current():
			mark = "•"
		}
		row := truncate(marker+mark+" "+name, bodyW)
		if i == m.fontCursor {
			row = styleSelected().Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}
