package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/londonapp/internal/cli/formatter"
	"github.com/alexanderramin/londonapp/internal/selection"
)

// appModel is the root bubbletea Model for the TUI.
// It manages the view stack and routes messages to views.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// notice is a one-line message shown above the status bar until the
	// next key press.
	notice string
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:       app,
		Selection: selection.New(),
	}
	return appModel{
		state:     state,
		viewStack: []View{newDayListView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// truncate tears down every view above depth n.
func (m *appModel) truncate(n int) {
	for len(m.viewStack) > n {
		teardownView(m.activeView())
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.truncate(len(m.viewStack) - 1)
		}
		return m, nil

	case openDayMsg:
		return m.openDay(msg.index)

	case noticeMsg:
		m.notice = string(msg)
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if top := m.activeView(); top != nil && top.ID() == ViewForm && len(m.viewStack) > 1 {
			m.truncate(len(m.viewStack) - 1)
		}
		return m, msg.nextCmd
	}

	// Results of async work (loads, weather, timers) go to every view on
	// the stack. Each view drops messages that are not addressed to it.
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// openDay validates the index and replaces everything above the day list
// with a fresh sheet. Any open map goes away with the previous sheet.
func (m appModel) openDay(index int) (tea.Model, tea.Cmd) {
	token, err := m.state.OpenDay(index)
	if err != nil {
		m.state.App.logger().Warn("open day rejected",
			"index", index,
			"days", len(m.state.Days()),
			"error", err,
		)
		if errors.Is(err, selection.ErrDayOutOfRange) {
			m.notice = "Diesen Tag gibt es nicht."
		}
		return m, nil
	}
	m.truncate(1)
	m.state.Selection.Maps.Close()

	sheet := newSheetView(m.state, index, token)
	m.viewStack = append(m.viewStack, sheet)
	return m, sheet.Init()
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		m.truncate(1)
		return m, tea.Quit
	}

	// Forms receive every key so that typing 'q' does not quit.
	if v := m.activeView(); v != nil && v.ID() != ViewForm && msg.String() == "q" {
		m.quitting = true
		m.truncate(1)
		return m, tea.Quit
	}

	// Esc is handled by each view; closing a sheet is animated.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	if m.notice != "" {
		sections = append(sections, formatter.StyleYellow.Render(m.notice))
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("London 2025")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + breadcrumb + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		hints = append(hints, helpHints(v.ShortHelp())...)
		if v.ID() != ViewForm {
			hints = append(hints, formatter.Dim("q: beenden"))
		}
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(formatter.ColorDim))
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

func helpHints(bindings []key.Binding) []string {
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	return hints
}
