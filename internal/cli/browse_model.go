package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browsePane int

const (
	paneTasks browsePane = iota
	paneWeek
	paneMonth
)

var paneNames = []string{"Tasks", "Week", "Month"}

type browseKeyMap struct {
	NextPane  key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Filter    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	ThisMonth key.Binding
	Search    key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Quit      key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		NextPane:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Toggle:    key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "done")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		PrevMonth: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next month")),
		ThisMonth: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		PageUp:    key.NewBinding(key.WithKeys("pgup")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is a read-mostly board browser. Task completion is the only
// mutation it performs.
type browseModel struct {
	ctx   context.Context
	board service.BoardService
	keys  browseKeyMap

	pane      browsePane
	cursor    int
	searching bool
	search    textinput.Model
	body      viewport.Model
	status    string
	quitting  bool
}

func newBrowseModel(ctx context.Context, board service.BoardService) browseModel {
	ti := textinput.New()
	ti.Placeholder = "title, tag or notes"
	ti.Prompt = "/ "
	ti.SetValue(board.Query())

	vp := viewport.New(80, 20)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	m := browseModel{
		ctx:    ctx,
		board:  board,
		keys:   defaultBrowseKeys(),
		search: ti,
		body:   vp,
	}
	m.refresh()
	return m
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.body.Width = msg.Width
		m.body.Height = max(msg.Height-4, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.board.Search(strings.TrimSpace(m.search.Value()))
		m.cursor = 0
		m.refresh()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.board.Query())
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPane):
		m.pane = (m.pane + 1) % browsePane(len(paneNames))
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	case m.pane == paneTasks:
		m.handleTaskKey(msg)
	case m.pane == paneMonth:
		m.handleMonthKey(msg)
	}
	m.refresh()
	return m, nil
}

func (m *browseModel) handleTaskKey(msg tea.KeyMsg) {
	items := m.board.TaskView().Items
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		if _, err := m.board.SetFilter(nextFilter(m.board.Filter())); err != nil {
			m.status = formatter.StyleRed.Render(err.Error())
			return
		}
		m.cursor = 0
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor >= len(items) {
			return
		}
		it := items[m.cursor]
		if _, err := m.board.ToggleTaskCompletion(m.ctx, it.Index, !it.Task.Completed); err != nil {
			m.status = formatter.StyleRed.Render(err.Error())
		}
		if n := len(m.board.TaskView().Items); m.cursor >= n {
			m.cursor = max(n-1, 0)
		}
	}
}

func (m *browseModel) handleMonthKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.PrevMonth):
		m.board.PrevMonth()
	case key.Matches(msg, m.keys.NextMonth):
		m.board.NextMonth()
	case key.Matches(msg, m.keys.ThisMonth):
		if year, month, _, ok := domain.ParseDate(m.board.Today()); ok {
			m.board.SetMonth(planner.NavigatorFor(year, month))
		}
	}
}

func nextFilter(cur domain.FilterMode) domain.FilterMode {
	for i, mode := range domain.FilterModes {
		if mode == cur {
			return domain.FilterModes[(i+1)%len(domain.FilterModes)]
		}
	}
	return domain.FilterAll
}

// refresh re-renders the active pane into the viewport.
func (m *browseModel) refresh() {
	var content string
	switch m.pane {
	case paneTasks:
		content = m.renderTasks()
	case paneWeek:
		content = formatter.FormatWeek(m.board.WeekView(), false)
	case paneMonth:
		content = formatter.FormatMonth(m.board.MonthView(), m.board.Today())
	}
	m.body.SetContent(content)
}

func (m browseModel) renderTasks() string {
	view := m.board.TaskView()
	var b strings.Builder
	title := "Tasks · " + string(view.Filter)
	b.WriteString(formatter.Header(title))
	b.WriteString("\n")
	if len(view.Items) == 0 {
		b.WriteString(formatter.Dim("No tasks match."))
		b.WriteString("\n")
	}
	for i, it := range view.Items {
		pointer := "  "
		if i == m.cursor {
			pointer = formatter.StyleHeader.Render("> ")
		}
		check := "[ ]"
		if it.Task.Completed {
			check = formatter.StyleGreen.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s  %s  %s\n", pointer, check,
			formatter.Truncate(it.Task.Title, 40),
			formatter.PriorityIndicator(it.Task.Priority),
			formatter.RelativeDueStyled(it.Task, view.Today))
	}
	b.WriteString("\n")
	b.WriteString(formatter.FormatProgress(view.Progress))
	b.WriteString("\n")
	return b.String()
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	tabs := make([]string, len(paneNames))
	for i, name := range paneNames {
		if browsePane(i) == m.pane {
			tabs[i] = formatter.StyleHeader.Bold(true).Render("[" + name + "]")
		} else {
			tabs[i] = formatter.Dim(" " + name + " ")
		}
	}

	var footer string
	switch {
	case m.searching:
		footer = m.search.View()
	case m.status != "":
		footer = m.status
	default:
		footer = formatter.Dim(m.helpLine())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, " "),
		m.body.View(),
		footer,
	)
}

func (m browseModel) helpLine() string {
	bindings := []key.Binding{m.keys.NextPane}
	switch m.pane {
	case paneTasks:
		bindings = append(bindings, m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Filter)
	case paneMonth:
		bindings = append(bindings, m.keys.PrevMonth, m.keys.NextMonth, m.keys.ThisMonth)
	}
	bindings = append(bindings, m.keys.Search, m.keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	if q := m.board.Query(); q != "" {
		parts = append(parts, fmt.Sprintf("search=%q", q))
	}
	return strings.Join(parts, "  ")
}
