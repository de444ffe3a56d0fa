package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"procwin/internal/app"
	"procwin/internal/inventory"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	List(context.Context, app.ListParams) (app.ListResult, error)
	Manipulate(context.Context, app.ManipulateParams) (app.BatchResult, error)
}

// presenceFilter cycles through the window-presence views.
type presenceFilter int

const (
	presenceAll presenceFilter = iota
	presenceWindowed
	presenceWindowless
)

func (p presenceFilter) label() string {
	switch p {
	case presenceWindowed:
		return "windowed"
	case presenceWindowless:
		return "windowless"
	}
	return "all"
}

func (p presenceFilter) filter() inventory.Filter {
	switch p {
	case presenceWindowed:
		return inventory.Filter{HasWindow: true}
	case presenceWindowless:
		return inventory.Filter{NoWindow: true}
	}
	return inventory.Filter{}
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	list    list.Model
	entries []inventory.Entry

	presence  presenceFilter
	statusMsg string
	warning   string

	err     error
	loading bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Processes"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		list:       lst,
		statusMsg:  "Loading processes…",
		loading:    true,
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return loadEntriesCmd(m.controller, m.presence)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}

	case entriesLoadedMsg:
		m.loading = false
		m.err = nil
		m.entries = msg.entries
		m.warning = msg.warning
		items := make([]list.Item, 0, len(msg.entries))
		for _, e := range msg.entries {
			items = append(items, entryItem{Entry: e})
		}
		m.list.SetItems(items)
		m.lastUpdated = time.Now()
		m.statusMsg = fmt.Sprintf("%d processes (%s). Press r to refresh, q to quit.", len(msg.entries), m.presence.label())

	case minimizedMsg:
		m.statusMsg = fmt.Sprintf("Minimized %d window(s)", msg.successes)
		return m, loadEntriesCmd(m.controller, m.presence)

	case errMsg:
		m.loading = false
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadEntriesCmd(m.controller, m.presence)
		case "w":
			m.presence = (m.presence + 1) % 3
			m.loading = true
			return m, loadEntriesCmd(m.controller, m.presence)
		case "m":
			if e := m.currentEntry(); e != nil && e.HasWindow {
				m.statusMsg = fmt.Sprintf("Minimizing windows of pid %d…", e.PID)
				return m, minimizeCmd(m.controller, e.PID)
			}
			m.statusMsg = "Selected process has no windows."
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.warning != "" {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		b.WriteString(warnStyle.Render("Warning: " + m.warning))
		b.WriteByte('\n')
	}

	if m.loading {
		b.WriteString("Loading processes…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil {
		b.WriteString("No processes found.\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	if current := m.currentEntry(); current != nil {
		detail := fmt.Sprintf(
			"pid=%d windows=%d\nname=%s\ntitle=%s\nmemory=%.2f MB",
			current.PID,
			len(current.Windows),
			valueOrDash(current.Name),
			valueOrDash(current.Title),
			float64(current.Memory)/1024/1024,
		)
		detailStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		b.WriteString(detailStyle.Render(detail))
		b.WriteByte('\n')
	}

	help := "Commands: q quit • r reload • w cycle window filter • m minimize windows"
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// entryItem adapts inventory.Entry to the bubbles list item interface.
type entryItem struct {
	Entry inventory.Entry
}

func (e entryItem) Title() string {
	name := e.Entry.Name
	if name == "" {
		name = "-"
	}
	presence := "no window"
	if e.Entry.HasWindow {
		presence = fmt.Sprintf("%d window(s)", len(e.Entry.Windows))
	}
	return fmt.Sprintf("[pid=%d] %s (%s)", e.Entry.PID, name, presence)
}

func (e entryItem) Description() string {
	return fmt.Sprintf("title=%s | memory=%.2f MB", valueOrDash(e.Entry.Title), float64(e.Entry.Memory)/1024/1024)
}

func (e entryItem) FilterValue() string {
	return fmt.Sprintf("%d %s %s", e.Entry.PID, e.Entry.Name, e.Entry.Title)
}

func (m *Model) currentEntry() *inventory.Entry {
	if len(m.entries) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}
	return &m.entries[idx]
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

type entriesLoadedMsg struct {
	entries []inventory.Entry
	warning string
}

type minimizedMsg struct {
	successes int
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func loadEntriesCmd(ctrl Controller, presence presenceFilter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		res, err := ctrl.List(ctx, app.ListParams{Filter: presence.filter()})
		if err != nil {
			return errMsg{err}
		}
		return entriesLoadedMsg{entries: res.Entries, warning: res.Warning}
	}
}

func minimizeCmd(ctrl Controller, pid int32) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		res, err := ctrl.Manipulate(ctx, app.ManipulateParams{
			Filter: inventory.Filter{PID: pid},
			Op:     app.OpMinimize,
			All:    true,
		})
		if err != nil {
			return errMsg{err}
		}
		return minimizedMsg{successes: res.Successes}
	}
}
