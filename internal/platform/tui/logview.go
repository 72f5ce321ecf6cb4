package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-othellonia/internal/match"
)

// LogViewKeyMap defines the key bindings of the battle log viewer.
type LogViewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Close  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LogViewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Close, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LogViewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Close, k.Quit},
	}
}

// DefaultLogViewKeyMap returns default key bindings.
func DefaultLogViewKeyMap() LogViewKeyMap {
	return LogViewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first move"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last move"),
		),
		Close: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back to board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LogView shows every battle log entry of a match in a scrollable table.
type LogView struct {
	entries []match.LogEntry
	table   table.Model
	help    help.Model
	keys    LogViewKeyMap
	width   int
	height  int
	closed  bool
	quit    bool
}

// NewLogView creates a viewer over a copy of entries, scrolled to the newest.
func NewLogView(entries []match.LogEntry, width, height int) LogView {
	v := LogView{
		entries: append([]match.LogEntry(nil), entries...),
		help:    help.New(),
		keys:    DefaultLogViewKeyMap(),
		width:   width,
		height:  height,
	}
	v.help.Width = width
	v.table = v.createTable()
	v.updateRows()
	return v
}

func (v *LogView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Square", Width: 7},
		{Title: "Flips", Width: 6},
		{Title: "Damage", Width: 8},
		{Title: "", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, v.height-7)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (v *LogView) updateRows() {
	rows := make([]table.Row, len(v.entries))
	for i, e := range v.entries {
		threat := ""
		if e.Threat {
			threat = "threat"
		}
		rows[i] = table.Row{
			fmt.Sprint(e.Turn),
			fmt.Sprintf("%s %s%d", e.Player.Icon(), e.Player, e.PlayerTurn()),
			e.Pos.String(),
			fmt.Sprint(e.Flips),
			fmt.Sprint(e.Damage),
			threat,
		}
	}
	v.table.SetRows(rows)
	v.table.GotoBottom()
}

// Update handles a message for the viewer.
func (v LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			v.quit = true
			return v, nil
		case key.Matches(msg, v.keys.Close):
			v.closed = true
			return v, nil
		case key.Matches(msg, v.keys.Top):
			v.table.GotoTop()
			return v, nil
		case key.Matches(msg, v.keys.Bottom):
			v.table.GotoBottom()
			return v, nil
		}

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		v.table = v.createTable()
		v.updateRows()
		return v, nil
	}

	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the viewer.
func (v LogView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("BATTLE LOG - %d moves", len(v.entries))
	b.WriteString(centerText(titleStyle.Render(title), v.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(v.entries) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No moves yet.")
	} else {
		content = v.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(v.width, lipgloss.Center, tableStyle.Render(content)))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))
	return b.String()
}

// Closed reports whether the user asked to return to the board.
func (v LogView) Closed() bool {
	return v.closed
}

// Quitting reports whether the user asked to quit.
func (v LogView) Quitting() bool {
	return v.quit
}
