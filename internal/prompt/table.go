package prompt

import (
	"strings"

	tbl "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type table struct {
	table     tbl.Model
	quitting  bool
	cancelled bool
	choice    string
	searchBuf string
	height    func() int
}

func (m *table) Init() tea.Cmd {
	return nil
}

func (m *table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "q":
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.quitting = true
			if row := m.table.SelectedRow(); row != nil {
				m.choice = row[0]
			}
			return m, tea.Quit
		default:
			// typing digits jumps to the first row starting with them
			if len(msg.String()) == 1 {
				m.search(msg.String())
				return m, nil
			}
			m.searchBuf = ""
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *table) search(key string) {
	m.searchBuf += key
	rows := m.table.Rows()
	searchIdx := -1
	searchIdxCandidate := -1
	for id, row := range rows {
		if strings.HasPrefix(row[0], m.searchBuf) {
			searchIdx = id
			break
		}
		if searchIdxCandidate == -1 && strings.HasPrefix(row[0], key) {
			searchIdxCandidate = id
		}
	}
	if searchIdx != -1 {
		m.table.SetCursor(searchIdx)
	} else if searchIdxCandidate != -1 {
		m.searchBuf = key
		m.table.SetCursor(searchIdxCandidate)
	} else {
		m.searchBuf = ""
	}
}

func (m *table) View() string {
	if m.quitting {
		return ""
	}
	// 3 lines for the table header, and assume current output has been at most 7 lines
	height := min(len(m.table.Rows()), m.height()-10)
	m.table.SetHeight(max(height, 1))
	return baseStyle.Render(m.table.View()) + "\n"
}

func newTable(columns []tbl.Column, rows []tbl.Row, initPos int) *table {
	t := tbl.New(
		tbl.WithColumns(columns),
		tbl.WithRows(rows),
		tbl.WithFocused(true),
	)
	t.SetCursor(initPos)

	s := tbl.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &table{table: t, height: func() int { return terminalHeight(24) }}
}

func (m *table) Start() error {
	m.quitting = false
	m.cancelled = false
	m.searchBuf = ""
	_, err := tea.NewProgram(m).Run()
	return err
}

// Table lets the user pick a row and returns the first cell of the picked
// row. initPos is the row selected when the table opens.
func Table(columns []tbl.Column, rows []tbl.Row, initPos int) (string, error) {
	if !isInteractive {
		return "", ErrNotInteractive
	}
	table := newTable(columns, rows, initPos)
	if err := table.Start(); err != nil {
		return "", err
	}
	if table.cancelled || table.choice == "" {
		return "", ErrCancelled
	}
	return table.choice, nil
}
