package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/vennsets/pkg/render/venn"
	"github.com/matzehuels/vennsets/pkg/sets"
)

var (
	listTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// operationItem is one row of the operation picker.
type operationItem struct {
	Op          sets.Operation
	Title       string
	Description string
}

// OperationListModel is the bubbletea model for picking an operation when
// render is run interactively without --op.
type OperationListModel struct {
	Items    []operationItem
	Cursor   int
	Selected *sets.Operation
}

// NewOperationListModel lists every operation with its diagram title.
func NewOperationListModel() OperationListModel {
	var items []operationItem
	for _, op := range sets.Operations() {
		p, err := venn.ProfileFor(op)
		if err != nil {
			continue
		}
		items = append(items, operationItem{Op: op, Title: p.Title, Description: p.Description})
	}
	return OperationListModel{Items: items}
}

func (m OperationListModel) Init() tea.Cmd {
	return nil
}

func (m OperationListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case "enter":
			op := m.Items[m.Cursor].Op
			m.Selected = &op
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m OperationListModel) View() string {
	var b strings.Builder

	b.WriteString(listTitleStyle.Render("Select Operation"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, it := range m.Items {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%-22s %s", cursor, it.Op, it.Title)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("  " + m.Items[m.Cursor].Description))
	b.WriteString("\n")
	return b.String()
}

// pickOperation runs the picker on the terminal. It returns "" if the user
// quit without choosing.
func pickOperation() (string, error) {
	final, err := tea.NewProgram(NewOperationListModel()).Run()
	if err != nil {
		return "", fmt.Errorf("operation picker: %w", err)
	}
	if m, ok := final.(OperationListModel); ok && m.Selected != nil {
		return m.Selected.String(), nil
	}
	return "", nil
}
