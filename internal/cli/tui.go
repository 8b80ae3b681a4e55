package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/engine"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// algorithmPickerModel - Interactive algorithm selection
// =============================================================================

// algorithmPickerModel is the bubbletea model for picking a generation
// algorithm. The first row is the deterministic brand-based suggestion.
type algorithmPickerModel struct {
	brandName string
	names     []algo.Name
	suggested algo.Name
	cursor    int
	selected  algo.Name
	height    int
	offset    int
}

func newAlgorithmPicker(brandName string) algorithmPickerModel {
	names := algo.Names()
	suggested := engine.SelectAlgorithm(brandName)
	cursor := 0
	for i, n := range names {
		if n == suggested {
			cursor = i
			break
		}
	}
	return algorithmPickerModel{
		brandName: brandName,
		names:     names,
		suggested: suggested,
		cursor:    cursor,
		height:    15,
	}
}

func (m algorithmPickerModel) Init() tea.Cmd {
	return nil
}

func (m algorithmPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.names[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m algorithmPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Algorithm"))
	b.WriteString(listDimStyle.Render(" for " + m.brandName))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.names) {
		end = len(m.names)
	}

	for i := m.offset; i < end; i++ {
		name := m.names[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := cursor + style.Render(string(name))
		line += listDimStyle.Render("  " + string(algo.FamilyOf(name)))
		if name == m.suggested {
			line += listDimStyle.Render("  (suggested)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if end < len(m.names) {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("\n… %d more", len(m.names)-end)))
	}

	return b.String()
}

// pickAlgorithm runs the interactive picker and returns the chosen
// algorithm, or an empty name if the user quit without selecting.
func pickAlgorithm(brandName string) (algo.Name, error) {
	final, err := tea.NewProgram(newAlgorithmPicker(brandName)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(algorithmPickerModel)
	if !ok {
		return "", nil
	}
	return m.selected, nil
}
