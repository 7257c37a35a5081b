package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StationListModel - Interactive station browsing
// =============================================================================

// StationListModel is the bubbletea model for browsing station records.
type StationListModel struct {
	Records []trips.Station
	Cursor  int
	Height  int
	Offset  int
}

// NewStationListModel creates a new station list model.
func NewStationListModel(records []trips.Station) StationListModel {
	return StationListModel{
		Records: records,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m StationListModel) Init() tea.Cmd {
	return nil
}

func (m StationListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Records)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Records) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m StationListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Stations"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Records) {
		end = len(m.Records)
	}

	maxCount := trips.MaxCount(m.Records)

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Records[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{cursor, r.Name, r.Code, chart.FormatThousands(r.Count), countBar(r.Count, maxCount)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Station", "Code", "Trips", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Records) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorCyan)
			}
			if isCurrent {
				return base.Foreground(colorWhite).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Records))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// barWidth is the widest trip-count bar shown in the list.
const barWidth = 20

// countBar renders a proportional bar for a trip count.
func countBar(count, maxCount int) string {
	if maxCount == 0 {
		return ""
	}
	n := count * barWidth / maxCount
	return strings.Repeat("█", n)
}
