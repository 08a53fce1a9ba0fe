package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/spherelab/constellation/pkg/cluster"
	"github.com/spherelab/constellation/pkg/export"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// ClusterListModel is the bubbletea model for browsing a layout's clusters.
// The list shows one row per cluster; selecting a row expands its members.
type ClusterListModel struct {
	Clusters []cluster.Cluster
	Radius   float64
	Cursor   int
	Expanded bool
	Height   int
	Offset   int
}

// NewClusterListModel creates a cluster browser for a layout document.
// Clusters are shown largest first.
func NewClusterListModel(doc export.Document) ClusterListModel {
	clusters := append(doc.Clusters[:0:0], doc.Clusters...)
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Size == clusters[j].Size {
			return clusters[i].ID < clusters[j].ID
		}
		return clusters[i].Size > clusters[j].Size
	})
	return ClusterListModel{
		Clusters: clusters,
		Radius:   doc.SphereRadius,
		Height:   15,
	}
}

func (m ClusterListModel) Init() tea.Cmd {
	return nil
}

func (m ClusterListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.Expanded = false
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Clusters)-1 {
				m.Cursor++
				m.Expanded = false
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ClusterListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Clusters"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ expand  q quit"))
	b.WriteString("\n\n")

	if len(m.Clusters) == 0 {
		b.WriteString(listDimStyle.Render("  (no clusters)"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Clusters) {
		end = len(m.Clusters)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cl := m.Clusters[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", cl.ID),
			fmt.Sprintf("%d", cl.Size),
			fmt.Sprintf("%.3f", cl.Radius),
			fmt.Sprintf("(%.2f, %.2f, %.2f)", cl.Center.X, cl.Center.Y, cl.Center.Z),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Size", "Cap", "Center").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.Expanded {
		cl := m.Clusters[m.Cursor]
		b.WriteString("\n")
		b.WriteString(StyleValue.Render(fmt.Sprintf("  Cluster %d members:", cl.ID)))
		b.WriteString("\n")
		for _, id := range cl.Members {
			b.WriteString(listDimStyle.Render("    " + id))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Clusters))))

	return b.String()
}
