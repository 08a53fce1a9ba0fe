package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/spherelab/constellation/pkg/export"
	"github.com/spherelab/constellation/pkg/graph"
)

// inspectCommand creates the inspect command for examining layout documents.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		graphPath   string
		dotOutput   string
		svgOutput   string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [layout.json]",
		Short: "Summarize a layout document's cluster structure",
		Long: `Summarize a layout document's cluster structure.

Prints per-cluster statistics (size, cap radius, center) and the overall
layout stats. With --graph, the original graph file enables cluster
diagram export via --dot and --svg. With -i, opens an interactive cluster
browser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := export.ReadDocumentFile(args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}

			if dotOutput != "" || svgOutput != "" {
				if graphPath == "" {
					return fmt.Errorf("--dot and --svg require --graph")
				}
				if err := writeClusterDiagram(doc, graphPath, dotOutput, svgOutput); err != nil {
					return err
				}
			}

			if interactive {
				return runClusterBrowser(doc)
			}

			printDocumentSummary(args[0], doc)
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "graph.json the layout was computed from")
	cmd.Flags().StringVar(&dotOutput, "dot", "", "write a cluster diagram in Graphviz DOT format")
	cmd.Flags().StringVar(&svgOutput, "svg", "", "write a cluster diagram as SVG")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse clusters interactively")

	return cmd
}

// printDocumentSummary prints the stats block and the cluster table.
func printDocumentSummary(path string, doc export.Document) {
	fmt.Println(StyleTitle.Render("Constellation layout"))
	printKeyValue("File", path)
	printKeyValue("Nodes", fmt.Sprintf("%d", len(doc.Positions)))
	printKeyValue("Clusters", fmt.Sprintf("%d", len(doc.Clusters)))
	printKeyValue("Radius", fmt.Sprintf("%g", doc.SphereRadius))
	if doc.Stats.Fallback > 0 {
		printKeyValue("Fallback", fmt.Sprintf("%d", doc.Stats.Fallback))
	}
	if doc.Stats.RefinementSuccess {
		printKeyValue("Refined", StyleSuccess.Render("yes"))
	} else {
		printKeyValue("Refined", StyleWarning.Render(fmt.Sprintf("no (%d overlaps)", doc.Stats.RemainingOverlaps)))
	}
	printNewline()

	if len(doc.Clusters) == 0 {
		printInfo("No clusters")
		return
	}

	rows := make([][]string, 0, len(doc.Clusters))
	sorted := append(doc.Clusters[:0:0], doc.Clusters...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })
	for _, cl := range sorted {
		rows = append(rows, []string{
			fmt.Sprintf("%d", cl.ID),
			fmt.Sprintf("%d", cl.Size),
			fmt.Sprintf("%.3f", cl.Radius),
			fmt.Sprintf("(%.2f, %.2f, %.2f)", cl.Center.X, cl.Center.Y, cl.Center.Z),
			truncateMembers(cl.Members, 4),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Size", "Cap", "Center", "Members").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	fmt.Println(t.Render())
}

// truncateMembers joins up to max member IDs, eliding the rest.
func truncateMembers(members []string, max int) string {
	if len(members) <= max {
		return strings.Join(members, ", ")
	}
	return strings.Join(members[:max], ", ") + fmt.Sprintf(", … +%d", len(members)-max)
}

// writeClusterDiagram exports the cluster structure as DOT and/or SVG.
func writeClusterDiagram(doc export.Document, graphPath, dotOutput, svgOutput string) error {
	g, err := graph.ReadGraphFile(graphPath)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", graphPath, err)
	}

	dot := export.ToDOT(g, doc.Clusters, export.DOTOptions{Labels: true})

	if dotOutput != "" {
		if err := os.WriteFile(dotOutput, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write %s: %w", dotOutput, err)
		}
		printSuccess("Cluster diagram written")
		printFile(dotOutput)
	}

	if svgOutput != "" {
		svg, err := export.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
		if err := os.WriteFile(svgOutput, svg, 0644); err != nil {
			return fmt.Errorf("write %s: %w", svgOutput, err)
		}
		printSuccess("Cluster diagram rendered")
		printFile(svgOutput)
	}

	return nil
}

// runClusterBrowser opens the interactive cluster list.
func runClusterBrowser(doc export.Document) error {
	model := NewClusterListModel(doc)
	_, err := tea.NewProgram(model).Run()
	return err
}
