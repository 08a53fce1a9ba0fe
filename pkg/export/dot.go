package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/spherelab/constellation/pkg/cluster"
	"github.com/spherelab/constellation/pkg/graph"
)

// DOTOptions configures cluster diagram generation.
type DOTOptions struct {
	// Labels includes node titles in labels when set.
	// When false, only the node ID is shown.
	Labels bool
}

// clusterPalette colors nodes by cluster membership. Clusters beyond the
// palette wrap around.
var clusterPalette = []string{
	"#7aa2f7", "#9ece6a", "#e0af68", "#f7768e",
	"#bb9af7", "#7dcfff", "#ff9e64", "#73daca",
}

// ToDOT converts a graph and its clusters to Graphviz DOT format.
// Nodes are colored by cluster so component structure is visible at a
// glance; the output is a diagnostic view, not the spherical layout itself.
func ToDOT(g graph.Graph, clusters []cluster.Cluster, opts DOTOptions) string {
	colorByNode := make(map[string]string, g.NodeCount())
	for i, c := range clusters {
		color := clusterPalette[i%len(clusterPalette)]
		for _, id := range c.Members {
			colorByNode[id] = color
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph constellation {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(n, opts.Labels))}
		if color, ok := colorByNode[n.ID]; ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", color))
		} else {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n graph.Node, labels bool) string {
	if labels && n.Title != "" {
		return n.Title
	}
	return n.ID
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	gv := graphviz.New()
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the diagram scales to
// its container instead of using Graphviz's point-based coordinates.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
