// Package export serializes computed layouts and produces diagnostic
// visualizations.
//
// The [Document] type is the stable interchange format: it pairs node
// positions with the cluster structure and computation stats, and is what
// the CLI writes to disk and the server stores.
//
// For quick inspection of cluster structure, [ToDOT] emits a Graphviz
// diagram with nodes colored by component, and [RenderSVG] rasterizes it
// in-process.
package export
