// Package pkg provides the core libraries for constellation layout computation.
//
// # Overview
//
// Constellation places relationship graphs on the surface of a sphere:
// connected components become star clusters, clusters claim non-overlapping
// caps, and each cluster's members are arranged force-directed within its
// cap. The pkg directory is organized into four main areas:
//
//  1. [sphere], [graph], [cluster], [force] - Domain logic (geometry,
//     graph structures, component detection, force simulation)
//  2. [layout] - The end-to-end layout pipeline
//  3. [cache], [store], [export], [observability] - Infrastructure
//  4. [pipeline] - Orchestration with caching, shared by CLI and API
//
// # Architecture
//
// The typical data flow:
//
//	graph.json (nodes + edges)
//	         ↓
//	    [cluster] package (detect components, place caps)
//	         ↓
//	    [force] package (arrange members in tangent disks)
//	         ↓
//	    [layout] package (project onto sphere, fill gaps, validate)
//	         ↓
//	    layout.json (3D position per node)
//
// # Quick Start
//
// Compute a layout for a small graph:
//
//	import (
//	    "context"
//	    "github.com/spherelab/constellation/pkg/graph"
//	    "github.com/spherelab/constellation/pkg/layout"
//	)
//
//	g := graph.New(nodes, edges)
//	result, err := layout.Compute(context.Background(), g, g.NodeIDs(), layout.DefaultConfig())
//
// The CLI under cmd/constellation and the HTTP API under internal/server
// both build on [pipeline], which adds caching on top of [layout].
package pkg
