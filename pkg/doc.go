// Package pkg provides the libraries behind labtopo, the zeroent lab
// architecture diagram generator.
//
// # Overview
//
// The pkg directory is organized by stage:
//
//  1. [diagram] - Diagram model (nodes, clusters, edges, global style)
//  2. [topology] - The lab topology declared against that model
//  3. [render] - Output formats and SVG conversion
//  4. [render/nodelink] - Graphviz rendering with embedded icons
//  5. [io] - JSON export of a diagram
//  6. [output] - Atomic file writes
//
// Supporting packages are [errors] for coded errors, [observability] for
// render hooks and [buildinfo] for version metadata.
//
// # Architecture
//
//	topology.Build
//	     ↓
//	diagram.Diagram
//	     ↓
//	nodelink.Render (DOT → Graphviz SVG → icons embedded → PNG/PDF)
//	     ↓
//	output.WriteFile (topology.png)
//
// # Quick Start
//
//	d, err := topology.Build(topology.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := nodelink.Render(ctx, d, "png", nodelink.Options{Scale: 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = output.WriteFile(d.Filename(), data)
//
// [diagram]: github.com/zeroent/labtopo/pkg/diagram
// [topology]: github.com/zeroent/labtopo/pkg/topology
// [render]: github.com/zeroent/labtopo/pkg/render
// [render/nodelink]: github.com/zeroent/labtopo/pkg/render/nodelink
// [io]: github.com/zeroent/labtopo/pkg/io
// [output]: github.com/zeroent/labtopo/pkg/output
// [errors]: github.com/zeroent/labtopo/pkg/errors
// [observability]: github.com/zeroent/labtopo/pkg/observability
// [buildinfo]: github.com/zeroent/labtopo/pkg/buildinfo
package pkg
