// Package nodelink renders architecture diagrams as node-link drawings
// using Graphviz.
//
// # Overview
//
// A [diagram.Diagram] is converted to DOT with [ToDOT], laid out and drawn
// as SVG by [RenderSVG], and optionally rasterised by the parent render
// package. [Render] runs the whole chain for one output format:
//
//	png, err := nodelink.Render(ctx, d, render.FormatPNG, nodelink.Options{})
//
// # DOT Format
//
// The generated DOT uses one "cluster_N" subgraph per diagram cluster, in
// declaration order, with the cluster direction written as its rankdir.
// Category styles pick the node shape and fill colour. Bidirectional edges
// carry dir=both and labelled edges carry their label. The global font size
// applies to graph, cluster, node and edge labels alike.
//
// # Icons
//
// Nodes with an icon reference the image by its [IconKey], a path relative
// to the icon directory. [LoadIcons] reads the files up front from
// [IconFS] and reports FILE_NOT_FOUND for any that are missing. [RenderSVG]
// hands the same file system to Graphviz, which cannot open host paths on
// its own. [EmbedIcons] then swaps each reference in the SVG for a data: URI
// so the converter never needs to resolve relative paths.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process layout and
// SVG rendering. PNG and PDF conversion requires librsvg (rsvg-convert).
//
// [diagram.Diagram]: github.com/zeroent/labtopo/pkg/diagram.Diagram
package nodelink
