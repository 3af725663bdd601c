// Package render converts rendered diagrams between output formats.
//
// # Overview
//
// Layout and SVG generation happen in the [nodelink] subpackage using
// Graphviz. This package turns that SVG into raster or print formats:
//
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.IconFS("."))
//	png, err := render.ToPNG(ctx, svg, 1.0)
//	pdf, err := render.ToPDF(ctx, svg)
//
// # Dependencies
//
// [ToPNG] and [ToPDF] shell out to rsvg-convert from librsvg. Use
// [Available] to check for it before rendering.
//
// [nodelink]: github.com/zeroent/labtopo/pkg/render/nodelink
package render
