package nodelink

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/zeroent/labtopo/pkg/diagram"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed appends the node ID and category to every label.
	Detailed bool

	// IconDir is the directory icon paths are resolved against.
	// Empty means the working directory.
	IconDir string

	// Scale is the PNG scale factor. Zero means 1.0.
	Scale float64
}

// categoryStyle is the node appearance for one [diagram.Category].
type categoryStyle struct {
	shape     string
	fillColor string
}

var categoryStyles = map[diagram.Category]categoryStyle{
	diagram.CategoryIngress:  {shape: "hexagon", fillColor: "#D6EAF8"},
	diagram.CategoryVCS:      {shape: "folder", fillColor: "#D5F5E3"},
	diagram.CategoryCIServer: {shape: "box3d", fillColor: "#FCF3CF"},
	diagram.CategoryCIAgent:  {shape: "component", fillColor: "#FDEBD0"},
	diagram.CategoryCIRunner: {shape: "component", fillColor: "#FADBD8"},
	diagram.CategoryCustom:   {shape: "box", fillColor: "white"},
}

// ToDOT converts a diagram to Graphviz DOT source.
// The output depends only on the diagram and options, so repeated calls
// produce identical bytes.
//
// Clusters become "cluster_N" subgraphs in declaration order, ungrouped nodes
// follow at the top level, and edges come last. Bidirectional edges use
// dir=both. Nodes with an icon are drawn as the image with the label below.
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	fontSize := d.Style.FontSize

	fmt.Fprintf(&buf, "digraph %q {\n", d.Name)
	buf.WriteString("  rankdir=TB;\n")
	fmt.Fprintf(&buf, "  fontsize=%d;\n", fontSize)
	if d.Style.BackgroundEnabled && d.Style.Background != "" {
		fmt.Fprintf(&buf, "  bgcolor=%q;\n", d.Style.Background)
	}
	if d.Style.MarginEnabled && d.Style.Margin != "" {
		fmt.Fprintf(&buf, "  margin=%q;\n", d.Style.Margin)
	}
	buf.WriteString("  ranksep=0.75;\n")
	buf.WriteString("  nodesep=0.6;\n")
	fmt.Fprintf(&buf, "  node [style=\"rounded,filled\", fontsize=%d, margin=\"0.3,0.2\"];\n", fontSize)
	fmt.Fprintf(&buf, "  edge [fontsize=%d, color=\"#7B8894\"];\n", fontSize)

	for i, c := range d.Clusters() {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph %q {\n", fmt.Sprintf("cluster_%d", i))
		fmt.Fprintf(&buf, "    label=%q;\n", c.Name)
		// Graphviz ignores rankdir inside subgraphs; only the graph-level TB applies.
		fmt.Fprintf(&buf, "    rankdir=%s;\n", c.Direction)
		buf.WriteString("    style=\"rounded,dashed\";\n")
		buf.WriteString("    pencolor=\"#AEB6BE\";\n")
		buf.WriteString("    labeljust=l;\n")
		for _, id := range c.Nodes {
			n, _ := d.Node(id)
			writeNode(&buf, "    ", n, opts)
		}
		buf.WriteString("  }\n")
	}

	if loose := d.LooseNodes(); len(loose) > 0 {
		buf.WriteString("\n")
		for _, n := range loose {
			writeNode(&buf, "  ", n, opts)
		}
	}

	buf.WriteString("\n")
	for _, e := range d.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q", e.From, e.To)
		if attrs := fmtEdgeAttrs(e); len(attrs) > 0 {
			fmt.Fprintf(&buf, " [%s]", strings.Join(attrs, ", "))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, indent string, n diagram.Node, opts Options) {
	label := fmtLabel(n, opts.Detailed)
	fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(fmtAttrs(n, label, opts), ", "))
}

func fmtLabel(n diagram.Node, detailed bool) string {
	label := n.DisplayLabel()
	if !detailed {
		return label
	}
	return fmt.Sprintf("%s\n[%s: %s]", label, n.ID, n.Category)
}

func fmtAttrs(n diagram.Node, label string, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Icon != "" {
		return append(attrs,
			"shape=none",
			"style=\"\"",
			fmt.Sprintf("image=%q", IconKey(n.Icon)),
			"imagescale=true",
			"labelloc=b",
			"width=2.5",
			"height=3",
			"fixedsize=true",
		)
	}
	st, ok := categoryStyles[n.Category]
	if !ok {
		st = categoryStyles[diagram.CategoryCustom]
	}
	return append(attrs, fmt.Sprintf("shape=%s", st.shape), fmt.Sprintf("fillcolor=%q", st.fillColor))
}

func fmtEdgeAttrs(e diagram.Edge) []string {
	var attrs []string
	if e.Bidirectional {
		attrs = append(attrs, "dir=both")
	}
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	return attrs
}

// IconKey is the slash-separated, cleaned form of an icon reference, e.g.
// "./smallstep-icon.png" becomes "smallstep-icon.png". It names the icon both
// in the DOT image attribute and inside the file system from [IconFS].
func IconKey(icon string) string {
	return path.Clean(filepath.ToSlash(icon))
}
