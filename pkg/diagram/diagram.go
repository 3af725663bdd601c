package diagram

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Diagram.AddNode] and [ClusterBuilder.Node]
	// when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned when a node with the same ID was already
	// declared, in a cluster or ungrouped. Node IDs are unique per diagram,
	// which also means a node can belong to at most one cluster.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Diagram.Connect] when the From node
	// has not been declared yet.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Diagram.Connect] when the To node
	// has not been declared yet.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrUnknownCategory is returned when a node carries a category the
	// renderer has no style for.
	ErrUnknownCategory = errors.New("unknown node category")

	// ErrDuplicateCluster is returned by [Diagram.Cluster] when a cluster with
	// the same name already exists.
	ErrDuplicateCluster = errors.New("duplicate cluster name")
)

// Category is the visual class of a node. The renderer maps each category to
// a shape and colour.
type Category string

const (
	CategoryIngress  Category = "ingress"
	CategoryVCS      Category = "vcs"
	CategoryCIServer Category = "ci-server"
	CategoryCIAgent  Category = "ci-agent"
	CategoryCIRunner Category = "ci-runner"
	CategoryCustom   Category = "custom"
)

// Categories lists every supported category in a stable order.
var Categories = []Category{
	CategoryIngress,
	CategoryVCS,
	CategoryCIServer,
	CategoryCIAgent,
	CategoryCIRunner,
	CategoryCustom,
}

// Valid reports whether c is one of [Categories].
func (c Category) Valid() bool { return slices.Contains(Categories, c) }

// Direction is the layout direction inside a cluster.
type Direction string

const (
	TopToBottom Direction = "TB"
	BottomToTop Direction = "BT"
)

// Node is a labelled vertex. Nodes are values: once added to a diagram they
// are never mutated.
type Node struct {
	ID       string   // Short symbolic name, unique within the diagram
	Label    string   // Display text, may contain "\n" for multiple lines
	Category Category // Visual class
	Icon     string   // Relative path to an image asset (custom nodes only)
}

// DisplayLabel returns the label, falling back to the ID when empty.
func (n Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}
	return n.Label
}

// Edge connects two nodes by ID. Bidirectional edges are drawn with arrow
// heads at both ends.
type Edge struct {
	From          string
	To            string
	Label         string
	Bidirectional bool
}

// Key returns "from-to", the identity used in summaries and tests.
func (e Edge) Key() string { return e.From + "-" + e.To }

// Cluster is a named visual grouping of nodes.
type Cluster struct {
	Name      string
	Direction Direction
	Nodes     []string // Member node IDs in declaration order
}

// Style holds global rendering options. Background and Margin are only
// applied when their Enabled flag is set; a diagram can carry a value for
// them while keeping it switched off.
type Style struct {
	FontSize          int
	Background        string
	BackgroundEnabled bool
	Margin            string
	MarginEnabled     bool
}

// Diagram is the top-level container owning clusters, loose nodes and edges.
// Declaration order is preserved so rendering is deterministic.
//
// The zero value is not usable - use [New]. Diagram is not safe for
// concurrent use.
type Diagram struct {
	Name   string // Output file name without extension
	Format string // Output format (e.g. "png")
	Style  Style

	nodes     map[string]Node
	order     []string          // node IDs in declaration order
	clusterOf map[string]string // node ID -> cluster name
	clusters  []*Cluster
	edges     []Edge
}

// New creates an empty diagram.
func New(name, format string, style Style) *Diagram {
	return &Diagram{
		Name:      name,
		Format:    format,
		Style:     style,
		nodes:     make(map[string]Node),
		clusterOf: make(map[string]string),
	}
}

// Filename returns Name.Format, e.g. "topology.png".
func (d *Diagram) Filename() string {
	if d.Format == "" {
		return d.Name
	}
	return d.Name + "." + d.Format
}

// ClusterBuilder adds nodes to one cluster of a diagram.
type ClusterBuilder struct {
	d *Diagram
	c *Cluster
}

// Cluster declares a new cluster and returns a builder for its members.
// An empty direction defaults to [TopToBottom].
func (d *Diagram) Cluster(name string, dir Direction) (*ClusterBuilder, error) {
	for _, c := range d.clusters {
		if c.Name == name {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCluster, name)
		}
	}
	if dir == "" {
		dir = TopToBottom
	}
	c := &Cluster{Name: name, Direction: dir}
	d.clusters = append(d.clusters, c)
	return &ClusterBuilder{d: d, c: c}, nil
}

// Node adds n to the cluster.
func (b *ClusterBuilder) Node(n Node) error {
	if err := b.d.add(n); err != nil {
		return err
	}
	b.c.Nodes = append(b.c.Nodes, n.ID)
	b.d.clusterOf[n.ID] = b.c.Name
	return nil
}

// AddNode adds an ungrouped node.
func (d *Diagram) AddNode(n Node) error {
	return d.add(n)
}

func (d *Diagram) add(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
	}
	if !n.Category.Valid() {
		return fmt.Errorf("%w: %q (node %q)", ErrUnknownCategory, n.Category, n.ID)
	}
	d.nodes[n.ID] = n
	d.order = append(d.order, n.ID)
	return nil
}

// Connect adds an edge. Both endpoints must already be declared.
func (d *Diagram) Connect(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSourceNode, e.From)
	}
	if _, ok := d.nodes[e.To]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTargetNode, e.To)
	}
	d.edges = append(d.edges, e)
	return nil
}

// Node returns the node with the given ID.
func (d *Diagram) Node(id string) (Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Nodes returns all nodes in declaration order.
func (d *Diagram) Nodes() []Node {
	out := make([]Node, len(d.order))
	for i, id := range d.order {
		out[i] = d.nodes[id]
	}
	return out
}

// LooseNodes returns the nodes that belong to no cluster, in declaration order.
func (d *Diagram) LooseNodes() []Node {
	var out []Node
	for _, id := range d.order {
		if _, grouped := d.clusterOf[id]; !grouped {
			out = append(out, d.nodes[id])
		}
	}
	return out
}

// Edges returns a copy of all edges in declaration order.
func (d *Diagram) Edges() []Edge { return slices.Clone(d.edges) }

// Clusters returns copies of all clusters in declaration order.
func (d *Diagram) Clusters() []Cluster {
	out := make([]Cluster, len(d.clusters))
	for i, c := range d.clusters {
		out[i] = Cluster{Name: c.Name, Direction: c.Direction, Nodes: slices.Clone(c.Nodes)}
	}
	return out
}

// ClusterOf returns the name of the cluster containing id, or "" and false
// for ungrouped or unknown nodes.
func (d *Diagram) ClusterOf(id string) (string, bool) {
	name, ok := d.clusterOf[id]
	return name, ok
}

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.order) }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// Icons returns the distinct icon paths referenced by nodes, in declaration order.
func (d *Diagram) Icons() []string {
	var out []string
	for _, id := range d.order {
		if icon := d.nodes[id].Icon; icon != "" && !slices.Contains(out, icon) {
			out = append(out, icon)
		}
	}
	return out
}

// Validate checks the structural invariants of the diagram. A diagram built
// only through [Diagram.AddNode], [ClusterBuilder.Node] and [Diagram.Connect]
// always passes; Validate exists for callers that want a final check before
// handing the diagram to a renderer.
func (d *Diagram) Validate() error {
	if d.Name == "" {
		return errors.New("diagram name must not be empty")
	}
	if d.Style.FontSize < 0 {
		return fmt.Errorf("font size must not be negative: %d", d.Style.FontSize)
	}
	for _, e := range d.edges {
		if _, ok := d.nodes[e.From]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSourceNode, e.From)
		}
		if _, ok := d.nodes[e.To]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTargetNode, e.To)
		}
	}
	seen := make(map[string]string)
	for _, c := range d.clusters {
		for _, id := range c.Nodes {
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("node %q in clusters %q and %q", id, prev, c.Name)
			}
			seen[id] = c.Name
		}
	}
	return nil
}
