// Package diagram provides the in-memory description of an architecture
// diagram: labelled nodes, named clusters and labelled edges.
//
// # Overview
//
// A [Diagram] is assembled once, handed to a renderer and then discarded.
// Nodes are immutable values identified by a short symbolic ID. Clusters group
// nodes for visual containment and carry a layout [Direction]. Edges refer to
// nodes by ID only.
//
// # Basic Usage
//
//	d := diagram.New("topology", "png", diagram.Style{FontSize: 35})
//	k8s, _ := d.Cluster("K8s cluster", diagram.TopToBottom)
//	_ = k8s.Node(diagram.Node{ID: "proxy", Label: "Traefik Ingress", Category: diagram.CategoryIngress})
//	_ = d.AddNode(diagram.Node{ID: "ca", Label: "CA", Category: diagram.CategoryCustom})
//	_ = d.Connect(diagram.Edge{From: "ca", To: "proxy", Label: "ACME", Bidirectional: true})
//
// # Invariants
//
// Every edge endpoint must be declared before the edge: [Diagram.Connect]
// returns [ErrUnknownSourceNode] or [ErrUnknownTargetNode] otherwise. Node IDs
// are unique across the whole diagram, so a node belongs to at most one
// cluster. Declaration order is preserved by every accessor, which keeps the
// rendered output stable across runs.
package diagram
