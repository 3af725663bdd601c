package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zeroent/labtopo/pkg/diagram"
)

type document struct {
	Name     string    `json:"name"`
	Format   string    `json:"format"`
	Style    style     `json:"style"`
	Clusters []cluster `json:"clusters"`
	Nodes    []node    `json:"nodes"`
	Edges    []edge    `json:"edges"`
}

type style struct {
	FontSize          int    `json:"font_size"`
	Background        string `json:"background,omitempty"`
	BackgroundEnabled bool   `json:"background_enabled"`
	Margin            string `json:"margin,omitempty"`
	MarginEnabled     bool   `json:"margin_enabled"`
}

type cluster struct {
	Name      string   `json:"name"`
	Direction string   `json:"direction"`
	Nodes     []string `json:"nodes"`
}

type node struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
	Cluster  string `json:"cluster,omitempty"`
}

type edge struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Label         string `json:"label,omitempty"`
	Bidirectional bool   `json:"bidirectional"`
}

// WriteJSON encodes a diagram as indented JSON and writes it to w.
func WriteJSON(d *diagram.Diagram, w io.Writer) error {
	out := document{
		Name:   d.Name,
		Format: d.Format,
		Style: style{
			FontSize:          d.Style.FontSize,
			Background:        d.Style.Background,
			BackgroundEnabled: d.Style.BackgroundEnabled,
			Margin:            d.Style.Margin,
			MarginEnabled:     d.Style.MarginEnabled,
		},
		Clusters: []cluster{},
		Nodes:    make([]node, 0, d.NodeCount()),
		Edges:    make([]edge, 0, d.EdgeCount()),
	}

	for _, c := range d.Clusters() {
		out.Clusters = append(out.Clusters, cluster{Name: c.Name, Direction: string(c.Direction), Nodes: c.Nodes})
	}
	for _, n := range d.Nodes() {
		clusterName, _ := d.ClusterOf(n.ID)
		out.Nodes = append(out.Nodes, node{
			ID:       n.ID,
			Label:    n.Label,
			Category: string(n.Category),
			Icon:     n.Icon,
			Cluster:  clusterName,
		})
	}
	for _, e := range d.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To, Label: e.Label, Bidirectional: e.Bidirectional})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
