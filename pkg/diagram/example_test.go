package diagram_test

import (
	"fmt"

	"github.com/zeroent/labtopo/pkg/diagram"
)

func ExampleDiagram_Connect() {
	d := diagram.New("example", "png", diagram.Style{FontSize: 20})
	hosts, _ := d.Cluster("hosts", diagram.TopToBottom)
	_ = hosts.Node(diagram.Node{ID: "proxy", Label: "Proxy", Category: diagram.CategoryIngress})
	_ = hosts.Node(diagram.Node{ID: "git", Label: "Git", Category: diagram.CategoryVCS})
	_ = d.Connect(diagram.Edge{From: "proxy", To: "git", Bidirectional: true})

	err := d.Connect(diagram.Edge{From: "proxy", To: "missing"})
	fmt.Println(d.NodeCount(), d.EdgeCount())
	fmt.Println(err)
	// Output:
	// 2 1
	// unknown target node: "missing"
}
