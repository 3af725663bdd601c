// Package topology describes the zeroent lab: a Kubernetes cluster running
// the ingress, Gitea and the Drone server, a Docker host running the Drone
// agent and runner, and a SmallStep CA issuing certificates to the ingress
// over ACME.
//
// The topology is fixed. [Options] only toggles parts of it that exist but
// are switched off by default, plus global style values.
package topology

import (
	"github.com/zeroent/labtopo/pkg/diagram"
)

const (
	// Name is the output file name without extension.
	Name = "topology"

	// Format is the default output format.
	Format = "png"

	// DefaultFontSize applies to every label.
	DefaultFontSize = 35

	// IconSmallStep is the image asset for the CA node, relative to the
	// working directory at render time.
	IconSmallStep = "./smallstep-icon.png"
)

// Cluster names.
const (
	ClusterK8s    = "K8s cluster"
	ClusterDocker = "Docker host"
)

// Node IDs.
const (
	Proxy     = "proxy"
	Gitea     = "gitea"
	Drone     = "drone"
	Runner    = "runner"
	DRunner   = "drunner"
	SmallStep = "smallstep"
)

// Options configures the parts of the topology that can be switched.
type Options struct {
	// RunnerLink draws the agent-to-runner edge on the Docker host.
	RunnerLink bool

	FontSize int

	// Background and Margin are kept in the diagram style but only take
	// effect when their Enabled flag is set.
	Background        string
	BackgroundEnabled bool
	Margin            string
	MarginEnabled     bool
}

// DefaultOptions returns the options that reproduce the reference diagram:
// 35pt labels, no runner link, no background or margin.
func DefaultOptions() Options {
	return Options{
		FontSize:   DefaultFontSize,
		Background: "transparent",
		Margin:     "0",
	}
}

// Build assembles the lab diagram. It only fails if the literal topology
// below references an undeclared node, which would be a programming error.
func Build(opts Options) (*diagram.Diagram, error) {
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultFontSize
	}
	d := diagram.New(Name, Format, diagram.Style{
		FontSize:          opts.FontSize,
		Background:        opts.Background,
		BackgroundEnabled: opts.BackgroundEnabled,
		Margin:            opts.Margin,
		MarginEnabled:     opts.MarginEnabled,
	})

	k8s, err := d.Cluster(ClusterK8s, diagram.TopToBottom)
	if err != nil {
		return nil, err
	}
	for _, n := range []diagram.Node{
		{ID: Proxy, Label: "Traefik Ingress", Category: diagram.CategoryIngress},
		{ID: Gitea, Label: "Gitea\ngitea.zeroent.lab", Category: diagram.CategoryVCS},
		{ID: Drone, Label: "DroneCI Server\ndrone.zeroent.lab", Category: diagram.CategoryCIServer},
	} {
		if err := k8s.Node(n); err != nil {
			return nil, err
		}
	}
	if err := connect(d, Proxy, Gitea, ""); err != nil {
		return nil, err
	}
	if err := connect(d, Proxy, Drone, ""); err != nil {
		return nil, err
	}

	docker, err := d.Cluster(ClusterDocker, diagram.BottomToTop)
	if err != nil {
		return nil, err
	}
	for _, n := range []diagram.Node{
		{ID: Runner, Label: "DroneCI 'Agent'", Category: diagram.CategoryCIAgent},
		{ID: DRunner, Label: "DroneCI Runner", Category: diagram.CategoryCIRunner},
	} {
		if err := docker.Node(n); err != nil {
			return nil, err
		}
	}
	if err := connect(d, Runner, Proxy, ""); err != nil {
		return nil, err
	}
	if err := connect(d, DRunner, Proxy, ""); err != nil {
		return nil, err
	}
	if opts.RunnerLink {
		if err := connect(d, Runner, DRunner, ""); err != nil {
			return nil, err
		}
	}

	if err := d.AddNode(diagram.Node{
		ID:       SmallStep,
		Label:    "SmallStep CA",
		Category: diagram.CategoryCustom,
		Icon:     IconSmallStep,
	}); err != nil {
		return nil, err
	}
	if err := connect(d, SmallStep, Proxy, "ACME"); err != nil {
		return nil, err
	}

	return d, nil
}

func connect(d *diagram.Diagram, from, to, label string) error {
	return d.Connect(diagram.Edge{From: from, To: to, Label: label, Bidirectional: true})
}
