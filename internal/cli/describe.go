package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeroent/labtopo/pkg/diagram"
)

// describeCommand prints the topology as text without rendering anything.
func (c *CLI) describeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the clusters, nodes and edges of the lab topology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadRenderOpts(cmd, defaultRenderOpts(), configPath)
			if err != nil {
				return err
			}
			d, err := buildDiagram(opts)
			if err != nil {
				return err
			}
			printDiagram(d)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./labtopo.toml if present)")
	cmd.Flags().Bool("runner-link", false, "include the agent-to-runner edge")

	return cmd
}

func printDiagram(d *diagram.Diagram) {
	printTitle(d.Filename())
	printKeyValue("font size", fmt.Sprint(d.Style.FontSize))
	printKeyValue("background", toggleString(d.Style.Background, d.Style.BackgroundEnabled))
	printKeyValue("margin", toggleString(d.Style.Margin, d.Style.MarginEnabled))

	for _, c := range d.Clusters() {
		printNewline()
		printInfo("%s %s", StyleTitle.Render(c.Name), StyleDim.Render("("+string(c.Direction)+")"))
		for _, id := range c.Nodes {
			n, _ := d.Node(id)
			printNode(n)
		}
	}

	if loose := d.LooseNodes(); len(loose) > 0 {
		printNewline()
		printInfo("%s", StyleTitle.Render("Ungrouped"))
		for _, n := range loose {
			printNode(n)
		}
	}

	printNewline()
	printInfo("%s", StyleTitle.Render("Edges"))
	for _, e := range d.Edges() {
		arrow := "->"
		if e.Bidirectional {
			arrow = "<->"
		}
		line := fmt.Sprintf("%s %s %s", e.From, arrow, e.To)
		if e.Label != "" {
			line += " " + StyleHighlight.Render("["+e.Label+"]")
		}
		printDetail("%s", line)
	}

	printNewline()
	printStats(d.NodeCount(), d.EdgeCount(), len(d.Clusters()))
}

func printNode(n diagram.Node) {
	label := strings.ReplaceAll(n.DisplayLabel(), "\n", " / ")
	line := fmt.Sprintf("%-10s %-10s %s", n.ID, n.Category, label)
	if n.Icon != "" {
		line += "  icon=" + n.Icon
	}
	printDetail("%s", line)
}

func toggleString(value string, enabled bool) string {
	if !enabled {
		return "off"
	}
	return value
}
