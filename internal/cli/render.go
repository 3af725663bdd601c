package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeroent/labtopo/pkg/diagram"
	"github.com/zeroent/labtopo/pkg/output"
	"github.com/zeroent/labtopo/pkg/render"
	"github.com/zeroent/labtopo/pkg/render/nodelink"
	"github.com/zeroent/labtopo/pkg/topology"
)

// renderCommand creates the render command.
//
// Defaults reproduce the reference diagram: topology.png in the working
// directory, 35pt labels, no runner link.
func (c *CLI) renderCommand() *cobra.Command {
	var configPath string
	defaults := defaultRenderOpts()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the lab topology to an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadRenderOpts(cmd, defaultRenderOpts(), configPath)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./labtopo.toml if present)")
	cmd.Flags().StringP("output", "o", defaults.output, "output file name without extension")
	cmd.Flags().StringP("format", "f", defaults.format, "output format: "+strings.Join(render.Formats, ", "))
	cmd.Flags().Float64("scale", defaults.scale, "PNG scale factor")
	cmd.Flags().String("icons", "", "directory icon paths are resolved against (default: working directory)")
	cmd.Flags().Bool("detailed", false, "append node IDs and categories to labels")
	cmd.Flags().Int("font-size", defaults.topology.FontSize, "label font size")
	cmd.Flags().Bool("runner-link", false, "draw the agent-to-runner edge on the Docker host")

	return cmd
}

// buildDiagram assembles the topology and applies the output name and format.
func buildDiagram(opts renderOpts) (*diagram.Diagram, error) {
	d, err := topology.Build(opts.topology)
	if err != nil {
		return nil, fmt.Errorf("build topology: %w", err)
	}
	d.Name = opts.output
	d.Format = opts.format
	return d, nil
}

// runRender builds the diagram, renders it and writes NAME.FORMAT to the
// working directory. Nothing is written if any step fails.
func runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	d, err := buildDiagram(opts)
	if err != nil {
		return err
	}
	logger.Infof("Built topology: %d nodes, %d edges, %d clusters", d.NodeCount(), d.EdgeCount(), len(d.Clusters()))
	if opts.topology.RunnerLink {
		logger.Debug("Runner link enabled")
	}

	logger.Infof("Rendering %s", strings.ToUpper(opts.format))
	data, err := nodelink.Render(ctx, d, opts.format, nodelink.Options{
		Detailed: opts.detailed,
		IconDir:  opts.iconDir,
		Scale:    opts.scale,
	})
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	path := d.Filename()
	if err := output.WriteFile(path, data); err != nil {
		return err
	}
	prog.done("Generated " + path)

	printSuccess("Rendered %s", StyleHighlight.Render(d.Name))
	printFile(path)
	printStats(d.NodeCount(), d.EdgeCount(), len(d.Clusters()))
	return nil
}
