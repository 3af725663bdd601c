package nodelink

import (
	"bytes"
	"context"
	"time"

	"github.com/zeroent/labtopo/pkg/diagram"
	"github.com/zeroent/labtopo/pkg/errors"
	"github.com/zeroent/labtopo/pkg/io"
	"github.com/zeroent/labtopo/pkg/observability"
	"github.com/zeroent/labtopo/pkg/render"
)

// Render produces the diagram in the requested format.
//
// For raster and vector formats every icon is loaded from opts.IconDir first;
// a missing icon fails before Graphviz runs. Graphviz reads the icons from
// the same directory to size the image nodes, and the resulting SVG carries
// them inline. DOT and JSON are emitted without touching the icon files.
func Render(ctx context.Context, d *diagram.Diagram, format string, opts Options) (data []byte, err error) {
	if err := render.ValidateFormat(format); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid diagram")
	}

	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, format, d.NodeCount())
	defer func() {
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	}()

	if !render.NeedsIcons(format) {
		return encode(d, format, opts)
	}

	files := IconFS(opts.IconDir)
	var icons map[string][]byte
	if err := stage(ctx, hooks, observability.StageIcons, func() (err error) {
		icons, err = LoadIcons(d, files)
		return err
	}); err != nil {
		return nil, err
	}

	var svg []byte
	if err := stage(ctx, hooks, observability.StageLayout, func() (err error) {
		svg, err = RenderSVG(ctx, ToDOT(d, opts), files)
		return err
	}); err != nil {
		return nil, err
	}
	svg = EmbedIcons(svg, icons)

	if format == render.FormatSVG {
		return svg, nil
	}

	err = stage(ctx, hooks, observability.StageConvert, func() (err error) {
		if format == render.FormatPDF {
			data, err = render.ToPDF(ctx, svg)
		} else {
			data, err = render.ToPNG(ctx, svg, opts.Scale)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// encode handles the text formats, which need neither icons nor Graphviz.
func encode(d *diagram.Diagram, format string, opts Options) ([]byte, error) {
	if format == render.FormatJSON {
		var buf bytes.Buffer
		if err := io.WriteJSON(d, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode diagram")
		}
		return buf.Bytes(), nil
	}
	return []byte(ToDOT(d, opts)), nil
}

func stage(ctx context.Context, hooks observability.RenderHooks, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	hooks.OnStageComplete(ctx, name, time.Since(start), err)
	return err
}
