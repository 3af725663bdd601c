package nodelink

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zeroent/labtopo/pkg/diagram"
	"github.com/zeroent/labtopo/pkg/errors"
	"github.com/zeroent/labtopo/pkg/observability"
	"github.com/zeroent/labtopo/pkg/render"
	"github.com/zeroent/labtopo/pkg/topology"
)

// testPNG returns a tiny valid PNG image.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

// iconDir creates a directory holding the SmallStep icon.
func iconDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "smallstep-icon.png"), testPNG(t), 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}
	return dir
}

func TestLoadIcons(t *testing.T) {
	d := labDiagram(t, topology.DefaultOptions())
	dir := iconDir(t)

	icons, err := LoadIcons(d, IconFS(dir))
	if err != nil {
		t.Fatalf("LoadIcons() error: %v", err)
	}
	if !bytes.Equal(icons["smallstep-icon.png"], testPNG(t)) {
		t.Errorf("LoadIcons() returned %d icons, want smallstep-icon.png with file contents", len(icons))
	}
}

func TestLoadIcons_InvalidPath(t *testing.T) {
	for _, icon := range []string{"/srv/icons/ca.png", "../ca.png"} {
		d := diagram.New("t", "svg", diagram.Style{FontSize: 10})
		if err := d.AddNode(diagram.Node{ID: "ca", Category: diagram.CategoryCustom, Icon: icon}); err != nil {
			t.Fatalf("AddNode() error: %v", err)
		}

		_, err := LoadIcons(d, IconFS(t.TempDir()))
		if !errors.Is(err, errors.ErrCodeInvalidPath) {
			t.Errorf("LoadIcons(%s) error = %v, want code %s", icon, err, errors.ErrCodeInvalidPath)
		}
	}
}

func TestLoadIcons_Missing(t *testing.T) {
	d := labDiagram(t, topology.DefaultOptions())

	_, err := LoadIcons(d, IconFS(t.TempDir()))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadIcons() error = %v, want code %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestRender_DOT(t *testing.T) {
	d := labDiagram(t, topology.DefaultOptions())

	// DOT output never reads icons, so a missing icon dir is fine.
	out, err := Render(context.Background(), d, render.FormatDOT, Options{IconDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Render(dot) error: %v", err)
	}
	if !strings.HasPrefix(string(out), `digraph "topology"`) {
		t.Errorf("Render(dot) = %q, want DOT source", out[:min(len(out), 40)])
	}
}

func TestRender_JSON(t *testing.T) {
	d := labDiagram(t, topology.DefaultOptions())

	out, err := Render(context.Background(), d, render.FormatJSON, Options{})
	if err != nil {
		t.Fatalf("Render(json) error: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal(out, &v); err != nil {
		t.Fatalf("Render(json) produced invalid JSON: %v", err)
	}
	if v["name"] != "topology" {
		t.Errorf("json name = %v, want topology", v["name"])
	}
}

func TestRender_InvalidFormat(t *testing.T) {
	d := labDiagram(t, topology.DefaultOptions())

	_, err := Render(context.Background(), d, "gif", Options{})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(gif) error = %v, want code %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestRender_MissingIcon(t *testing.T) {
	d := labDiagram(t, topology.DefaultOptions())

	for _, format := range []string{render.FormatSVG, render.FormatPNG, render.FormatPDF} {
		_, err := Render(context.Background(), d, format, Options{IconDir: t.TempDir()})
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("Render(%s) error = %v, want code %s", format, err, errors.ErrCodeFileNotFound)
		}
	}
}

func TestRender_SVG(t *testing.T) {
	d := labDiagram(t, topology.DefaultOptions())

	out, err := Render(context.Background(), d, render.FormatSVG, Options{IconDir: iconDir(t)})
	if err != nil {
		t.Fatalf("Render(svg) error: %v", err)
	}
	svg := string(out)
	for _, want := range []string{"<svg", "Traefik Ingress", "SmallStep CA", "ACME", "<image", "data:image/png;base64,"} {
		if !strings.Contains(svg, want) {
			t.Errorf("Render(svg) missing %q", want)
		}
	}
	if strings.Contains(svg, `href="smallstep-icon.png"`) {
		t.Error("Render(svg) left the icon as a file reference")
	}
}

func TestRender_PNG(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}
	d := labDiagram(t, topology.DefaultOptions())

	out, err := Render(context.Background(), d, render.FormatPNG, Options{IconDir: iconDir(t)})
	if err != nil {
		t.Fatalf("Render(png) error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("Render(png) output is not a PNG")
	}
}

type recordingHooks struct {
	observability.NoopRenderHooks
	events []string
	size   int
	err    error
}

func (h *recordingHooks) OnRenderStart(_ context.Context, format string, _ int) {
	h.events = append(h.events, "start:"+format)
}

func (h *recordingHooks) OnStageComplete(_ context.Context, stage string, _ time.Duration, _ error) {
	h.events = append(h.events, stage)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, format string, size int, _ time.Duration, err error) {
	h.events = append(h.events, "done:"+format)
	h.size, h.err = size, err
}

func TestRender_Hooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	d := labDiagram(t, topology.DefaultOptions())

	t.Run("dot", func(t *testing.T) {
		hooks := &recordingHooks{}
		observability.SetRenderHooks(hooks)

		data, err := Render(context.Background(), d, render.FormatDOT, Options{})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if got := strings.Join(hooks.events, ","); got != "start:dot,done:dot" {
			t.Errorf("events = %s, want start:dot,done:dot", got)
		}
		if hooks.size != len(data) {
			t.Errorf("reported size = %d, want %d", hooks.size, len(data))
		}
	})

	t.Run("missing icon", func(t *testing.T) {
		hooks := &recordingHooks{}
		observability.SetRenderHooks(hooks)

		_, err := Render(context.Background(), d, render.FormatSVG, Options{IconDir: t.TempDir()})
		if err == nil {
			t.Fatal("Render() expected error")
		}
		if got := strings.Join(hooks.events, ","); got != "start:svg,icons,done:svg" {
			t.Errorf("events = %s, want start:svg,icons,done:svg", got)
		}
		if hooks.err == nil {
			t.Error("OnRenderComplete should receive the error")
		}
	})
}
