package nodelink

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
)

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestEmbedIcons(t *testing.T) {
	svg := `<g><image xlink:href="ca.png" width="10"/><image href="ca.png"/><image xlink:href="other.png"/></g>`
	icons := map[string][]byte{"ca.png": testPNG(t)}

	got := string(EmbedIcons([]byte(svg), icons))

	if strings.Contains(got, `"ca.png"`) {
		t.Errorf("EmbedIcons() left a file reference: %s", got)
	}
	if strings.Count(got, "data:image/png;base64,") != 2 {
		t.Errorf("EmbedIcons() should embed both references: %s", got)
	}
	if !strings.Contains(got, `xlink:href="other.png"`) {
		t.Error("EmbedIcons() should leave unknown references alone")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), `digraph G { a -> b [dir=both]; }`, nil)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_Image(t *testing.T) {
	files := fstest.MapFS{"ca.png": {Data: testPNG(t)}}
	dot := `digraph G { ca [label="CA", shape=none, image="ca.png", labelloc=b]; }`

	svg, err := RenderSVG(context.Background(), dot, files)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<image") {
		t.Fatalf("RenderSVG() output missing <image> for the icon node:\n%s", svg)
	}

	embedded := string(EmbedIcons(svg, map[string][]byte{"ca.png": testPNG(t)}))
	if !strings.Contains(embedded, "data:image/png;base64,") {
		t.Errorf("EmbedIcons() did not inline the Graphviz image reference:\n%s", embedded)
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`, nil)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
