package nodelink

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"io/fs"
	"net/http"
	"regexp"
	"strconv"
	"sync"

	"github.com/goccy/go-graphviz"

	"github.com/zeroent/labtopo/pkg/errors"
)

// gvFSMu serializes renders, since the Graphviz file system is process-wide.
var gvFSMu sync.Mutex

// RenderSVG lays out DOT source with Graphviz and returns SVG bytes.
//
// Image attributes in the DOT are resolved inside files, which must contain
// every referenced icon under its [IconKey]. A nil files leaves Graphviz on
// its default lookup.
func RenderSVG(ctx context.Context, dot string, files fs.FS) ([]byte, error) {
	gvFSMu.Lock()
	defer gvFSMu.Unlock()
	graphviz.SetFileSystem(files)
	defer graphviz.SetFileSystem(nil)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the viewBox starts at the
// origin and width/height are in pixels, which rsvg-convert expects.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// EmbedIcons replaces image references in svg with data: URIs built from
// icons, keyed by [IconKey] as written in the DOT source. The result no longer
// depends on files next to it, so it can be rasterised from stdin.
func EmbedIcons(svg []byte, icons map[string][]byte) []byte {
	for path, data := range icons {
		uri := "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
		ref := html.EscapeString(path)
		for _, attr := range []string{"xlink:href", "href"} {
			old := []byte(attr + `="` + ref + `"`)
			svg = bytes.ReplaceAll(svg, old, []byte(attr+`="`+uri+`"`))
		}
	}
	return svg
}
