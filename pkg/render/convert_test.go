package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/zeroent/labtopo/pkg/errors"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><rect width="10" height="10" fill="red"/></svg>`

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}

	png, err := ToPNG(context.Background(), []byte(testSVG), 2.0)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("ToPNG() output is not a PNG")
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}

	pdf, err := ToPDF(context.Background(), []byte(testSVG))
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("ToPDF() output is not a PDF")
	}
}

func TestToPNGMissingTool(t *testing.T) {
	if Available() {
		t.Skip("rsvg-convert installed")
	}

	_, err := ToPNG(context.Background(), []byte(testSVG), 1.0)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want code %s", err, errors.ErrCodeUnsupported)
	}
}

func TestToPNGInvalidSVG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}

	_, err := ToPNG(context.Background(), []byte("not svg"), 1.0)
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("ToPNG() error = %v, want code %s", err, errors.ErrCodeRenderFailed)
	}
}
