package render

import (
	"slices"
	"strings"

	"github.com/zeroent/labtopo/pkg/errors"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// DefaultFormat is the format used when none is requested.
const DefaultFormat = FormatPNG

// Formats lists the supported output formats.
var Formats = []string{FormatPNG, FormatSVG, FormatPDF, FormatDOT, FormatJSON}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ValidateFormat returns an INVALID_FORMAT error for unsupported formats.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be one of %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// NeedsIcons reports whether the format embeds image assets.
// DOT and JSON only reference them by path.
func NeedsIcons(format string) bool {
	return slices.Contains([]string{FormatPNG, FormatSVG, FormatPDF}, format)
}
