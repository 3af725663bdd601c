package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputName validates the base name of the output file.
// It must be a simple file name in the working directory: the diagram is
// always written next to where the tool runs.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 255 characters
//   - No control characters or null bytes
//   - No path separators
//   - No hidden files (leading dot)
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "output name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "output name cannot contain path separators")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "output name cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a relative asset path (such as an icon directory).
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
