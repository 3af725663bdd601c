package nodelink

import (
	"io/fs"
	"os"

	"github.com/zeroent/labtopo/pkg/diagram"
	"github.com/zeroent/labtopo/pkg/errors"
)

// IconFS returns the file system icons are read from. An empty dir means the
// working directory.
func IconFS(dir string) fs.FS {
	if dir == "" {
		dir = "."
	}
	return os.DirFS(dir)
}

// LoadIcons reads every icon the diagram references from files. The returned
// map is keyed by [IconKey], matching what [ToDOT] writes into image
// attributes.
//
// Icons must be relative paths inside files. A missing or unreadable icon
// fails the whole load, so callers can abort before anything is rendered or
// written.
func LoadIcons(d *diagram.Diagram, files fs.FS) (map[string][]byte, error) {
	icons := make(map[string][]byte)
	for _, icon := range d.Icons() {
		key := IconKey(icon)
		if !fs.ValidPath(key) {
			return nil, errors.New(errors.ErrCodeInvalidPath, "icon %s must be a relative path inside the icon directory", icon)
		}
		data, err := fs.ReadFile(files, key)
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "icon %s not found", icon)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read icon %s", icon)
		}
		icons[key] = data
	}
	return icons, nil
}
