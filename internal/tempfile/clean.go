package tempfile

import (
	"errors"
	"fmt"
	"github.com/spf13/afero"
	"github.com/srevinsaju/templog/v1/internal/meta"
	"path/filepath"
	"strings"
)

// Clean removes temporary log files left behind by earlier runs. Regular
// files directly inside dir whose names carry prefix and suffix are removed,
// except keep. A file that cannot be removed does not stop the others; the
// removed paths are returned along with every removal error joined.
func Clean(fs afero.Fs, dir, prefix, suffix, keep string) ([]string, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if suffix == "" {
		suffix = meta.DefaultSuffix
	}
	if keep != "" {
		keep = filepath.Clean(keep)
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var removed []string
	var errs []error
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		name := entry.Name()
		if len(name) <= len(prefix)+len(suffix) {
			continue
		}
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}

		path := filepath.Join(dir, name)
		if path == keep {
			continue
		}
		if err := fs.Remove(path); err != nil {
			errs = append(errs, fmt.Errorf("removing %s: %w", path, err))
			continue
		}
		removed = append(removed, path)
	}
	return removed, errors.Join(errs...)
}

// Clean removes stale files created with the same prefix and suffix as d,
// keeping the file d currently hands out.
func (d *Definer) Clean() ([]string, error) {
	d.mu.Lock()
	prefix, suffix, keep := d.prefix, d.suffix, d.path
	d.mu.Unlock()
	return Clean(d.opts.Fs, d.opts.Dir, prefix, suffix, keep)
}
