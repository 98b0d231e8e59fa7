package tempfile

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"io"
	"os"
)

// Options are fixed at construction time. Prefix and Suffix only seed the
// initial values, the setters on Definer may still change them before the
// first access.
type Options struct {
	// Fs is the filesystem the file is created on, the OS filesystem by default
	Fs afero.Fs

	// Dir is the directory the file is created in, the platform temp
	// directory by default. A leading ~ is expanded to the home directory.
	Dir string

	Prefix string
	Suffix string

	// Diagnostics receives the raw messages printed before any logger exists
	Diagnostics io.Writer
}

type Option func(*Options)

func WithFs(fs afero.Fs) Option {
	return func(o *Options) {
		o.Fs = fs
	}
}

func WithDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}

func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

func WithSuffix(suffix string) Option {
	return func(o *Options) {
		o.Suffix = suffix
	}
}

func WithDiagnostics(w io.Writer) Option {
	return func(o *Options) {
		o.Diagnostics = w
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Dir == "" {
		o.Dir = os.TempDir()
	}
	if o.Diagnostics == nil {
		o.Diagnostics = os.Stderr
	}
	dir, err := homedir.Expand(o.Dir)
	if err != nil {
		return o, fmt.Errorf("expanding %s: %w", o.Dir, err)
	}
	o.Dir = dir
	return o, nil
}
