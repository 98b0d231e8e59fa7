package tempfile

import (
	"github.com/spf13/afero"
	"github.com/srevinsaju/templog/v1/internal/meta"
	"path/filepath"
	"strings"
	"sync"
)

var (
	instanceMutex = sync.Mutex{}
	instance      *Definer
)

// Definer hands out the path of a temporary log file. The file is created on
// the first call to Path or PropertyValue and the same path is returned for
// the lifetime of the Definer. A failed creation is remembered and never
// retried.
//
// Only one Definer may be registered per process, the logging bootstrap looks
// it up through Instance.
type Definer struct {
	mu   sync.Mutex
	opts Options
	diag *diagnostics

	prefix string
	suffix string

	path   string
	failed bool
	err    error
}

// New registers a Definer for the process. It returns ErrAlreadyInstantiated
// if one is already registered.
func New(opts ...Option) (*Definer, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	instanceMutex.Lock()
	defer instanceMutex.Unlock()
	if instance != nil {
		return nil, ErrAlreadyInstantiated
	}
	d := &Definer{
		opts:   o,
		diag:   newDiagnostics(o.Diagnostics),
		prefix: o.Prefix,
		suffix: o.Suffix,
	}
	instance = d
	return d, nil
}

// MustNew is New for bootstrap code that cannot continue with a
// misconfigured logging setup.
func MustNew(opts ...Option) *Definer {
	d, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Instance returns the registered Definer, or nil if none was constructed.
func Instance() *Definer {
	instanceMutex.Lock()
	defer instanceMutex.Unlock()
	return instance
}

// Release unregisters d so that logging can be bootstrapped again. The
// temporary file stays on disk.
func (d *Definer) Release() {
	instanceMutex.Lock()
	defer instanceMutex.Unlock()
	if instance == d {
		instance = nil
	}
}

func (d *Definer) Prefix() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.prefix
}

// SetPrefix has no effect once the file was created.
func (d *Definer) SetPrefix(prefix string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prefix = prefix
}

func (d *Definer) Suffix() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suffix
}

// SetSuffix has no effect once the file was created. An empty suffix
// means ".tmp".
func (d *Definer) SetSuffix(suffix string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.suffix = suffix
}

// Path returns the absolute path of the temporary log file, creating it on
// the first call.
func (d *Definer) Path() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path != "" {
		return d.path, nil
	}
	if d.failed {
		return "", d.err
	}

	path, err := d.create()
	if err != nil {
		d.failed = true
		d.err = err
		d.diag.failure(err)
		return "", err
	}
	d.path = path
	d.diag.using(path)
	return path, nil
}

// PropertyValue returns the path as a property value; ok is false when the
// file could not be created.
func (d *Definer) PropertyValue() (value string, ok bool) {
	path, err := d.Path()
	if err != nil {
		return "", false
	}
	return path, true
}

// CachedPropertyValue returns the path only if the file was already
// created; it never creates it.
func (d *Definer) CachedPropertyValue() (value string, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.path, d.path != ""
}

func (d *Definer) create() (string, error) {
	suffix := d.suffix
	if suffix == "" {
		suffix = meta.DefaultSuffix
	}
	pattern := d.prefix + "*" + suffix

	// the random part replaces the last '*', so only the suffix must not carry one
	if strings.ContainsAny(d.prefix+suffix, "/"+string(filepath.Separator)) || strings.Contains(suffix, "*") {
		return "", &CreationError{Dir: d.opts.Dir, Pattern: pattern, Err: ErrInvalidPattern}
	}

	f, err := afero.TempFile(d.opts.Fs, d.opts.Dir, pattern)
	if err != nil {
		return "", &CreationError{Dir: d.opts.Dir, Pattern: pattern, Err: err}
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", &CreationError{Dir: d.opts.Dir, Pattern: pattern, Err: err}
	}

	path, err := filepath.Abs(name)
	if err != nil {
		return "", &CreationError{Dir: d.opts.Dir, Pattern: pattern, Err: err}
	}
	return path, nil
}
