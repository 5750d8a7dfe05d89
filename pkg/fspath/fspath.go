package fspath

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/vidtools/toolkit/pkg/core"
)

// discardLogger swallows operation tracing unless a logger is injected.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Path is a filesystem location bound to the filesystem it lives on.
// The zero value is not useful; construct through New or NewOn.
type Path struct {
	fs  afero.Fs
	p   string
	log logrus.FieldLogger
}

// Option configures a Path at construction.
type Option func(*Path)

// WithFs binds the path to a specific filesystem. Defaults to the OS
// filesystem.
func WithFs(fs afero.Fs) Option {
	return func(p *Path) {
		p.fs = fs
	}
}

// WithLogger injects a logger receiving operation tracing for mutating
// helpers (MoveDir, Backup, RmDirs). Defaults to a discarding logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Path) {
		p.log = log
	}
}

// New constructs a Path on the OS filesystem, configurable through
// options. The path is cleaned; use Join for multi-element construction.
func New(path string, opts ...Option) Path {
	return NewOn(nil, path).With(opts...)
}

// NewOn constructs a Path on the given filesystem. A nil fs means the OS
// filesystem.
func NewOn(fs afero.Fs, elem ...string) Path {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return Path{fs: fs, p: filepath.Clean(filepath.Join(elem...)), log: discardLogger}
}

// With applies options to a copy of the path.
func (p Path) With(opts ...Option) Path {
	for _, opt := range opts {
		opt(&p)
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.log == nil {
		p.log = discardLogger
	}
	return p
}

// derive keeps the filesystem and logger while swapping the location.
func (p Path) derive(raw string) Path {
	p.p = filepath.Clean(raw)
	return p
}

// String implements core.Stringable.
func (p Path) String() string {
	return p.p
}

// Fs returns the filesystem the path is bound to.
func (p Path) Fs() afero.Fs {
	return p.fs
}

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	return p.derive(filepath.Join(append([]string{p.p}, elem...)...))
}

// Dir returns the parent directory.
func (p Path) Dir() Path {
	return p.derive(filepath.Dir(p.p))
}

// Base returns the final path element.
func (p Path) Base() string {
	return filepath.Base(p.p)
}

// Ext returns the final element's extension, including the dot.
func (p Path) Ext() string {
	return filepath.Ext(p.p)
}

// Stem returns the final element without its extension.
func (p Path) Stem() string {
	base := p.Base()
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WithStem replaces the final element's stem, keeping the extension.
func (p Path) WithStem(stem string) Path {
	return p.derive(filepath.Join(filepath.Dir(p.p), stem+p.Ext()))
}

// WithSuffix replaces the final element's extension. ext must include the
// dot, or be empty to strip the extension.
func (p Path) WithSuffix(ext string) Path {
	return p.derive(filepath.Join(filepath.Dir(p.p), p.Stem()+ext))
}

// AppendToStem appends suffixes to the final element's stem, joined by sep.
func (p Path) AppendToStem(sep string, suffixes ...string) Path {
	parts := append([]string{p.Stem()}, suffixes...)
	return p.WithStem(strings.Join(parts, sep))
}

// Format substitutes {name} placeholders in the path from args.
func (p Path) Format(args map[string]any) Path {
	raw := p.p
	for key, value := range args {
		raw = strings.ReplaceAll(raw, "{"+key+"}", fmt.Sprintf("%v", value))
	}
	return p.derive(raw)
}

// Equal reports whether two paths name the same cleaned location,
// regardless of filesystem binding.
func (p Path) Equal(other Path) bool {
	return p.p == other.p
}

// mapErr converts a filesystem error into the toolkit taxonomy, keyed by
// which file-related kind applies.
func (p Path) mapErr(op string, err error) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*core.FuncError); ok {
		return fe
	}

	switch {
	case isNotExist(err):
		if parentOK, _ := afero.DirExists(p.fs, filepath.Dir(p.p)); parentOK {
			return core.NewError(core.KindFileWasNotFound, op, "could not find the file '{file}'").
				WithDetail("file", p.p).WithReason(err)
		}
		return core.NewError(core.KindFileNotExists, op, "the file '{file}' does not exist").
			WithDetail("file", p.p).WithReason(err)

	case isPermission(err):
		return core.NewError(core.KindPermission, op, "insufficient permissions to access the file '{file}'").
			WithDetail("file", p.p).WithReason(err)

	case isDirErr(err):
		return core.NewError(core.KindFileIsADirectory, op, "the given path, '{file}', points to a directory").
			WithDetail("file", p.p).WithReason(err)
	}

	return core.NewRuntimeError(op, "filesystem operation on '{file}' failed").
		WithDetail("file", p.p).WithReason(err)
}
