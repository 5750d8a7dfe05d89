package fspath

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/vidtools/toolkit/pkg/core"
)

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err)
}

func isPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission) || os.IsPermission(err)
}

func isDirErr(err error) bool {
	return strings.Contains(err.Error(), "is a directory")
}

// Exists reports whether the path exists at all.
func (p Path) Exists() (bool, error) {
	ok, err := afero.Exists(p.fs, p.p)
	return ok, p.mapErr("Path.Exists", err)
}

// IsDir reports whether the path exists and is a directory.
func (p Path) IsDir() (bool, error) {
	ok, err := afero.DirExists(p.fs, p.p)
	return ok, p.mapErr("Path.IsDir", err)
}

// Stat returns the file info for the path.
func (p Path) Stat() (os.FileInfo, error) {
	info, err := p.fs.Stat(p.p)
	return info, p.mapErr("Path.Stat", err)
}

// RequireFile fails unless the path exists and is a regular file.
func (p Path) RequireFile() error {
	info, err := p.Stat()
	if err != nil {
		return err
	}

	if info.IsDir() {
		return core.NewError(core.KindFileIsADirectory, "Path.RequireFile",
			"the given path, '{file}', points to a directory").WithDetail("file", p.p)
	}

	return nil
}

// RequireDir fails unless the path exists and is a directory.
func (p Path) RequireDir() error {
	info, err := p.Stat()
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return core.NewError(core.KindFileTypeMismatch, "Path.RequireDir",
			"the file type of '{file}' does not match the expected file type").
			WithDetail("file", p.p)
	}

	return nil
}

// GetFolder returns the path itself when it is an existing directory, and
// the parent directory otherwise.
func (p Path) GetFolder() Path {
	if ok, _ := afero.DirExists(p.fs, p.p); ok {
		return p
	}
	return p.Dir()
}

// MkdirP creates the path's folder with its parents.
func (p Path) MkdirP(perm os.FileMode) error {
	folder := p.GetFolder()
	return p.mapErr("Path.MkdirP", p.fs.MkdirAll(folder.p, perm))
}

// RmDirs removes the path's folder with its contents. A missing folder is
// an error unless missingOK is set.
func (p Path) RmDirs(missingOK bool) error {
	folder := p.GetFolder()

	exists, err := afero.Exists(p.fs, folder.p)
	if err != nil {
		return folder.mapErr("Path.RmDirs", err)
	}
	if !exists {
		if missingOK {
			return nil
		}
		return folder.mapErr("Path.RmDirs", fs.ErrNotExist)
	}

	p.log.WithField("path", folder.p).Debug("removing directory tree")

	return folder.mapErr("Path.RmDirs", p.fs.RemoveAll(folder.p))
}

// ReadText reads the whole file as a string.
func (p Path) ReadText() (string, error) {
	data, err := afero.ReadFile(p.fs, p.p)
	if err != nil {
		return "", p.mapErr("Path.ReadText", err)
	}
	return string(data), nil
}

// WriteText writes the string, creating parent directories as needed.
func (p Path) WriteText(text string) error {
	if err := p.fs.MkdirAll(filepath.Dir(p.p), 0o755); err != nil {
		return p.mapErr("Path.WriteText", err)
	}
	return p.mapErr("Path.WriteText", afero.WriteFile(p.fs, p.p, []byte(text), 0o644))
}

// ReadLines reads the file and returns its lines without line endings.
func (p Path) ReadLines() ([]string, error) {
	text, err := p.ReadText()
	if err != nil {
		return nil, err
	}

	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return []string{}, nil
	}

	return strings.Split(text, "\n"), nil
}

// WriteLines writes the lines joined by newlines.
func (p Path) WriteLines(lines []string) error {
	return p.WriteText(strings.Join(lines, "\n"))
}

// Touch creates an empty file, or updates timestamps when it exists.
func (p Path) Touch() error {
	if exists, _ := afero.Exists(p.fs, p.p); exists {
		now := time.Now()
		return p.mapErr("Path.Touch", p.fs.Chtimes(p.p, now, now))
	}

	f, err := p.fs.Create(p.p)
	if err != nil {
		return p.mapErr("Path.Touch", err)
	}
	return p.mapErr("Path.Touch", f.Close())
}

// Size returns the file's size in bytes; directories sum their contents
// recursively.
func (p Path) Size() (int64, error) {
	info, err := p.Stat()
	if err != nil {
		return 0, err
	}

	if !info.IsDir() {
		return info.Size(), nil
	}

	var total int64
	err = afero.Walk(p.fs, p.p, func(_ string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			total += fi.Size()
		}
		return nil
	})

	return total, p.mapErr("Path.Size", err)
}

// Glob expands a pattern relative to the path.
func (p Path) Glob(pattern string) ([]Path, error) {
	matches, err := afero.Glob(p.fs, filepath.Join(p.p, pattern))
	if err != nil {
		return nil, p.mapErr("Path.Glob", err)
	}

	out := make([]Path, len(matches))
	for i, m := range matches {
		out[i] = p.derive(m)
	}

	return out, nil
}

// MoveDir moves the directory's entries into dst (created as needed) and
// removes the now-empty source. Entries already present in dst win; the
// source copy is dropped. Both paths must live on the same filesystem.
func (p Path) MoveDir(dst Path, perm os.FileMode) error {
	if err := p.fs.MkdirAll(dst.p, perm); err != nil {
		return dst.mapErr("Path.MoveDir", err)
	}

	entries, err := afero.ReadDir(p.fs, p.p)
	if err != nil {
		return p.mapErr("Path.MoveDir", err)
	}

	for _, entry := range entries {
		src := p.Join(entry.Name())
		target := dst.Join(entry.Name())

		p.log.WithFields(map[string]any{
			"from": src.p,
			"to":   target.p,
		}).Debug("moving entry")

		if exists, _ := afero.Exists(p.fs, target.p); exists {
			if err := p.fs.RemoveAll(src.p); err != nil {
				return src.mapErr("Path.MoveDir", err)
			}
			continue
		}

		if err := p.fs.Rename(src.p, target.p); err != nil {
			return src.mapErr("Path.MoveDir", err)
		}
	}

	return p.mapErr("Path.MoveDir", p.fs.Remove(p.p))
}

// Backup copies the file alongside itself under a uuid-suffixed stem and
// returns the copy's path.
func (p Path) Backup() (Path, error) {
	return p.BackupTo(p.Dir())
}

// BackupTo copies the file into dir under a uuid-suffixed stem and returns
// the copy's path.
func (p Path) BackupTo(dir Path) (Path, error) {
	if err := p.RequireFile(); err != nil {
		return Path{}, err
	}

	suffix := strings.Split(uuid.NewString(), "-")[0]
	dst := dir.Join(p.Base()).AppendToStem("_", suffix)

	p.log.WithFields(map[string]any{
		"from": p.p,
		"to":   dst.p,
	}).Debug("backing up file")

	if err := p.fs.MkdirAll(dir.p, 0o755); err != nil {
		return Path{}, dir.mapErr("Path.BackupTo", err)
	}

	if err := p.copyFile(dst); err != nil {
		return Path{}, err
	}

	return dst, nil
}

// copyFile copies the file's contents to dst on the same filesystem.
func (p Path) copyFile(dst Path) error {
	src, err := p.fs.Open(p.p)
	if err != nil {
		return p.mapErr("Path.Backup", err)
	}
	defer src.Close()

	out, err := p.fs.Create(dst.p)
	if err != nil {
		return dst.mapErr("Path.Backup", err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return dst.mapErr("Path.Backup", err)
	}

	return dst.mapErr("Path.Backup", out.Close())
}
