/*
Package fspath provides Path, a convenience wrapper around a filesystem
location: pure path algebra (stem/suffix manipulation, joining, template
formatting) plus thin synchronous I/O helpers (globbing, line read/write,
recursive size, directory moves, backups).

Paths carry their filesystem (any afero.Fs), so the same code runs
against the OS filesystem in production and an in-memory one in tests:

	p := fspath.New("out/render.mkv", fspath.WithFs(afero.NewMemMapFs()))
	if err := p.MkdirP(0o755); err != nil {
		...
	}

I/O failures are reported through the toolkit error taxonomy: missing
files map to FileWasNotFound when the parent directory exists and
FileNotExists otherwise, permission failures to Permission, and file/
directory confusion to FileIsADirectory or FileTypeMismatch.

All operations are synchronous blocking calls with no cancellation or
timeout semantics; retries are the caller's responsibility.
*/
package fspath
