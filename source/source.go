// Package source provides the inputs a command is applied to.
package source

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// StdinName is the name used for the standard input stream.
const StdinName = "-"

// Source is one unit of input text.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string
	// Open acquires the source for reading. The caller closes it.
	Open() (io.ReadCloser, error)
}

type fileSource struct {
	fs   afero.Fs
	path string
}

// File returns a source backed by a file on fs.
func File(fs afero.Fs, path string) Source {
	return &fileSource{fs: fs, path: path}
}

// Files returns one source per path, in the same order.
func Files(fs afero.Fs, paths ...string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, File(fs, path))
	}
	return sources
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

type readerSource struct {
	name string
	r    io.Reader
}

// Reader returns a source backed by an already open stream, such as the
// standard input. Closing the source leaves the stream open.
func Reader(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

// Stdin wraps r as the standard input source.
func Stdin(r io.Reader) Source {
	return Reader(StdinName, r)
}

func (s *readerSource) Name() string {
	return s.name
}

func (s *readerSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

// ReadAll opens src, reads its whole content and releases it again. The
// source is closed even when reading fails. Errors are not prefixed with the
// source name; callers report it.
func ReadAll(src Source) (content string, err error) {
	rc, err := src.Open()
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = errors.WithStack(cerr)
		}
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(data), nil
}
