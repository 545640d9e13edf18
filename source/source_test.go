package source

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type trackingSource struct {
	r      io.Reader
	closed bool
}

func (s *trackingSource) Name() string {
	return "tracking"
}

func (s *trackingSource) Open() (io.ReadCloser, error) {
	return s, nil
}

func (s *trackingSource) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *trackingSource) Close() error {
	s.closed = true
	return nil
}

func TestReadAllFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("alpha\nbeta\n"), 0644))

	src := File(fs, "a.txt")
	assert.Equal(t, "a.txt", src.Name())

	content, err := ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", content)
}

func TestReadAllMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := ReadAll(File(fs, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "open missing.txt: file does not exist", err.Error())
}

func TestFiles(t *testing.T) {
	fs := afero.NewMemMapFs()

	sources := Files(fs, "b", "a", "c")
	require.Len(t, sources, 3)

	names := []string{}
	for _, src := range sources {
		names = append(names, src.Name())
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestReadAllReader(t *testing.T) {
	src := Stdin(strings.NewReader("from stdin"))
	assert.Equal(t, StdinName, src.Name())

	content, err := ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", content)
}

func TestReadAllReaderFailure(t *testing.T) {
	_, err := ReadAll(Reader("pipe", failingReader{}))
	require.Error(t, err)
	assert.Equal(t, "broken pipe", err.Error())
}

func TestReadAllCloses(t *testing.T) {
	src := &trackingSource{r: strings.NewReader("x")}
	_, err := ReadAll(src)
	require.NoError(t, err)
	assert.True(t, src.closed)

	src = &trackingSource{r: failingReader{}}
	_, err = ReadAll(src)
	require.Error(t, err)
	assert.True(t, src.closed)
}
