package dump

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flvdump/pkg/av/flv"
)

func writeTempFlv(t *testing.T, data []byte) string {
	t.Helper()

	dir, err := ioutil.TempDir("", "flvdump")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "test.flv")
	require.NoError(t, ioutil.WriteFile(path, data, 0644))
	return path
}

func TestDumperRun(t *testing.T) {
	path := writeTempFlv(t, minimalFile())

	var buf bytes.Buffer
	d, err := New(
		WithInputPath(path),
		WithOutput(&buf),
	)
	require.NoError(t, err)

	require.NoError(t, d.Run())

	out := buf.String()
	assert.Contains(t, out, "File: "+path)
	assert.Contains(t, out, "FileSize: 30")
	assert.Contains(t, out, "TagIndex: 1")
	assert.Contains(t, out, "PreviousTagSize1: 13")
}

func TestDumperRunTruncatedFile(t *testing.T) {
	data := minimalFile()
	path := writeTempFlv(t, data[:len(data)-5])

	var buf bytes.Buffer
	d, err := New(
		WithInputPath(path),
		WithOutput(&buf),
	)
	require.NoError(t, err)

	// the partial report is still written, the terminal error still surfaces
	err = d.Run()
	assert.Equal(t, flv.ErrTruncatedBody, errors.Cause(err))
	assert.Contains(t, buf.String(), "PreviousTagSize0: 0")
}

func TestDumperRequiresInputPath(t *testing.T) {
	_, err := New()
	assert.Equal(t, errInputPath, errors.Cause(err))
}

func TestDumperPayloadPreviewOption(t *testing.T) {
	path := writeTempFlv(t, minimalFile())

	var buf bytes.Buffer
	d, err := New(
		WithInputPath(path),
		WithOutput(&buf),
		WithPayloadPreview(1),
	)
	require.NoError(t, err)

	require.NoError(t, d.Run())
	assert.Contains(t, buf.String(), "RawScriptData: aa ... (2 bytes total)")
}

func TestDumperMissingFile(t *testing.T) {
	d, err := New(
		WithInputPath("does-not-exist.flv"),
		WithOutput(&bytes.Buffer{}),
	)
	require.NoError(t, err)

	assert.Error(t, d.Run())
}
