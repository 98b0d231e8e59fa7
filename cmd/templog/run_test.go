package main

import (
	"bytes"
	"github.com/srevinsaju/templog/v1/internal/tempfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestApp(t *testing.T) (*cli.App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	app := initCli()
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = diag
	t.Cleanup(func() {
		if d := tempfile.Instance(); d != nil {
			d.Release()
		}
	})
	return app, out, diag
}

func TestCliPath(t *testing.T) {
	dir := t.TempDir()
	app, out, diag := newTestApp(t)

	require.NoError(t, app.Run([]string{"templog", "--dir", dir, "--prefix", "launcher-", "path"}))

	path := strings.TrimSpace(out.String())
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "launcher-"))
	assert.True(t, strings.HasSuffix(path, ".log"))
	assert.FileExists(t, path)
	assert.Contains(t, diag.String(), "Using log file "+path)

	value, ok := tempfile.Instance().PropertyValue()
	assert.True(t, ok)
	assert.Equal(t, path, value)
}

func TestCliPath_DefaultSuffix(t *testing.T) {
	dir := t.TempDir()
	app, out, _ := newTestApp(t)

	require.NoError(t, app.Run([]string{"templog", "--dir", dir, "--suffix", "", "path"}))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), ".tmp"))
}

func TestCliPath_Failure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	app, out, diag := newTestApp(t)

	err := app.Run([]string{"templog", "--dir", dir, "path"})
	assert.ErrorIs(t, err, errNoLogFile)
	assert.Empty(t, out.String())
	assert.Contains(t, diag.String(), "templog:")
}

func TestCliContextRunner(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "templog-old.log")
	require.NoError(t, os.WriteFile(stale, nil, 0600))

	app, out, _ := newTestApp(t)
	require.NoError(t, app.Run([]string{"templog", "--dir", dir, "--clean-stale"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	path := lines[len(lines)-1]
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, out.String(), "logging initialized")
	assert.Contains(t, out.String(), "removed 1 stale log files")
	assert.NoFileExists(t, stale)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"logging initialized"`)
}

func TestCliContextRunner_FileLoggingDisabled(t *testing.T) {
	dir := t.TempDir()
	app, out, _ := newTestApp(t)

	require.NoError(t, app.Run([]string{"templog", "--dir", dir, "--logging.local.file=false"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	path := lines[len(lines)-1]
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCliClean(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"templog-a.log", "templog-b.log", "keep.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}
	app, out, _ := newTestApp(t)

	require.NoError(t, app.Run([]string{"templog", "--dir", dir, "clean"}))
	assert.Equal(t, 2, strings.Count(out.String(), "removing"))
	assert.FileExists(t, filepath.Join(dir, "keep.log"))
	assert.NoFileExists(t, filepath.Join(dir, "templog-a.log"))
	assert.Nil(t, tempfile.Instance())
}

func TestCliContextRunner_ChildDebug(t *testing.T) {
	dir := t.TempDir()
	app, out, _ := newTestApp(t)

	require.NoError(t, app.Run([]string{"templog", "--dir", dir, "--child", "--debug"}))
	assert.NotContains(t, out.String(), "time=")
	assert.Contains(t, out.String(), "logging to "+dir)
}
