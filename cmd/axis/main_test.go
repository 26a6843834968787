package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTicksCommand(t *testing.T) {
	out, _, err := execute(t, "ticks", "--data", "0,42,100", "--font-metrics=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Range=[0:110]")
	assert.Contains(t, out, "TickUnit=10")
	assert.Contains(t, out, "value")
	assert.NotContains(t, out, "overlap:")
}

func TestTicksCommandOverlap(t *testing.T) {
	out, _, err := execute(t, "ticks", "--data", "0,1e6", "--length", "60",
		"--policy", "shift-alt", "--font-metrics=false")
	require.NoError(t, err)
	assert.Contains(t, out, "overlap: policy=shift-alt")
}

func TestTicksCommandVerbose(t *testing.T) {
	_, stderr, err := execute(t, "ticks", "--data", "-1,100", "--log", "--verbose", "--font-metrics=false")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "axis: layout")
}

func TestTicksCommandConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "axis.yaml")
	require.NoError(t, os.WriteFile(config, []byte("side: left\nautoRanging: false\nlowerBound: 0\nupperBound: 50\n"), 0o644))

	out, _, err := execute(t, "ticks", "--config", config, "--font-metrics=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Range=[0:50]")
	assert.Contains(t, out, "Scale=-")

	require.NoError(t, os.WriteFile(config, []byte("colour: red\n"), 0o644))
	_, _, err = execute(t, "ticks", "--config", config)
	assert.Error(t, err)
}

func TestTicksCommandBadFlags(t *testing.T) {
	_, _, err := execute(t, "ticks", "--side", "diagonal")
	assert.Error(t, err)
	_, _, err = execute(t, "ticks", "--policy", "rotate")
	assert.Error(t, err)
	_, _, err = execute(t, "ticks", "--log", "--lower", "-1", "--upper", "10")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "axis.png")
	_, _, err := execute(t, "render", "--data", "1,1000", "--log", "--title", "Frequency", "--out", out)
	require.NoError(t, err)

	png, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestPlotCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plot.png")
	_, _, err := execute(t, "plot", "--x", "1,2,3", "--y", "2,4,3", "--yerr", "0.5,0.5,1", "--out", out)
	require.NoError(t, err)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	_, _, err = execute(t, "plot", "--x", "1,2", "--y", "2")
	assert.Error(t, err)
}

func TestPlotCommandNative(t *testing.T) {
	out := filepath.Join(t.TempDir(), "native.png")
	_, _, err := execute(t, "plot", "--native", "--x", "1,2,3", "--y", "2,4,3", "--yerr", "0.5,0.5,1", "--out", out)
	require.NoError(t, err)
	png, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, _, err = execute(t, "plot", "--native", "--x", "1", "--y", "1", "--width", "50", "--out", out)
	assert.Error(t, err)
}
