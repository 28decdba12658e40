package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Helper()
	prev := Logger
	t.Cleanup(func() { Logger = prev })
}

func TestHelpersWithoutInit(t *testing.T) {
	resetLogger(t)
	Logger = nil
	assert.NotPanics(t, func() {
		Debug("d")
		Info("i")
		Warn("w")
		Error("e", "k", 1)
	})
}

func TestInit_WritesWarningsToFile(t *testing.T) {
	resetLogger(t)
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := Init(Config{Dir: dir})
	require.NoError(t, err)
	require.NotNil(t, l)

	Info("hidden below warn level")
	Warn("disk nearly full", "free_mb", 12)

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "disk nearly full")
	assert.Contains(t, string(data), "free_mb=12")
	assert.NotContains(t, string(data), "hidden below warn level")
}

func TestInit_DebugMirrorsToStderr(t *testing.T) {
	resetLogger(t)
	var stderr bytes.Buffer

	_, err := Init(Config{Dir: t.TempDir(), Debug: true, Stderr: &stderr})
	require.NoError(t, err)

	Debug("placing chunk", "task", "t1")
	assert.Contains(t, stderr.String(), "placing chunk")
	assert.Contains(t, stderr.String(), "task=t1")
}
