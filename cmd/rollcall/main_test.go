package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/rollcall/internal/config"
)

func TestRunHelp(t *testing.T) {
	var stderr bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-h"}, &stderr))
	require.Contains(t, stderr.String(), "-fresh")
}

func TestRunBadFlag(t *testing.T) {
	var stderr bytes.Buffer
	require.Equal(t, exitConfig, run([]string{"-nope"}, &stderr))
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("ROLLCALL_CONFIG", path)

	var stderr bytes.Buffer
	require.Equal(t, exitConfig, run(nil, &stderr))
	require.Contains(t, stderr.String(), "config:")
}

func TestRunMissingSeed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("ROLLCALL_CONFIG", "")
	t.Setenv("ROLLCALL_SEED_PATH", filepath.Join(dir, "nope.toml"))

	var stderr bytes.Buffer
	require.Equal(t, exitConfig, run(nil, &stderr))
	require.Contains(t, stderr.String(), "seed:")
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rollcall.log")
	logger, closeLog, err := openLogger(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("hello", "n", 1)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=hello")

	_, _, err = openLogger(config.LogConfig{Path: path, Level: "loud"})
	require.Error(t, err)
}
