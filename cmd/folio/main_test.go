package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", effectiveVersion("v1.2.3"))
	assert.NotEmpty(t, effectiveVersion(""), "fallback must never be empty")
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	opts, err := parseFlags([]string{"--config", "c.yaml", "--debug", "--log", "-", "--view", "list", "--print"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, options{configPath: "c.yaml", debug: true, logPath: "-", view: "list", print: true}, opts)

	_, err = parseFlags([]string{"--bogus"}, &stderr)
	assert.Error(t, err)
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "folio "))
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunPrint(t *testing.T) {
	cfgPath := writeConfig(t, "config.yaml", `
portfolio:
  title: Printed Portfolio
  projects:
    - id: 1
      name: Only Project
      active: true
log:
  file: ""
`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfgPath, "--print", "--view", "list"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := ansi.Strip(stdout.String())
	assert.Contains(t, out, "Printed Portfolio")
	assert.Contains(t, out, "Only Project")
	assert.Contains(t, out, "1 of 1 projects currently active")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), fallbackHeight)
}

func TestRunRejectsUnknownView(t *testing.T) {
	cfgPath := writeConfig(t, "config.json", `{"log": {"file": ""}}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfgPath, "--view", "carousel"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "ui.defaultView")
}

func TestRunBadConfig(t *testing.T) {
	cfgPath := writeConfig(t, "config.json", `{not json`)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--config", cfgPath}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Failed to load config")
}

func TestOpenLogFile(t *testing.T) {
	var stderr bytes.Buffer

	w, closeFn, err := openLogFile("-", &stderr)
	require.NoError(t, err)
	assert.Same(t, &stderr, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "nested", "folio.log")
	w, closeFn, err = openLogFile(path, &stderr)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
