package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderToStdout(t *testing.T) {
	out, err := execute(t, "--angle", "0.3", "--only", "Ouster OS1,Hockey Puck")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 2, strings.Count(out, "<g transform="))
	assert.Contains(t, out, "Hockey Puck (165 g)")
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	_, err := execute(t, "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(data), "<g transform="))
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, err := execute(t, "--angle", "1.6")
	assert.Error(t, err)

	_, err = execute(t, "--only", "Nope")
	assert.Error(t, err)

	_, err = execute(t, "--degenerate-margin=-1")
	assert.ErrorContains(t, err, "degenerate margin")

	_, err = execute(t, "--seal-tolerance=-0.5")
	assert.ErrorContains(t, err, "seal tolerance")
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Ouster OS1\t5 segments\t80 mm wide", lines[1])
}
