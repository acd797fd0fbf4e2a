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

func writeNetwork(t *testing.T, dir, name string) {
	t.Helper()
	data := strings.Join([]string{
		"4",
		"0 0 0",
		"1 2 0",
		"2 2 2",
		"3 0 2",
		"4",
		"0 0 1 150.0",
		"1 1 2 150.0",
		"2 2 3 150.0",
		"3 3 0 150.0",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
}

func TestRunReebtide_Counting(t *testing.T) {
	dir := t.TempDir()
	writeNetwork(t, dir, "000.txt")
	writeNetwork(t, dir, "001.txt")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--input-dir", dir, "--algorithm", "counting"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "islands")
	assert.Contains(t, out.String(), "0,\t1")
}

func TestRunReebtide_MissingInputDir(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--algorithm", "counting"})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestRunReebtide_UnknownAlgorithm(t *testing.T) {
	dir := t.TempDir()
	writeNetwork(t, dir, "000.txt")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--input-dir", dir, "--algorithm", "bogus"})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestRunReebtide_Centroid_RendersSVG(t *testing.T) {
	dir := t.TempDir()
	writeNetwork(t, dir, "000.txt")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--input-dir", dir, "--algorithm", "centroid", "--x", "1", "--y", "1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "<svg")
}
