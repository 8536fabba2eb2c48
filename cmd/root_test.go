package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("INFOBAR_SHORT_DURATION=3s\n"), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--config-dir", dir, "--log-level", "debug"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "short_duration:  3s")
	assert.Contains(t, out.String(), "log_level:       debug")
	assert.Contains(t, out.String(), "environment:     development")
}

func TestConfigCmd_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("INFOBAR_PROBE_INTERVAL=0s\n"), 0o644))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"config", "--config-dir", dir})

	assert.Error(t, root.Execute())
}

func TestVersionTemplate(t *testing.T) {
	assert.Contains(t, versionTemplate(), "Version        dev")
}
