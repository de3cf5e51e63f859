package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gtpv1c/config"
	"gtpv1c/dispatch"
)

func TestDefault(t *testing.T) {
	d := config.Default()
	require.False(t, d.Permissive)
	require.Equal(t, "info", d.LogLevel)
	require.Equal(t, dispatch.SideSGSN, d.Side())
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("permissive: true\ndefault_side: ggsn\n"), 0o644))

	opts, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, opts.Permissive)
	require.Equal(t, dispatch.SideGGSN, opts.Side())
	require.Equal(t, "info", opts.LogLevel)
}
