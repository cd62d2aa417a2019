package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points every config and data location at empty temp dirs.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("SHISEIKAN_CONFIG", "")
	t.Setenv("SHISEIKAN_EVENTS_DB", "")
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLLMCommands_AuditLogDisabled(t *testing.T) {
	home := isolateConfig(t)

	for _, args := range [][]string{
		{"llm", "list"},
		{"llm", "view", "1"},
		{"llm", "stats"},
	} {
		out, err := execute(t, args...)
		require.NoError(t, err, args)
		assert.Contains(t, out, "Audit log disabled", args)
	}

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries, "no database should be created")
}

func TestLLMList_ConfiguredPath(t *testing.T) {
	home := isolateConfig(t)
	db := filepath.Join(home, "audit", "events.db")
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("events-db", "") })

	out, err := execute(t, "llm", "list", "--events-db", db)
	require.NoError(t, err)
	assert.NotContains(t, out, "Audit log disabled")
	assert.FileExists(t, db)
}
