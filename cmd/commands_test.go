package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "", "version")
	assert.Equal(t, "watcrack (devel)\n", out)
}

func TestHistoryCommandEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "w.db")
	out := execute(t, "", "history", "--db", db)
	assert.Contains(t, out, "No attempts yet.")
}

func TestResetCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "w.db")

	out := execute(t, "no\n", "reset", "--db", db)
	assert.Contains(t, out, "Aborted.")

	out = execute(t, "yes\n", "reset", "--db", db)
	assert.Contains(t, out, "Stats reset.")
}

func TestLLMUsageCommandEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "w.db")
	out := execute(t, "", "llm", "usage", "--db", db)
	assert.Contains(t, out, "No LLM usage recorded yet.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}

func TestUpdateCommandDevBuild(t *testing.T) {
	out := execute(t, "", "update", "--tag", "v0.4.0")
	assert.Contains(t, out, "Cannot update a development build.")
}
