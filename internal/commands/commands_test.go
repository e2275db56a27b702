package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liasse-dev/liasse/internal/commands"
)

// runLiasse executes the CLI in-process and returns combined output.
func runLiasse(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// initBooks initializes a books repository in a temp dir and returns its
// path.
func initBooks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runLiasse(t, "init", dir, "--name", "Dupont SARL")
	require.NoError(t, err)
	return dir
}
