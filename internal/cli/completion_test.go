package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
// This prevents test pollution from flag state on the package-level root.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shimmer",
		Short: "Animated shimmer effects for terminal UIs",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic bash completion structure
	assert.Contains(t, output, "# bash completion for shimmer")
	assert.Contains(t, output, "__shimmer_debug")
	assert.Contains(t, output, "complete -o default -F __start_shimmer shimmer")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic zsh completion structure
	assert.Contains(t, output, "#compdef shimmer")
	assert.Contains(t, output, "_shimmer()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic fish completion structure
	assert.Contains(t, output, "fish completion for shimmer")
}

func TestRootHasExpectedSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"demo", "skeleton", "themes", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
