package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRootCommand_ArgCount rejects invocations without exactly two arguments
// before any work is attempted.
func TestRootCommand_ArgCount(t *testing.T) {
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	for _, args := range [][]string{
		{},
		{"mypkg-1.2.3.dist-info"},
		{"mypkg-1.2.3.dist-info", "installed.txt", "extra"},
	} {
		rootCmd.SetArgs(args)
		require.Error(t, rootCmd.Execute(), "args: %v", args)
	}
}
