package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/chatstat/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default so tests sharing rootCmd
// don't leak state into each other
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs rootCmd with args and returns what it wrote to stdout
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// fixtures writes a transcript and a stop-word list into a temp dir
func fixtures(t *testing.T, transcript string) (chatPath, stopPath string) {
	t.Helper()
	dir := testutil.CreateTempDir(t)
	t.Setenv("HOME", dir)
	return testutil.WriteTranscript(t, dir, transcript), testutil.WriteStopWords(t, dir)
}
