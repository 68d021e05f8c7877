// File: cmd/helpers_test.go
package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xkilldash9x/gcd-cli/internal/observability"
)

// newPristineRootCmd returns a fresh root command instance so tests never
// share flag or argument state through the package-level rootCmd.
func newPristineRootCmd() *cobra.Command {
	return newRootCmd()
}

// resetState clears the global viper and logger singletons between tests.
// Both are process-wide, so every command test must start from a clean slate.
func resetState(t *testing.T) {
	t.Helper()
	viper.Reset()
	observability.ResetForTest()
	t.Cleanup(func() {
		viper.Reset()
		observability.ResetForTest()
	})
}

// executeCommand runs a pristine root command with the given args and
// captures its stdout and stderr streams.
func executeCommand(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	resetState(t)

	cmd := newPristineRootCmd()
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return stdout, stderr, err
}
