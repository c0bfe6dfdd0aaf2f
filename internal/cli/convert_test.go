package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bigcast/internal/harness"
)

// executeCommand runs a subcommand with args and returns stdout.
func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConvertTextOutput(t *testing.T) {
	rootOpts := &RootOptions{Format: "text"}
	out, err := executeCommand(t, NewConvertCommand(rootOpts), "--", "-1")
	require.NoError(t, err)

	assert.Contains(t, out, `value "-1" = -1`)
	assert.Contains(t, out, "uint8")
	assert.Contains(t, out, "255")
	assert.Contains(t, out, "18446744073709551615")
	assert.Contains(t, out, "-0x1")
}

func TestConvertJSONOutput(t *testing.T) {
	rootOpts := &RootOptions{Format: "json"}
	out, err := executeCommand(t, NewConvertCommand(rootOpts), "0xff")
	require.NoError(t, err)

	var snapshot harness.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snapshot))
	assert.Equal(t, "value", snapshot.Input.Kind)
	assert.Equal(t, "0xff", snapshot.Input.Text)
	assert.Equal(t, "255", snapshot.Input.Value)
	assert.NotEmpty(t, snapshot.Views)
}

func TestConvertUnderscoreLiteral(t *testing.T) {
	rootOpts := &RootOptions{Format: "text"}
	out, err := executeCommand(t, NewConvertCommand(rootOpts), "0xdead_beef")
	require.NoError(t, err)
	assert.Contains(t, out, "3735928559")
}

func TestConvertInvalidLiteral(t *testing.T) {
	rootOpts := &RootOptions{Format: "text"}
	_, err := executeCommand(t, NewConvertCommand(rootOpts), "12abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid integer literal")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
