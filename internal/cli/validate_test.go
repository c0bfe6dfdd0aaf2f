package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsGoodFile(t *testing.T) {
	path := writeScenarioFile(t, "good.yaml", passingScenario)

	rootOpts := &RootOptions{Format: "text"}
	out, err := executeCommand(t, NewValidateCommand(rootOpts), path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   ")
}

func TestValidateRejectsBadFile(t *testing.T) {
	good := writeScenarioFile(t, "good.yaml", passingScenario)
	bad := writeScenarioFile(t, "bad.yaml", `
name: bad
value: "1"
checks:
  - op: frobnicate
    want: "1"
`)

	rootOpts := &RootOptions{Format: "text"}
	out, err := executeCommand(t, NewValidateCommand(rootOpts), good, bad)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "ok   ")
	assert.Contains(t, out, "FAIL ")
}

func TestValidateJSONOutput(t *testing.T) {
	path := writeScenarioFile(t, "good.yaml", passingScenario)

	rootOpts := &RootOptions{Format: "json"}
	out, err := executeCommand(t, NewValidateCommand(rootOpts), path)
	require.NoError(t, err)

	var result ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].Valid)
}
