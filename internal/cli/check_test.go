package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCheck(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckCommand_Sorted(t *testing.T) {
	out, err := executeCheck(t, "text", "1", "3", "3", "7")
	require.NoError(t, err)
	assert.Equal(t, "sorted (4 int elements)\n", out)
}

func TestCheckCommand_Empty(t *testing.T) {
	out, err := executeCheck(t, "text")
	require.NoError(t, err)
	assert.Equal(t, "sorted (0 int elements)\n", out)
}

func TestCheckCommand_Unsorted(t *testing.T) {
	out, err := executeCheck(t, "text", "1", "9", "4")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "not sorted: element[2] sorts before element[1]\n", out)
}

func TestCheckCommand_KindChangesOrder(t *testing.T) {
	_, err := executeCheck(t, "text", "2", "10")
	require.NoError(t, err)

	out, err := executeCheck(t, "text", "2", "10", "--kind", "string")
	require.Error(t, err)
	assert.Contains(t, out, "element[1] sorts before element[0]")
}

func TestCheckCommand_JSON(t *testing.T) {
	out, err := executeCheck(t, "json", "1", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":{"sorted":true,"kind":"int","length":2,"first_unsorted":-1}}`, out)

	out, err = executeCheck(t, "json", "b", "a")
	require.Error(t, err)
	assert.JSONEq(t, `{
		"status": "error",
		"error": {
			"code": "E003",
			"message": "not sorted: element[1] sorts before element[0]",
			"details": {"sorted": false, "kind": "string", "length": 2, "first_unsorted": 1}
		}
	}`, out)
}

func TestCheckCommand_InvalidInput(t *testing.T) {
	out, err := executeCheck(t, "text", "1", "x", "--kind", "int")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}
