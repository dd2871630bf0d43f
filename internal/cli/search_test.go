package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeSearch(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewSearchCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSearchCommand_Text(t *testing.T) {
	odds := []string{"1", "3", "5", "7", "9", "11", "13"}

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"found", append([]string{"7"}, odds...), "Index of 7: 3\n"},
		{"not found", append([]string{"2"}, odds...), "Index of 2: -1\n"},
		{"empty sequence", []string{"5"}, "Index of 5: -1\n"},
		{"single element", []string{"5", "5"}, "Index of 5: 0\n"},
		{"strings", []string{"cherry", "apple", "banana", "cherry"}, "Index of cherry: 2\n"},
		{"negative values", []string{"--", "-1", "-5", "-1", "0"}, "Index of -1: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeSearch(t, "text", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSearchCommand_JSON(t *testing.T) {
	out, err := executeSearch(t, "json", "7", "1", "3", "5", "7", "9", "11", "13")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Target any    `json:"target"`
			Index  int    `json:"index"`
			Found  bool   `json:"found"`
			Kind   string `json:"kind"`
			Length int    `json:"length"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, float64(7), resp.Data.Target)
	assert.Equal(t, 3, resp.Data.Index)
	assert.True(t, resp.Data.Found)
	assert.Equal(t, "int", resp.Data.Kind)
	assert.Equal(t, 7, resp.Data.Length)
}

func TestSearchCommand_JSONNotFound(t *testing.T) {
	out, err := executeSearch(t, "json", "2", "1", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":{"target":2,"index":-1,"found":false,"kind":"int","length":2}}`, out)
}

func TestSearchCommand_KindString(t *testing.T) {
	// As strings "10" < "9", so the sequence is sorted under --kind string.
	out, err := executeSearch(t, "text", "9", "10", "9", "--kind", "string")
	require.NoError(t, err)
	assert.Equal(t, "Index of 9: 1\n", out)
}

func TestSearchCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"bad kind", []string{"1", "1", "--kind", "float"}, "invalid kind"},
		{"non-integer element", []string{"1", "1", "x", "--kind", "int"}, "element[1]"},
		{"non-integer target", []string{"x", "1", "--kind", "int"}, "target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeSearch(t, "text", tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E002]")
			assert.Contains(t, out, tt.msg)
		})
	}
}

func TestSearchCommand_Check(t *testing.T) {
	out, err := executeSearch(t, "text", "3", "5", "1", "3", "--check")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
	assert.Contains(t, out, "element[1] sorts before element[0]")

	out, err = executeSearch(t, "text", "3", "1", "3", "5", "--check")
	require.NoError(t, err)
	assert.Equal(t, "Index of 3: 1\n", out)
}

func TestSearchCommand_UncheckedUnsortedInput(t *testing.T) {
	// Without --check unsorted input is searched as-is: no error, some index.
	_, err := executeSearch(t, "text", "3", "5", "1", "3")
	require.NoError(t, err)
}

func TestSearchCommand_MissingTarget(t *testing.T) {
	_, err := executeSearch(t, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}
