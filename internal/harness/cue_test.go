package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCUE(t *testing.T) {
	scenario, err := ParseCUE([]byte(`
name:        "ints"
description: "integers from CUE"
sequence: [1, 3, 5]
cases: [{target: 3, expect: {found: true, index: 1}}]
`), "ints.cue")
	require.NoError(t, err)

	assert.Equal(t, "ints", scenario.Name)
	assert.Equal(t, []any{json.Number("1"), json.Number("3"), json.Number("5")}, scenario.Sequence)
	assert.Equal(t, json.Number("3"), scenario.Cases[0].Target)
	require.NotNil(t, scenario.Cases[0].Expect.Index)
	assert.Equal(t, 1, *scenario.Cases[0].Expect.Index)
}

func TestParseCUE_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `name: "x" description:`},
		{"unknown field", `
name: "x"
description: "d"
sequence: [1]
cases: [{target: 1, expect: {found: true}}]
extra: true
`},
		{"float element", `
name: "x"
description: "d"
sequence: [1.5]
cases: [{target: 1, expect: {found: true}}]
`},
		{"empty cases", `
name: "x"
description: "d"
sequence: [1]
cases: []
`},
		{"bad kind", `
name: "x"
description: "d"
kind: "float"
sequence: [1]
cases: [{target: 1, expect: {found: true}}]
`},
		{"negative index", `
name: "x"
description: "d"
sequence: [1]
cases: [{target: 1, expect: {found: true, index: -2}}]
`},
		{"missing description", `
name: "x"
sequence: [1]
cases: [{target: 1, expect: {found: true}}]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCUE([]byte(tt.content), "bad.cue")
			require.Error(t, err)
		})
	}
}

func TestParseCUE_UnsortedStringsRejectedAtRun(t *testing.T) {
	scenario, err := ParseCUE([]byte(`
name:        "mixed"
description: "auto kind with string targets"
sequence: ["1", "2", "10"]
kind: "string"
cases: [{target: "10", expect: {found: false}}]
`), "mixed.cue")
	require.NoError(t, err)

	// "10" sorts before "2" as a string, so the sequence is unsorted.
	_, err = Run(scenario)
	require.ErrorIs(t, err, ErrUnsorted)
}
