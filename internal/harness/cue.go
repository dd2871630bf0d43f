package harness

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// scenarioSchema constrains CUE scenario files. Definitions are closed, so
// unknown fields fail unification.
const scenarioSchema = `
#Scenario: {
	name:        string & !=""
	description: string & !=""
	kind?:       "auto" | "int" | "string"
	sequence: [...(int | string)]
	run_id?: string
	cases: [#Case, ...#Case]
}

#Case: {
	name?:  string
	target: int | string
	expect: {
		found:  bool
		index?: int & >=0
	}
}
`

// ParseCUE compiles a CUE scenario, validates it against the #Scenario
// schema and decodes it. filename is used in error positions only.
func ParseCUE(data []byte, filename string) (*Scenario, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(scenarioSchema, cue.Filename("scenario_schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("building scenario schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Scenario")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("scenario does not match schema: %w", err)
	}

	raw, err := unified.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("exporting CUE scenario: %w", err)
	}

	// UseNumber keeps integers exact; ir.Token accepts json.Number.
	var scenario Scenario
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("decoding CUE scenario: %w", err)
	}
	return &scenario, nil
}
